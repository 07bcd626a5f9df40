package services

import "go.uber.org/zap"

// Notification levels, matching the toast styles of the storefront.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Notifier receives user-facing feedback from the stores. Toast rendering
// and the cart panel animation belong to the presentation layer, which
// supplies the real implementation; the stores only emit the events.
type Notifier interface {
	Notify(level, message string)
	// OpenCartPanel asks the presentation layer to slide the cart open as a
	// confirmation affordance after an add.
	OpenCartPanel()
}

// ZapNotifier logs notifications; the default when no presentation layer is
// attached.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(level, message string) {
	switch level {
	case NotifyError:
		n.logger.Error(message)
	case NotifyWarning:
		n.logger.Warn(message)
	default:
		n.logger.Info(message, zap.String("level", level))
	}
}

func (n *ZapNotifier) OpenCartPanel() {
	n.logger.Debug("cart panel open requested")
}

package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/database"
	apperrors "github.com/AniketOxO/QuickBasket-Ecommerce-Platform/errors"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/repository"
	"github.com/AniketOxO/QuickBasket-Ecommerce-Platform/services"
)

type silentNotifier struct{}

func (silentNotifier) Notify(level, message string) {}
func (silentNotifier) OpenCartPanel()               {}

func newCouponRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	cart := services.NewCartService(context.Background(),
		repository.NewCartRepository(store, "test"),
		repository.NewCheckoutRepository(store, "test"),
		silentNotifier{}, zap.NewNop())

	router := gin.New()
	router.Use(apperrors.ErrorMiddleware())
	router.POST("/cart/coupon", NewCartController(cart).ApplyCoupon)
	return router
}

func TestApplyCouponController(t *testing.T) {
	t.Run("Unknown code - 400 Bad Request", func(t *testing.T) {
		router := newCouponRouter(t)

		req, _ := http.NewRequest(http.MethodPost, "/cart/coupon",
			bytes.NewBufferString(`{"code": "BOGUS"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid coupon code")
	})

	t.Run("Known code - 200 OK", func(t *testing.T) {
		router := newCouponRouter(t)

		req, _ := http.NewRequest(http.MethodPost, "/cart/coupon",
			bytes.NewBufferString(`{"code": "welcome10"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "WELCOME10")
	})
}

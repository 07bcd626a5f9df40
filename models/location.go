package models

// DeliveryArea is a static reference record indicating whether a named
// location is serviceable. The list is read-only; only the chosen location
// string is persisted per user.
type DeliveryArea struct {
	Name      string `json:"name"`
	Zip       string `json:"zip"`
	Available bool   `json:"available"`
}

// Label is the "Name Zip" display form used for matching and persistence.
func (a DeliveryArea) Label() string {
	return a.Name + " " + a.Zip
}

// SelectedLocation is a pending location choice awaiting confirmation.
type SelectedLocation struct {
	Location  string `json:"location"`
	Available bool   `json:"available"`
}

// GeoAddress is the best-effort result of a reverse-geocode lookup.
type GeoAddress struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

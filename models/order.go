package models

// Order is a mock order record. Orders are written by a checkout
// collaborator and only read here, for display in the account view.
type Order struct {
	ID        string     `json:"id"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"createdAt"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
}

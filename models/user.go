package models

// User is one registered account record. Email is unique case-insensitively
// and stored lowercased. The password is compared verbatim; this is a demo
// account system with no real credential handling.
type User struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Newsletter bool   `json:"newsletter"`
	CreatedAt  string `json:"createdAt"`
	IsActive   bool   `json:"isActive"`
}

// Sanitized returns a copy safe to hand to the presentation layer.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Session is the currently authenticated user, or absent when logged out.
type Session struct {
	User
	RememberMe bool `json:"rememberMe"`
}

// Address is a saved delivery address belonging to one user.
type Address struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Line  string `json:"line"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptTerms     bool   `json:"acceptTerms"`
	Newsletter      bool   `json:"newsletter"`
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

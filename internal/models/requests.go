package models

// UserRequest is the inbound payload for saving or updating a user.
// It exists separately from User so the plaintext password can be
// accepted on the wire without ever being serialized back out.
type UserRequest struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	MobileNumber string   `json:"mobileNumber"`
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Wishlist     []string `json:"wishlist,omitempty"`
}

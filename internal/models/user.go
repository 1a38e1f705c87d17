package models

// User represents a registered customer. The password field holds the bcrypt
// hash and stays marshaled so persistence snapshots round-trip it; handlers
// serialize UserResponse instead so the hash never reaches the wire.
type User struct {
	Username     string   `json:"username"`
	Password     string   `json:"password,omitempty"`
	MobileNumber string   `json:"mobileNumber"`
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Wishlist     []string `json:"wishlist,omitempty"` // product IDs
}

func (u User) Key() string { return u.Username }

package models

// UserResponse is the outbound shape for a user. It mirrors User minus the
// password hash, which must never be serialized to clients.
type UserResponse struct {
	Username     string   `json:"username"`
	MobileNumber string   `json:"mobileNumber"`
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Wishlist     []string `json:"wishlist,omitempty"`
}

// NewUserResponse strips the password hash from a stored user.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		Username:     u.Username,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Wishlist:     u.Wishlist,
	}
}

// NewUserResponses converts a slice of stored users for the wire.
func NewUserResponses(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}

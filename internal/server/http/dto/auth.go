package dto

// CredentialsRequest describes name/secret payload. Empty values are accepted
// and compared like any other.
type CredentialsRequest struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SessionResponse is returned after register and login.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

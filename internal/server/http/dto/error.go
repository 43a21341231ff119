package dto

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}

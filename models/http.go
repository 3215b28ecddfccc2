package models

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateNoteResponse is the body of a successful POST /admin/contents.
// The server returns only the new id; the remaining note fields are not
// echoed back.
type CreateNoteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// APIError is the error body the server attaches to non-2xx responses.
type APIError struct {
	Error string `json:"error"`
}

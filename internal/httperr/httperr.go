// Package httperr defines the error body shape and the canonical error
// messages returned by the API. The web client classifies failures by the
// structured code when present and falls back to substring matching on the
// message text, so the exact wording here is part of the wire contract.
package httperr

const (
	CodeUserExists         = "USER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeServerError        = "SERVER_ERROR"
)

const (
	MsgUserExists         = "User already exists with this email"
	MsgInvalidCredentials = "Invalid email or password"
	MsgUserNotFound       = "User not found"
	MsgTokenRequired      = "Access token required"
	MsgInvalidToken       = "Invalid or expired token"
	MsgServerError        = "Server error"
)

// Response is the standard error body: {"message": ..., "code": ...}.
type Response struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func New(message, code string) Response {
	return Response{Message: message, Code: code}
}

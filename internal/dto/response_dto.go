package dto

// ErrorResponse is the plain error payload used by most endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AuthErrorResponse is the richer payload the login path answers with.
type AuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        int    `json:"error_code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

package errors

// ErrorInfo contains detailed error information rendered to clients.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g. "PLACE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Response is the unified error envelope emitted by the error middleware.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

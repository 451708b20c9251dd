package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope used when a handler or middleware
// reports an error back to the client.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

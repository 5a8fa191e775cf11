// Package responses contains HTTP response DTOs for the chat-api.
// Room-specific response types are in the room subpackage.
package responses

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// UploadResponse is the body returned by POST /api/upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Type    string `json:"type"`
}

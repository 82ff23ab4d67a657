package dto

// APIResponse is the envelope every endpoint responds with.
// StatusCode mirrors the HTTP status of the response.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// NewErrorResponse builds an error envelope. Error envelopes never carry data.
func NewErrorResponse(statusCode int, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	}
}

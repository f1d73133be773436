package utils

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessTotaledResponse represents a list response with its item count
type SuccessTotaledResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
}

// ErrorResponse represents a generic error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuggestionResponse carries a generated suggestion back to the menu editor
type SuggestionResponse struct {
	Success    bool   `json:"success"`
	Suggestion string `json:"suggestion"`
}

package models

// ErrorResponse is the body returned for not-found and unexpected errors
type ErrorResponse struct {
	Error string `json:"error" example:"Restaurant not found"`
}

// ValidationErrorResponse is the body returned when request data fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"validation errors"`
}

// Error messages returned to API clients
const (
	MsgRestaurantNotFound        = "Restaurant not found"
	MsgPizzaOrRestaurantNotFound = "Pizza or Restaurant not found"
	MsgValidationErrors          = "validation errors"
	MsgInvalidRequestBody        = "Invalid request body"
)

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates a validation error body.
// With no messages the generic "validation errors" entry is used.
func NewValidationErrorResponse(messages ...string) ValidationErrorResponse {
	if len(messages) == 0 {
		messages = []string{MsgValidationErrors}
	}
	return ValidationErrorResponse{Errors: messages}
}

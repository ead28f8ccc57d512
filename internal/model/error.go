package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeInvalidFoodID    = "INVALID_FOOD_ID"
	ErrCodeFoodNotFound     = "FOOD_NOT_FOUND"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "category_like must be a positive integer")
	ErrInvalidFoodID   = NewDomainError(ErrCodeInvalidFoodID, "Food ID must be a positive integer")
	ErrFoodNotFound    = NewDomainError(ErrCodeFoodNotFound, "Food not found")
)

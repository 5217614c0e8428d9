package handlers

const (
	ErrInvalidDate         = "Invalid date: expected YYYY-MM-DD"
	ErrInvalidRequestBody  = "Invalid request body"
	ErrContentUnavailable  = "No puzzle available for this date"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests"
	ErrNotFoundMsg         = "Not found"
)

package handlers

// HTTP-layer error codes used across all API endpoints. Codes are lowercase
// snake_case and give clients a stable, machine-readable taxonomy alongside
// the human-readable message. Handlers select the most specific matching
// code and pass it to fail() with the corresponding HTTP status.

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeSearchFailed     = "search_failed"
	ErrCodeLoadFailed       = "load_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// Package handlers defines HTTP-layer error codes used by the webhook
// endpoints. Codes are lowercase snake_case and give Telegram operators a
// stable taxonomy on top of the HTTP status.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)

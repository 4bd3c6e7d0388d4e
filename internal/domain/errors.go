package domain

import "errors"

var (
	// ErrStoreUnreachable is returned when the storefront root page cannot be fetched
	ErrStoreUnreachable = errors.New("website not found or inaccessible")

	// ErrInternal is returned for any unexpected failure while assembling insights
	ErrInternal = errors.New("internal error during store analysis")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnexpectedStatus wraps a non-2xx root page response, alongside ErrStoreUnreachable
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

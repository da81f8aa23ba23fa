package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a required form field is missing or blank
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMissingImage is returned when no label image was provided
	ErrMissingImage = errors.New("no image file provided")

	// ErrInvalidImage is returned when the uploaded bytes are not a decodable image
	ErrInvalidImage = errors.New("invalid or unsupported image")

	// ErrUnparseableClaim is returned when a required numeric claim (alcohol
	// content) cannot be parsed as a number at all. This is bad input, not a
	// label discrepancy.
	ErrUnparseableClaim = errors.New("claim value is not a parseable number")

	// ErrUnreadableText is returned when OCR produced too little text to verify anything
	ErrUnreadableText = errors.New("could not read text from image")

	// ErrOCRFailure is returned when the OCR engine itself fails
	ErrOCRFailure = errors.New("OCR engine failure")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

package domain

import (
	"context"
	"time"
)

// OCREngine defines the interface for the OCR collaborator. Implementations
// take raw image bytes and return the recognized text as a single string.
// An empty string is a legitimate "nothing recognized" outcome.
type OCREngine interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// TextCache defines the interface for caching extracted OCR text so the same
// upload is not re-recognized. Keys are content hashes of the image bytes.
type TextCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

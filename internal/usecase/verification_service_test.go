package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labelcheck/backend/internal/domain"
)

// MockTextCache is a mock implementation of domain.TextCache
type MockTextCache struct {
	data      map[string]string
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockTextCache() *MockTextCache {
	return &MockTextCache{data: make(map[string]string)}
}

func (m *MockTextCache) Get(ctx context.Context, key string) (string, error) {
	m.getCalled = true
	if m.getError != nil {
		return "", m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return "", domain.ErrCacheMiss
}

func (m *MockTextCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockTextCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockTextCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockOCREngine is a mock implementation of domain.OCREngine
type MockOCREngine struct {
	text  string
	err   error
	calls int
}

func (m *MockOCREngine) ExtractText(ctx context.Context, image []byte) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func TestNewVerificationService(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		svc := NewVerificationService(NewMockTextCache(), &MockOCREngine{}, VerificationServiceConfig{})
		if svc.cacheTTL != 24*time.Hour {
			t.Errorf("cacheTTL = %v, want 24h", svc.cacheTTL)
		}
		if svc.minTextLength != MinTextLength {
			t.Errorf("minTextLength = %v, want %v", svc.minTextLength, MinTextLength)
		}
	})

	t.Run("keeps provided values", func(t *testing.T) {
		svc := NewVerificationService(NewMockTextCache(), &MockOCREngine{}, VerificationServiceConfig{
			CacheTTL:      time.Hour,
			MinTextLength: 3,
		})
		if svc.cacheTTL != time.Hour {
			t.Errorf("cacheTTL = %v, want 1h", svc.cacheTTL)
		}
		if svc.minTextLength != 3 {
			t.Errorf("minTextLength = %v, want 3", svc.minTextLength)
		}
	})
}

func TestVerifyLabel(t *testing.T) {
	ctx := context.Background()
	image := []byte("not-really-a-png-but-opaque-to-this-layer")
	labelText := "old tom distillery gin 45% alc/vol 750 ml"

	t.Run("validates fields before running OCR", func(t *testing.T) {
		engine := &MockOCREngine{text: labelText}
		svc := NewVerificationService(NewMockTextCache(), engine, VerificationServiceConfig{})

		_, err := svc.VerifyLabel(ctx, image, domain.FormFields{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("error = %v, want ErrInvalidRequest", err)
		}
		if engine.calls != 0 {
			t.Errorf("OCR ran %d times before validation failed, want 0", engine.calls)
		}
	})

	t.Run("rejects missing image", func(t *testing.T) {
		svc := NewVerificationService(NewMockTextCache(), &MockOCREngine{text: labelText}, VerificationServiceConfig{})

		_, err := svc.VerifyLabel(ctx, nil, validFields())
		if !errors.Is(err, domain.ErrMissingImage) {
			t.Errorf("error = %v, want ErrMissingImage", err)
		}
	})

	t.Run("runs OCR and verifies on cache miss", func(t *testing.T) {
		cache := NewMockTextCache()
		engine := &MockOCREngine{text: labelText}
		svc := NewVerificationService(cache, engine, VerificationServiceConfig{})

		result, err := svc.VerifyLabel(ctx, image, validFields())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.OverallMatch {
			t.Errorf("overall_match = false, want true; checks: %+v", result.Checks)
		}
		if engine.calls != 1 {
			t.Errorf("OCR calls = %d, want 1", engine.calls)
		}
		if !cache.setCalled {
			t.Errorf("extracted text was not cached")
		}
	})

	t.Run("uses cached text without calling OCR", func(t *testing.T) {
		cache := NewMockTextCache()
		cache.data[imageKey(image)] = labelText
		engine := &MockOCREngine{err: errors.New("should not be called")}
		svc := NewVerificationService(cache, engine, VerificationServiceConfig{})

		result, err := svc.VerifyLabel(ctx, image, validFields())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.OverallMatch {
			t.Errorf("overall_match = false, want true")
		}
		if engine.calls != 0 {
			t.Errorf("OCR calls = %d, want 0 on cache hit", engine.calls)
		}
	})

	t.Run("cache failure falls back to OCR", func(t *testing.T) {
		cache := NewMockTextCache()
		cache.getError = errors.New("cache down")
		cache.setError = errors.New("cache down")
		engine := &MockOCREngine{text: labelText}
		svc := NewVerificationService(cache, engine, VerificationServiceConfig{})

		result, err := svc.VerifyLabel(ctx, image, validFields())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.OverallMatch {
			t.Errorf("overall_match = false, want true")
		}
		if engine.calls != 1 {
			t.Errorf("OCR calls = %d, want 1", engine.calls)
		}
	})

	t.Run("OCR failure is reported as collaborator failure", func(t *testing.T) {
		engine := &MockOCREngine{err: errors.New("tesseract exploded")}
		svc := NewVerificationService(NewMockTextCache(), engine, VerificationServiceConfig{})

		_, err := svc.VerifyLabel(ctx, image, validFields())
		if !errors.Is(err, domain.ErrOCRFailure) {
			t.Errorf("error = %v, want ErrOCRFailure", err)
		}
	})

	t.Run("too little OCR text is a request error", func(t *testing.T) {
		engine := &MockOCREngine{text: "gin 45%"}
		svc := NewVerificationService(NewMockTextCache(), engine, VerificationServiceConfig{MinTextLength: 10})

		_, err := svc.VerifyLabel(ctx, image, validFields())
		if !errors.Is(err, domain.ErrUnreadableText) {
			t.Errorf("error = %v, want ErrUnreadableText", err)
		}
	})

	t.Run("empty OCR text is a request error, not a crash", func(t *testing.T) {
		engine := &MockOCREngine{text: ""}
		svc := NewVerificationService(NewMockTextCache(), engine, VerificationServiceConfig{})

		_, err := svc.VerifyLabel(ctx, image, validFields())
		if !errors.Is(err, domain.ErrUnreadableText) {
			t.Errorf("error = %v, want ErrUnreadableText", err)
		}
	})

	t.Run("works without a cache", func(t *testing.T) {
		engine := &MockOCREngine{text: labelText}
		svc := NewVerificationService(nil, engine, VerificationServiceConfig{})

		result, err := svc.VerifyLabel(ctx, image, validFields())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.OverallMatch {
			t.Errorf("overall_match = false, want true")
		}
	})

	t.Run("identical images share one OCR run", func(t *testing.T) {
		cache := NewMockTextCache()
		engine := &MockOCREngine{text: labelText}
		svc := NewVerificationService(cache, engine, VerificationServiceConfig{})

		for i := 0; i < 3; i++ {
			if _, err := svc.VerifyLabel(ctx, image, validFields()); err != nil {
				t.Fatalf("unexpected error on call %d: %v", i, err)
			}
		}
		if engine.calls != 1 {
			t.Errorf("OCR calls = %d, want 1 across identical uploads", engine.calls)
		}
	})
}

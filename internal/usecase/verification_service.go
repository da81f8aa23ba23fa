package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/labelcheck/backend/internal/domain"
)

// MinTextLength is the default minimum number of characters (after trim)
// the OCR text must have before verification is attempted. Shorter output
// means the photo was unreadable, which is a request error rather than a
// pile of mismatches.
const MinTextLength = 10

// VerificationServiceConfig holds configuration for the verification service.
type VerificationServiceConfig struct {
	CacheTTL           time.Duration
	MinTextLength      int
	Matching           MatchConfig
	EnableDebugLogging bool
}

// VerificationService orchestrates a full label verification: OCR the
// uploaded image (with a content-hash cache in front of the engine, since
// Tesseract is the expensive step) and run the matching engine over the
// extracted text.
type VerificationService struct {
	cache              domain.TextCache
	ocr                domain.OCREngine
	matching           *MatchingService
	cacheTTL           time.Duration
	minTextLength      int
	enableDebugLogging bool
}

// NewVerificationService creates a verification service with dependencies.
func NewVerificationService(
	cache domain.TextCache,
	ocr domain.OCREngine,
	config VerificationServiceConfig,
) *VerificationService {
	matchConfig := config.Matching
	matchConfig.EnableDebugLogging = matchConfig.EnableDebugLogging || config.EnableDebugLogging

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	minTextLength := config.MinTextLength
	if minTextLength <= 0 {
		minTextLength = MinTextLength
	}

	return &VerificationService{
		cache:              cache,
		ocr:                ocr,
		matching:           NewMatchingService(matchConfig),
		cacheTTL:           cacheTTL,
		minTextLength:      minTextLength,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// VerifyLabel verifies the submitted fields against the label image.
// Flow: validate fields -> cached OCR text or run OCR -> match.
// Field validation runs before OCR so a bad request never pays for
// recognition.
func (s *VerificationService) VerifyLabel(
	ctx context.Context,
	image []byte,
	fields domain.FormFields,
) (*domain.VerificationResult, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, domain.ErrMissingImage
	}

	text, err := s.extractText(ctx, image)
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(text)) < s.minTextLength {
		return nil, fmt.Errorf("%w: please try a clearer image", domain.ErrUnreadableText)
	}

	return s.matching.Verify(text, fields)
}

// Matcher exposes the underlying pure engine for callers that already have
// OCR text (the CLI's extract-then-verify flow, tests).
func (s *VerificationService) Matcher() *MatchingService {
	return s.matching
}

// extractText returns the OCR text for the image, consulting the cache
// first. Cache failures are non-fatal; the engine result wins.
func (s *VerificationService) extractText(ctx context.Context, image []byte) (string, error) {
	key := imageKey(image)

	if s.cache != nil {
		if text, err := s.cache.Get(ctx, key); err == nil {
			if s.enableDebugLogging {
				log.Printf("[OCR] cache hit for %s (%d chars)", key, len(text))
			}
			return text, nil
		}
	}

	text, err := s.ocr.ExtractText(ctx, image)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCRFailure, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[OCR] cache set failed for %s: %v", key, err)
		}
	}

	return text, nil
}

// imageKey derives the cache key from the image content, so identical
// uploads share one OCR run regardless of filename.
func imageKey(image []byte) string {
	sum := sha256.Sum256(image)
	return "ocr:" + hex.EncodeToString(sum[:])
}

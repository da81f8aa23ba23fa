package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/labelcheck/backend/internal/domain"
)

// Default matching parameters. The threshold and tolerance are part of the
// verification contract and are only overridable through MatchConfig so
// boundary values can be exercised in tests.
const (
	// PartialMatchThreshold is the fraction of claimed words that must be
	// found in the OCR text for a word-overlap match.
	PartialMatchThreshold = 0.70

	// ABVTolerance is the allowed absolute difference, in percentage
	// points, between claimed and label alcohol content.
	ABVTolerance = 0.5

	// PreviewLength bounds the extracted-text preview returned to clients.
	PreviewLength = 200
)

// MatchConfig holds configuration for the matching service.
type MatchConfig struct {
	PartialMatchThreshold float64
	ABVTolerance          float64
	PreviewLength         int
	EnableDebugLogging    bool
}

// MatchingService is the pure verification engine: given OCR text and the
// submitted form fields it produces a deterministic per-field verdict. It
// holds no mutable state, so a single instance is safe for concurrent use.
type MatchingService struct {
	partialMatchThreshold float64
	abvTolerance          float64
	previewLength         int
	enableDebugLogging    bool
}

// NewMatchingService creates a matching service with the given configuration.
func NewMatchingService(config MatchConfig) *MatchingService {
	threshold := config.PartialMatchThreshold
	if threshold <= 0 {
		threshold = PartialMatchThreshold
	}

	tolerance := config.ABVTolerance
	if tolerance <= 0 {
		tolerance = ABVTolerance
	}

	previewLength := config.PreviewLength
	if previewLength <= 0 {
		previewLength = PreviewLength
	}

	return &MatchingService{
		partialMatchThreshold: threshold,
		abvTolerance:          tolerance,
		previewLength:         previewLength,
		enableDebugLogging:    config.EnableDebugLogging,
	}
}

// Verify runs every applicable field matcher against the OCR text and
// assembles the aggregate result. Required fields are validated up front;
// matching never proceeds against missing data. OverallMatch is the AND
// over the required checks (brand name, product class, alcohol content);
// net contents and the government warning are surfaced but never veto.
func (s *MatchingService) Verify(ocrText string, fields domain.FormFields) (*domain.VerificationResult, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}

	ocrNorm := Normalize(ocrText)

	brand := s.matchWordOverlap(domain.FieldBrandName, ocrNorm, fields.BrandName)
	class := s.matchWordOverlap(domain.FieldProductClass, ocrNorm, fields.ProductClass)
	abv, err := s.matchAlcoholContent(ocrNorm, fields.AlcoholContent)
	if err != nil {
		return nil, err
	}

	result := &domain.VerificationResult{
		OverallMatch:         brand.Matched && class.Matched && abv.Matched,
		Checks:               []domain.FieldCheck{brand, class, abv},
		ExtractedTextPreview: previewText(ocrText, s.previewLength),
	}

	if strings.TrimSpace(fields.NetContents) != "" {
		result.Checks = append(result.Checks, s.matchNetContents(ocrNorm, fields.NetContents))
	}
	result.Checks = append(result.Checks, s.matchGovernmentWarning(ocrNorm))

	if s.enableDebugLogging {
		log.Printf("[VERIFY] overall=%v checks=%d", result.OverallMatch, len(result.Checks))
	}

	return result, nil
}

// ValidateFields reports an ErrInvalidRequest naming every required field
// that is missing or blank. Net contents is optional and never validated.
func ValidateFields(fields domain.FormFields) error {
	var missing []string
	if strings.TrimSpace(fields.BrandName) == "" {
		missing = append(missing, "brand_name")
	}
	if strings.TrimSpace(fields.ProductClass) == "" {
		missing = append(missing, "product_class")
	}
	if strings.TrimSpace(fields.AlcoholContent) == "" {
		missing = append(missing, "alcohol_content")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

// previewText bounds the raw OCR text for display. The preview is purely
// informational and never fed back into matching.
func previewText(ocrText string, limit int) string {
	if len(ocrText) <= limit {
		return ocrText
	}
	return ocrText[:limit] + "..."
}

package usecase

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/labelcheck/backend/internal/domain"
)

// Key phrases from the mandatory health warning statement. The full warning
// is long and OCR rarely reads it verbatim, so finding two of these counts
// as a partial match.
var warningPhrases = []string{"pregnant", "driving", "operating machinery", "health problems"}

// matchWordOverlap checks a free-text claim (brand name, product class)
// against the normalized OCR text. An exact substring hit short-circuits;
// otherwise each claimed word is looked up as a substring of the OCR text
// (no word-boundary alignment, since OCR often runs words together) and the
// found ratio is compared against the partial-match threshold.
func (s *MatchingService) matchWordOverlap(fieldName, ocrNorm, claim string) domain.FieldCheck {
	claimNorm := Normalize(claim)

	if claimNorm != "" && strings.Contains(ocrNorm, claimNorm) {
		return domain.FieldCheck{
			Field:   fieldName,
			Matched: true,
			Message: fmt.Sprintf("%s found on label", fieldName),
		}
	}

	words := splitWords(claim)
	if len(words) == 0 {
		return domain.FieldCheck{
			Field:   fieldName,
			Matched: false,
			Message: fmt.Sprintf("%s has no comparable words", fieldName),
		}
	}

	var missing []string
	found := 0
	for _, w := range words {
		if strings.Contains(ocrNorm, w) {
			found++
		} else {
			missing = append(missing, w)
		}
	}

	ratio := float64(found) / float64(len(words))
	matched := ratio >= s.partialMatchThreshold

	if s.enableDebugLogging {
		log.Printf("[MATCH] %s: %d/%d words found (ratio %.2f, threshold %.2f), missing %v",
			fieldName, found, len(words), ratio, s.partialMatchThreshold, missing)
	}

	if matched {
		return domain.FieldCheck{
			Field:   fieldName,
			Matched: true,
			Message: fmt.Sprintf("%s partially matched: %d of %d words found (%.0f%%)", fieldName, found, len(words), ratio*100),
		}
	}
	return domain.FieldCheck{
		Field:   fieldName,
		Matched: false,
		Message: fmt.Sprintf("%s not found on label: %d of %d words found (%.0f%%), missing: %s",
			fieldName, found, len(words), ratio*100, strings.Join(missing, ", ")),
	}
}

// matchAlcoholContent compares the claimed ABV against the first percentage
// read off the label, within the configured tolerance. An unparseable claim
// is bad input and aborts verification; a label with no percentage at all is
// an ordinary mismatch.
func (s *MatchingService) matchAlcoholContent(ocrNorm, claim string) (domain.FieldCheck, error) {
	claimed, ok := ParsePercent(claim)
	if !ok {
		return domain.FieldCheck{}, fmt.Errorf("%w: invalid alcohol content %q", domain.ErrUnparseableClaim, claim)
	}

	label, ok := ParsePercent(ocrNorm)
	if !ok {
		return domain.FieldCheck{
			Field:   domain.FieldAlcoholContent,
			Matched: false,
			Message: fmt.Sprintf("alcohol content not found on label (expected %.1f%%)", claimed.Magnitude),
		}, nil
	}

	diff := math.Abs(claimed.Magnitude - label.Magnitude)
	if diff <= s.abvTolerance {
		return domain.FieldCheck{
			Field:   domain.FieldAlcoholContent,
			Matched: true,
			Message: fmt.Sprintf("alcohol content matches: label shows %.1f%%, claimed %.1f%% (difference %.1f)", label.Magnitude, claimed.Magnitude, diff),
		}, nil
	}
	return domain.FieldCheck{
		Field:   domain.FieldAlcoholContent,
		Matched: false,
		Message: fmt.Sprintf("alcohol content mismatch: label shows %.1f%%, claimed %.1f%% (difference %.1f)", label.Magnitude, claimed.Magnitude, diff),
	}, nil
}

// matchNetContents compares the claimed volume against the first volume
// token on the label. Units are canonicalized before comparison and the
// magnitude must be exactly equal: "750ml" and "750 mL" are the same value
// spelled differently, so no tolerance applies.
func (s *MatchingService) matchNetContents(ocrNorm, claim string) domain.FieldCheck {
	claimed, ok := ParseVolume(claim)
	if !ok {
		return domain.FieldCheck{
			Field:   domain.FieldNetContents,
			Matched: false,
			Message: fmt.Sprintf("could not parse claimed net contents %q", claim),
		}
	}

	label, ok := ParseVolume(ocrNorm)
	if !ok {
		return domain.FieldCheck{
			Field:   domain.FieldNetContents,
			Matched: false,
			Message: fmt.Sprintf("net contents not found on label (expected %s %s)", formatMagnitude(claimed.Magnitude), claimed.Unit),
		}
	}

	if claimed.Magnitude == label.Magnitude && claimed.Unit == label.Unit {
		return domain.FieldCheck{
			Field:   domain.FieldNetContents,
			Matched: true,
			Message: fmt.Sprintf("net contents matches: %s %s", formatMagnitude(label.Magnitude), label.Unit),
		}
	}
	return domain.FieldCheck{
		Field:   domain.FieldNetContents,
		Matched: false,
		Message: fmt.Sprintf("net contents mismatch: label shows %s %s, claimed %s %s",
			formatMagnitude(label.Magnitude), label.Unit, formatMagnitude(claimed.Magnitude), claimed.Unit),
	}
}

// matchGovernmentWarning checks for the mandatory health warning statement.
// The exact heading counts as a full match; failing that, two or more of the
// key phrases count as a partial one.
func (s *MatchingService) matchGovernmentWarning(ocrNorm string) domain.FieldCheck {
	if strings.Contains(ocrNorm, "government warning") {
		return domain.FieldCheck{
			Field:   domain.FieldGovernmentWarning,
			Matched: true,
			Message: "government warning found on label",
		}
	}

	found := 0
	for _, phrase := range warningPhrases {
		if strings.Contains(ocrNorm, phrase) {
			found++
		}
	}
	if found >= 2 {
		return domain.FieldCheck{
			Field:   domain.FieldGovernmentWarning,
			Matched: true,
			Message: "government warning partially found on label",
		}
	}
	return domain.FieldCheck{
		Field:   domain.FieldGovernmentWarning,
		Matched: false,
		Message: "government warning not found on label",
	}
}

// formatMagnitude renders a volume number the way a label would print it:
// no trailing ".0" for whole values.
func formatMagnitude(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}

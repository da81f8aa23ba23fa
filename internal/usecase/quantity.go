package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is a parsed magnitude with an optional canonical unit.
// Percent quantities carry no unit.
type Quantity struct {
	Magnitude float64
	Unit      string
}

// Canonical volume unit spellings used for comparison.
const (
	UnitMilliliter = "ml"
	UnitFluidOunce = "floz"
	UnitLiter      = "l"
)

// Plausibility bounds for a percentage read off a label. OCR text is full of
// other numbers (volumes, years, addresses); anything outside this range is
// never treated as an alcohol percentage.
const (
	minPercent = 0.0
	maxPercent = 100.0
)

var (
	// explicit percent tokens like "45%" or "45.5 %"
	percentRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

	// bare numeric tokens, the fallback when no explicit percent is present
	bareNumberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// volume tokens: magnitude followed by a recognized unit spelling,
	// optionally separated by whitespace. Longer spellings first so the
	// alternation never stops early on a prefix.
	volumeRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(milliliters?|fluid\s+ounces?|fl\s*oz|floz|ml|oz|liters?|l)\b`)
)

// ParsePercent scans s for the first plausible percentage and returns it.
// Tokens with an explicit % sign win; if none exists, the first bare number
// in the plausible range is accepted (claims are often entered as just
// "45"). The second return value is false when no percentage was found,
// an ordinary outcome rather than an error.
func ParsePercent(s string) (Quantity, bool) {
	norm := Normalize(s)
	if norm == "" {
		return Quantity{}, false
	}

	for _, m := range percentRegex.FindAllStringSubmatch(norm, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= minPercent && v <= maxPercent {
			return Quantity{Magnitude: v}, true
		}
	}

	for _, tok := range bareNumberRegex.FindAllString(norm, -1) {
		if v, err := strconv.ParseFloat(tok, 64); err == nil && v >= minPercent && v <= maxPercent {
			return Quantity{Magnitude: v}, true
		}
	}

	return Quantity{}, false
}

// ParseVolume scans s for the first magnitude-plus-unit token and returns it
// with the unit canonicalized ("750ml", "750 mL", and "750 milliliters" all
// parse to {750, "ml"}). Returns false when no volume token was found.
func ParseVolume(s string) (Quantity, bool) {
	norm := Normalize(s)
	if norm == "" {
		return Quantity{}, false
	}

	m := volumeRegex.FindStringSubmatch(norm)
	if m == nil {
		return Quantity{}, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Quantity{}, false
	}

	unit, ok := canonicalUnit(m[2])
	if !ok {
		return Quantity{}, false
	}

	return Quantity{Magnitude: v, Unit: unit}, true
}

// canonicalUnit maps a recognized unit spelling to its canonical form.
func canonicalUnit(u string) (string, bool) {
	switch strings.Join(strings.Fields(u), " ") {
	case "ml", "milliliter", "milliliters":
		return UnitMilliliter, true
	case "fl oz", "floz", "oz", "fluid ounce", "fluid ounces":
		return UnitFluidOunce, true
	case "l", "liter", "liters":
		return UnitLiter, true
	}
	return "", false
}

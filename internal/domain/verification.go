package domain

// FormFields holds the user-submitted label claims to verify against the
// OCR text. BrandName, ProductClass, and AlcoholContent are required;
// NetContents is optional and only checked when non-blank.
type FormFields struct {
	BrandName      string `json:"brandName" form:"brand_name"`
	ProductClass   string `json:"productClass" form:"product_class"`
	AlcoholContent string `json:"alcoholContent" form:"alcohol_content"`
	NetContents    string `json:"netContents,omitempty" form:"net_contents"`
}

// FieldCheck is the per-field verdict for one evaluated field.
type FieldCheck struct {
	Field   string `json:"field"`
	Matched bool   `json:"matched"`
	Message string `json:"message"`
}

// VerificationResult aggregates all field checks for a single label.
// OverallMatch is true iff every required field matched; optional checks
// (net contents, government warning) are informational only.
type VerificationResult struct {
	OverallMatch         bool         `json:"overall_match"`
	Checks               []FieldCheck `json:"checks"`
	ExtractedTextPreview string       `json:"extracted_text_preview"`
}

// Human-readable field names used in FieldCheck.Field.
const (
	FieldBrandName         = "Brand Name"
	FieldProductClass      = "Product Class/Type"
	FieldAlcoholContent    = "Alcohol Content"
	FieldNetContents       = "Net Contents"
	FieldGovernmentWarning = "Government Warning"
)

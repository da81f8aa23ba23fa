package tesseract

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the formats label photos arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/labelcheck/backend/internal/domain"
)

// ValidateImage checks that the payload decodes as a supported image and
// returns the detected format. Only the header is decoded; pixels are left
// to Tesseract.
func ValidateImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", domain.ErrInvalidImage)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("%w: image has no pixels", domain.ErrInvalidImage)
	}

	return format, nil
}

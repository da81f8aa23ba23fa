package tesseract

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Config holds OCR engine configuration.
type Config struct {
	// Languages is a list of Tesseract trained-data languages (e.g. "eng").
	Languages []string
	// PageSegMode is Tesseract's page segmentation mode; zero leaves the
	// engine default in place.
	PageSegMode int
}

// Engine extracts label text from images using the gosseract Tesseract
// bindings. A fresh client is created per call, so a single Engine is safe
// for concurrent use.
type Engine struct {
	clientFactory func() *gosseract.Client
	languages     []string
	pageSegMode   int
	debug         bool
}

// NewEngine constructs a Tesseract-backed OCR engine.
func NewEngine(config Config) *Engine {
	languages := config.Languages
	if len(languages) == 0 {
		languages = []string{"eng"}
	}

	return &Engine{
		clientFactory: gosseract.NewClient,
		languages:     languages,
		pageSegMode:   config.PageSegMode,
	}
}

// SetDebug toggles per-request logging.
func (e *Engine) SetDebug(enabled bool) {
	e.debug = enabled
}

// ExtractText runs OCR over the image and returns the recognized text,
// trimmed. The image is validated before Tesseract sees it so unsupported
// payloads fail with a clear error instead of a cryptic engine one.
func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	format, err := ValidateImage(image)
	if err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if err := c.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if e.pageSegMode > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("tessedit_pageseg_mode"), strconv.Itoa(e.pageSegMode)); err != nil {
			return "", fmt.Errorf("set page segmentation mode: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	text = strings.TrimSpace(text)

	if e.debug {
		log.Printf("[OCR] %s image recognized, %d chars extracted", format, len(text))
	}

	return text, nil
}

//go:build !ocr

// Package ocrsvc wraps the Tesseract OCR engine via gosseract.
//
// This is the stub implementation used when the "ocr" build tag is not set;
// it keeps Tesseract an optional system dependency. Rebuild with -tags ocr
// to enable image recognition.
package ocrsvc

import (
	"context"

	"github.com/vicsion901-rgb/onlyteaching/core/ocr"
)

type TesseractExtractor struct{}

var _ ocr.TextExtractor = (*TesseractExtractor)(nil)

func NewTesseractExtractor() *TesseractExtractor {
	return &TesseractExtractor{}
}

func (x *TesseractExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	return "", ocr.ErrNotEnabled
}

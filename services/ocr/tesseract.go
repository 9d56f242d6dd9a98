//go:build ocr

// Package ocrsvc wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract (with the kor and eng language data) to be installed on the
// system. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-kor
package ocrsvc

import (
	"context"

	"github.com/otiai10/gosseract/v2"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/ocr"
)

// TesseractExtractor recognizes Korean+English text in roster images.
type TesseractExtractor struct{}

var _ ocr.TextExtractor = (*TesseractExtractor)(nil)

func NewTesseractExtractor() *TesseractExtractor {
	return &TesseractExtractor{}
}

func (x *TesseractExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage("kor", "eng"); err != nil {
		return "", errors.Wrap(err, "setting OCR languages")
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", errors.Wrap(err, "setting OCR image")
	}
	text, err := client.Text()
	if err != nil {
		return "", errors.Wrap(err, "recognizing text")
	}
	return text, nil
}

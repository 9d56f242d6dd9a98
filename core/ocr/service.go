package ocr

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

// ErrNotEnabled is returned by extractors when OCR support was not compiled in.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// TextExtractor is the opaque image → text collaborator. The concrete
// Tesseract-backed implementation lives in services/ocr behind the "ocr"
// build tag.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

type (
	// ImageResult mirrors UploadResult for the OCR path, plus the raw
	// recognized text so a human can check what the engine saw.
	ImageResult struct {
		Students []student.Row     `json:"students"`
		Saved    []student.Student `json:"saved"`
		Count    int               `json:"count"`
		Text     string            `json:"text"`
	}

	Service struct {
		extractor TextExtractor
		students  *student.Service
	}
)

func NewService(extractor TextExtractor, students *student.Service) *Service {
	return &Service{extractor: extractor, students: students}
}

// ParseImage OCRs the image and reconciles the parsed rows through the same
// upsert contract as the spreadsheet paths.
func (svc *Service) ParseImage(ctx context.Context, image []byte) (ImageResult, error) {
	text, err := svc.extractor.ExtractText(ctx, image)
	if err != nil {
		return ImageResult{}, errors.Wrap(err, "extracting text from image")
	}
	return svc.parseText(ctx, text)
}

func (svc *Service) parseText(ctx context.Context, text string) (ImageResult, error) {
	rows := ParseText(text)

	count, err := svc.students.Reconcile(ctx, rows)
	if err != nil {
		return ImageResult{}, errors.Wrap(err, "reconciling students")
	}
	saved, err := svc.students.QueryAll(ctx)
	if err != nil {
		return ImageResult{}, errors.Wrap(err, "listing students")
	}
	if saved == nil {
		saved = []student.Student{}
	}

	return ImageResult{
		Students: rows,
		Saved:    saved,
		Count:    count,
		Text:     text,
	}, nil
}

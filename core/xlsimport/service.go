package xlsimport

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

type (
	ImportStats struct {
		TotalRows              int `json:"totalRows"`
		StoredRows             int `json:"storedRows"`
		DetectedHeaderRowIndex int `json:"detectedHeaderRowIndex"`
	}

	// ImportResult is the response of the roster import pipeline.
	ImportResult struct {
		Mapping *MappingResult `json:"mapping"`
		Data    []student.Row  `json:"data"`
		Stats   ImportStats    `json:"stats"`
	}

	// UploadResult is the response of the bulk records upload: the parsed
	// rows plus the refreshed full student list after reconciliation.
	UploadResult struct {
		Mapping  *MappingResult    `json:"mapping"`
		Students []student.Row     `json:"students"`
		Saved    []student.Student `json:"saved"`
		Count    int               `json:"count"`
	}

	// Importer runs the one-way pipeline:
	// extraction → header detection → field mapping → normalization → upsert.
	Importer struct {
		students *student.Service
		log      core.Logger
	}
)

func NewImporter(students *student.Service, log core.Logger) *Importer {
	return &Importer{students: students, log: log}
}

// mapSheet runs the shared front half of the pipeline on a workbook.
func (imp *Importer) mapSheet(r io.Reader) ([][]string, MappingResult) {
	matrix := ParseMatrix(r)
	headerIdx := DetectHeaderRow(matrix, AllCandidateTokens())

	var headers []string
	if headerIdx < len(matrix) {
		headers = matrix[headerIdx]
	}
	mapping := BuildMapping(headers)
	mapping.HeaderRowIndex = headerIdx
	return matrix, mapping
}

// ImportStudents runs the full pipeline on an uploaded spreadsheet and
// reconciles the result into the student store.
func (imp *Importer) ImportStudents(ctx context.Context, r io.Reader) (ImportResult, error) {
	matrix, mapping := imp.mapSheet(r)
	rows, totalRows := MapRows(matrix, mapping.HeaderRowIndex, mapping)

	stored, err := imp.students.Reconcile(ctx, rows)
	if err != nil {
		return ImportResult{}, errors.Wrap(err, "reconciling students")
	}
	imp.log.Info("students imported",
		map[string]interface{}{"totalRows": totalRows, "storedRows": stored, "headerRow": mapping.HeaderRowIndex})

	return ImportResult{
		Mapping: &mapping,
		Data:    rows,
		Stats: ImportStats{
			TotalRows:              totalRows,
			StoredRows:             stored,
			DetectedHeaderRowIndex: mapping.HeaderRowIndex,
		},
	}, nil
}

// UploadRecords is the bulk student-records path: same pipeline, but with
// the complete resident-ID decoder and date normalizer, and the refreshed
// student list in the response.
func (imp *Importer) UploadRecords(ctx context.Context, r io.Reader) (UploadResult, error) {
	matrix, mapping := imp.mapSheet(r)
	rows := MapRecordRows(matrix, mapping.HeaderRowIndex, mapping)

	count, err := imp.students.Reconcile(ctx, rows)
	if err != nil {
		return UploadResult{}, errors.Wrap(err, "reconciling students")
	}
	saved, err := imp.students.QueryAll(ctx)
	if err != nil {
		return UploadResult{}, errors.Wrap(err, "listing students")
	}
	if saved == nil {
		saved = []student.Student{}
	}

	return UploadResult{
		Mapping:  &mapping,
		Students: rows,
		Saved:    saved,
		Count:    count,
	}, nil
}

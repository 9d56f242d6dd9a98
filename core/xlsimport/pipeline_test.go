package xlsimport

import (
	"testing"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

// Runs detection, mapping and row normalization over one roster matrix.
func TestPipeline_rosterScenario(t *testing.T) {
	matrix := [][]string{
		{"학생명부 2026"},
		{"번호", "이름", "생년월일"},
		{"1", "김민준", "2013-05-02"},
		{"2", "", "2013-06-01"},
	}

	headerIdx := DetectHeaderRow(matrix, AllCandidateTokens())
	if headerIdx != 1 {
		t.Fatalf("header index = %d, want 1", headerIdx)
	}

	mapping := BuildMapping(matrix[headerIdx])
	mapping.HeaderRowIndex = headerIdx
	wantFields := map[string]FieldKey{
		"번호":   FieldStudentNumber,
		"이름":   FieldName,
		"생년월일": FieldBirthDate,
	}
	for _, col := range mapping.Columns {
		if col.MappedField == nil || *col.MappedField != wantFields[col.ExcelColumn] {
			t.Errorf("column %q mapped to %v, want %s", col.ExcelColumn, col.MappedField, wantFields[col.ExcelColumn])
		}
	}

	rows, totalRows := MapRows(matrix, headerIdx, mapping)
	if totalRows != 2 {
		t.Errorf("totalRows = %d, want 2", totalRows)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (nameless row dropped)", len(rows))
	}
	want := student.Row{StudentNumber: "1", Name: "김민준", BirthDate: "2013-05-02"}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestConfidenceBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1, ConfidenceHigh},
		{0.88, ConfidenceHigh},
		{0.879999, ConfidenceMedium},
		{0.72, ConfidenceMedium},
		{0.719999, ConfidenceLow},
		{0, ConfidenceLow},
	}

	for _, tt := range tests {
		if got := confidenceBucket(tt.score); got != tt.want {
			t.Errorf("confidenceBucket(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

package xlsimport

import (
	"strings"
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"이 름", "이름"},
		{"이름 ", "이름"},
		{"성명(한글)", "성명한글"},
		{"No.", "no"},
		{"〈주소〉", "주소"},
		{"Birth Date", "birthdate"},
		{"  ", ""},
	}

	for _, tt := range tests {
		if got := normalizeColumn(tt.in); got != tt.want {
			t.Errorf("normalizeColumn(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "exact after normalization", a: "이 름", b: "이름", want: 1},
		{name: "empty side", a: "", b: "이름", want: 0},
		{name: "disjoint short strings", a: "가나", b: "다라", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	// containment adds a flat 0.2 on top of the edit-distance score
	got := similarity("생년월일(양력)", "생년월일")
	want := 1 - 2.0/6 + 0.2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("similarity with containment = %v, want %v", got, want)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"이름", "", 2},
		{"이름", "이름", 0},
		{"순번", "번호", 2},
		{"생년월일", "생일", 2},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBuildMapping(t *testing.T) {
	t.Run("exact headers map with high confidence", func(t *testing.T) {
		res := BuildMapping([]string{"번호", "이름", "생년월일", "주민등록번호", "주소"})

		if len(res.Columns) != 5 {
			t.Fatalf("got %d columns, want 5", len(res.Columns))
		}
		wantFields := []FieldKey{FieldStudentNumber, FieldName, FieldBirthDate, FieldResidentID, FieldAddress}
		for i, col := range res.Columns {
			if col.MappedField == nil || *col.MappedField != wantFields[i] {
				t.Errorf("column %q mapped to %v, want %s", col.ExcelColumn, col.MappedField, wantFields[i])
			}
			if col.Score != 1 {
				t.Errorf("column %q score = %v, want 1", col.ExcelColumn, col.Score)
			}
			if col.Confidence != ConfidenceHigh {
				t.Errorf("column %q confidence = %s, want %s", col.ExcelColumn, col.Confidence, ConfidenceHigh)
			}
		}
		if !res.CanAutoApply {
			t.Error("CanAutoApply = false, want true")
		}
		if len(res.UnmappedColumns) != 0 {
			t.Errorf("UnmappedColumns = %v, want none", res.UnmappedColumns)
		}
	})

	t.Run("fuzzy header maps with medium confidence", func(t *testing.T) {
		res := BuildMapping([]string{"생년월일(양력)"})

		col := res.Columns[0]
		if col.MappedField == nil || *col.MappedField != FieldBirthDate {
			t.Fatalf("mapped field = %v, want %s", col.MappedField, FieldBirthDate)
		}
		if col.Score != 0.87 { // 0.8666... rounded for display
			t.Errorf("score = %v, want 0.87", col.Score)
		}
		if col.Confidence != ConfidenceMedium {
			t.Errorf("confidence = %s, want %s", col.Confidence, ConfidenceMedium)
		}
	})

	t.Run("below threshold stays unmapped", func(t *testing.T) {
		res := BuildMapping([]string{"학부모연락처"})

		col := res.Columns[0]
		if col.MappedField != nil {
			t.Errorf("mapped field = %s, want nil", *col.MappedField)
		}
		if res.CanAutoApply {
			t.Error("CanAutoApply = true, want false")
		}
		if len(res.UnmappedColumns) != 1 || res.UnmappedColumns[0] != "학부모연락처" {
			t.Errorf("UnmappedColumns = %v, want [학부모연락처]", res.UnmappedColumns)
		}
	})

	t.Run("duplicate field mapping is surfaced as a warning", func(t *testing.T) {
		res := BuildMapping([]string{"이름", "성명"})

		if len(res.Warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(res.Warnings))
		}
		if !strings.Contains(res.Warnings[0], "both map to name") {
			t.Errorf("warning = %q, want a duplicate-mapping notice", res.Warnings[0])
		}
	})

	t.Run("empty cells are ignored", func(t *testing.T) {
		res := BuildMapping([]string{"", "이름", ""})
		if len(res.Columns) != 1 {
			t.Fatalf("got %d columns, want 1", len(res.Columns))
		}
		if res.Columns[0].Column != 1 {
			t.Errorf("column index = %d, want 1", res.Columns[0].Column)
		}
	})
}

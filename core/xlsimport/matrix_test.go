package xlsimport

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("buildWorkbook() failed: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("buildWorkbook() failed: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("buildWorkbook() failed: %v", err)
	}
	return buf
}

func TestParseMatrix(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"번호", "이름 ", "생년월일"},
		{nil, nil, nil},
		{"1", " 김철수", "2017.03.02"},
	})

	got := ParseMatrix(buf)

	want := [][]string{
		{"번호", "이름", "생년월일"},
		{"1", "김철수", "2017.03.02"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMatrix() = %v, want %v", got, want)
	}
}

func TestParseMatrix_unreadablePayload(t *testing.T) {
	if got := ParseMatrix(strings.NewReader("definitely not a workbook")); got != nil {
		t.Errorf("ParseMatrix(garbage) = %v, want nil", got)
	}
}

func TestCellAt(t *testing.T) {
	row := []string{"a", "b"}
	tests := []struct {
		col  int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{2, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := cellAt(row, tt.col); got != tt.want {
			t.Errorf("cellAt(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

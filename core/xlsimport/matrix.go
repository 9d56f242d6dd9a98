package xlsimport

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseMatrix reads the first sheet of a workbook into a matrix of trimmed
// string cells, dropping fully empty rows. An unreadable or non-spreadsheet
// payload yields an empty matrix, never an error: downstream stages treat an
// empty matrix as "zero rows imported".
func ParseMatrix(r io.Reader) [][]string {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil
	}

	matrix := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		empty := true
		for i, cell := range row {
			cells[i] = strings.TrimSpace(cell)
			if cells[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		matrix = append(matrix, cells)
	}
	return matrix
}

// cellAt reads a cell positionally; short rows yield empty strings for
// missing trailing cells.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

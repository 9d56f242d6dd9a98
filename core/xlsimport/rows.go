package xlsimport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

var (
	rrnRe        = regexp.MustCompile(`(\d{6})[- ]?(\d{7})`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	dateSepRe    = regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
	dateCompact8 = regexp.MustCompile(`(^|\D)(\d{4})(\d{2})(\d{2})(\D|$)`)
	dateCompact6 = regexp.MustCompile(`(^|\D)(\d{2})(\d{2})(\d{2})(\D|$)`)
)

func digitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ExtractResidentDigits pulls a 13-digit resident registration number out of
// free text: either an NNNNNN-NNNNNNN shape or a bare 13-digit run.
func ExtractResidentDigits(s string) string {
	if m := rrnRe.FindStringSubmatch(s); m != nil {
		return m[1] + m[2]
	}
	if d := digitsOnly(s); len(d) == 13 {
		return d
	}
	return ""
}

// FormatResident renders 13 digits in the canonical NNNNNN-NNNNNNN shape.
func FormatResident(digits13 string) string {
	d := digitsOnly(digits13)
	if len(d) != 13 {
		return ""
	}
	return d[:6] + "-" + d[6:]
}

// BirthDateFromResident decodes an ISO birth date from a 13-digit resident
// number. The 7th digit selects the century: 3/4/7/8 → 2000s, 9/0 → 1800s,
// anything else → 1900s. Out-of-range month or day rejects the result.
func BirthDateFromResident(digits13 string) string {
	d := digitsOnly(digits13)
	if len(d) != 13 {
		return ""
	}
	yy, _ := strconv.Atoi(d[:2])
	mm, _ := strconv.Atoi(d[2:4])
	dd, _ := strconv.Atoi(d[4:6])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return ""
	}

	century := 1900
	switch d[6] {
	case '3', '4', '7', '8':
		century = 2000
	case '9', '0':
		century = 1800
	}
	return fmt.Sprintf("%04d-%02d-%02d", century+yy, mm, dd)
}

// NormalizeBirthDate coerces free-text dates (YYYY.MM.DD, YYYY-MM-DD,
// YYYY/MM/DD, compact YYYYMMDD or YYMMDD) into ISO form. Two-digit years
// up to 29 land in the 2000s. Invalid month/day yields an empty string.
func NormalizeBirthDate(s string) string {
	s = strings.TrimSpace(s)

	validMD := func(mm, dd string) bool {
		m, err1 := strconv.Atoi(mm)
		d, err2 := strconv.Atoi(dd)
		return err1 == nil && err2 == nil && m >= 1 && m <= 12 && d >= 1 && d <= 31
	}
	iso := func(yyyy, mm, dd string) string {
		m, _ := strconv.Atoi(mm)
		d, _ := strconv.Atoi(dd)
		return fmt.Sprintf("%s-%02d-%02d", yyyy, m, d)
	}

	if m := dateSepRe.FindStringSubmatch(s); m != nil && validMD(m[2], m[3]) {
		return iso(m[1], m[2], m[3])
	}
	if m := dateCompact8.FindStringSubmatch(s); m != nil && validMD(m[3], m[4]) {
		return iso(m[2], m[3], m[4])
	}
	if m := dateCompact6.FindStringSubmatch(s); m != nil && validMD(m[3], m[4]) {
		yy, _ := strconv.Atoi(m[2])
		yyyy := 1900 + yy
		if yy <= 29 {
			yyyy = 2000 + yy
		}
		return iso(strconv.Itoa(yyyy), m[3], m[4])
	}
	return ""
}

// MapRows applies the column mapping positionally to every data row below
// the header. Later columns mapped to the same field overwrite earlier ones.
// When a resident ID is present, the birth date is re-derived from its first
// six digits: the resident ID is the higher-authority source. Rows whose
// final name is empty are dropped entirely.
func MapRows(matrix [][]string, headerIdx int, mapping MappingResult) (rows []student.Row, totalRows int) {
	rows = make([]student.Row, 0)
	if headerIdx+1 >= len(matrix) {
		return rows, 0
	}
	dataRows := matrix[headerIdx+1:]

	for _, raw := range dataRows {
		var row student.Row
		for _, col := range mapping.Columns {
			if col.MappedField == nil {
				continue
			}
			value := strings.TrimSpace(cellAt(raw, col.Column))
			switch *col.MappedField {
			case FieldStudentNumber:
				row.StudentNumber = value
			case FieldName:
				row.Name = value
			case FieldBirthDate:
				row.BirthDate = value
			case FieldResidentID:
				row.ResidentID = value
			case FieldAddress:
				row.Address = value
			}
		}

		if row.ResidentID != "" {
			if d := digitsOnly(row.ResidentID); len(d) >= 6 {
				row.BirthDate = d[:6]
			}
		}

		if row.Name == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, len(dataRows)
}

// MapRecordRows is the stricter bulk-upload variant of MapRows: resident IDs
// are validated and reformatted, birth dates are decoded from the resident
// number (century rule) or normalized to ISO, and a missing student number
// falls back to the data-row ordinal.
func MapRecordRows(matrix [][]string, headerIdx int, mapping MappingResult) []student.Row {
	rows := make([]student.Row, 0)
	if headerIdx+1 >= len(matrix) {
		return rows
	}

	for i, raw := range matrix[headerIdx+1:] {
		var row student.Row
		for _, col := range mapping.Columns {
			if col.MappedField == nil {
				continue
			}
			value := strings.TrimSpace(cellAt(raw, col.Column))
			switch *col.MappedField {
			case FieldStudentNumber:
				row.StudentNumber = value
			case FieldName:
				row.Name = value
			case FieldBirthDate:
				row.BirthDate = value
			case FieldResidentID:
				row.ResidentID = value
			case FieldAddress:
				row.Address = value
			}
		}

		residentDigits := ExtractResidentDigits(row.ResidentID)
		row.ResidentID = FormatResident(residentDigits)
		if residentDigits != "" {
			row.BirthDate = BirthDateFromResident(residentDigits)
		} else {
			row.BirthDate = NormalizeBirthDate(row.BirthDate)
		}

		if d := digitsOnly(row.StudentNumber); d != "" {
			if n, err := strconv.Atoi(d); err == nil {
				row.StudentNumber = strconv.Itoa(n)
			}
		} else {
			row.StudentNumber = strconv.Itoa(i + 1)
		}

		if row.Name == "" && row.BirthDate == "" && row.ResidentID == "" && row.Address == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Package ocr turns noisy OCR output of roster-like tables into normalized
// student rows.
package ocr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vicsion901-rgb/onlyteaching/core/student"
	"github.com/vicsion901-rgb/onlyteaching/core/xlsimport"
)

var (
	headerLineRe   = regexp.MustCompile(`학년|반|담임|부\s*모|형제자매|번호|이름|주민등록번호|주소|성명|생년월일`)
	delimiterRe    = regexp.MustCompile(`[|!\[\]{}()]+`)
	rowNumberRe    = regexp.MustCompile(`^\d{1,3}$`)
	headerWordRe   = regexp.MustCompile(`^(학년|반|담임|부|모|형제자매|번호|이름|성명|주소)$`)
	relationRe     = regexp.MustCompile(`부\s*모|형제자매|학년|반|담임`)
	nameRe         = regexp.MustCompile(`^[가-힣]{2,5}$`)
	rrnSegRe       = regexp.MustCompile(`(\d{6})\s*-?\s*([1-4]\d{6})`)
	fullDateRe     = regexp.MustCompile(`(\d{4})[./-](\d{2})[./-](\d{2})`)
	shortDateRe    = regexp.MustCompile(`(\d{2})[./-](\d{2})[./-](\d{2})`)
	compactDateRe  = regexp.MustCompile(`\b\d{5,6}\b`)
	hangulRe       = regexp.MustCompile(`[가-힣]`)
)

// lineAccum accumulates the per-line parse state: each matcher claims its
// segment at most once, first match wins.
type lineAccum struct {
	name           string
	residentNumber string
	birthDate      string
	addressParts   []string
}

func (acc *lineAccum) consume(segment string) {
	if rowNumberRe.MatchString(segment) {
		return
	}
	if headerWordRe.MatchString(segment) {
		return
	}

	if acc.name == "" && nameRe.MatchString(segment) {
		acc.name = segment
		return
	}

	rrn := rrnSegRe.FindStringSubmatch(segment)
	date := fullDateRe.FindStringSubmatch(segment)
	if date == nil {
		date = shortDateRe.FindStringSubmatch(segment)
	}
	compact := compactDateRe.FindString(segment)

	switch {
	case acc.residentNumber == "" && rrn != nil:
		acc.residentNumber = rrn[1] + "-" + rrn[2]
		acc.birthDate = xlsimport.BirthDateFromResident(rrn[1] + rrn[2])
	case acc.birthDate == "":
		if date != nil {
			year := date[1]
			if len(year) == 2 {
				year = "20" + year
			}
			acc.birthDate = year + "-" + date[2] + "-" + date[3]
		} else if compact != "" {
			// OCR often drops a leading zero; pad and validate as YYMMDD
			d := compact
			if len(d) == 5 {
				d = "0" + d
			}
			mm, _ := strconv.Atoi(d[2:4])
			dd, _ := strconv.Atoi(d[4:6])
			if mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31 {
				acc.birthDate = "20" + d[:2] + "-" + d[2:4] + "-" + d[4:6]
			}
		}
	}

	// anything that is not a name, resident number or date is address-ish
	if segment != acc.name && rrn == nil && date == nil && compact == "" {
		if hangulRe.MatchString(segment) && len([]rune(segment)) > 1 && !relationRe.MatchString(segment) {
			acc.addressParts = append(acc.addressParts, segment)
		}
	}
}

func (acc *lineAccum) emit() (student.Row, bool) {
	address := strings.Join(acc.addressParts, " ")
	if acc.name == "" {
		return student.Row{}, false
	}
	if acc.residentNumber == "" && acc.birthDate == "" && len([]rune(address)) <= 2 {
		return student.Row{}, false
	}
	return student.Row{
		Name:       acc.name,
		ResidentID: acc.residentNumber,
		BirthDate:  acc.birthDate,
		Address:    address,
	}, true
}

// ParseText extracts student rows from newline-delimited, noisy table-like
// OCR text. Header lines are discarded; the rest are split on OCR-garbled
// delimiters and fed segment by segment through the accumulator. Student
// numbers are assigned in emission order.
func ParseText(text string) []student.Row {
	rows := make([]student.Row, 0)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if headerLineRe.MatchString(line) {
			continue
		}

		segments := make([]string, 0)
		for _, seg := range delimiterRe.Split(line, -1) {
			if seg = strings.TrimSpace(seg); seg != "" {
				segments = append(segments, seg)
			}
		}
		if len(segments) < 2 {
			continue
		}

		var acc lineAccum
		for _, seg := range segments {
			acc.consume(seg)
		}
		if row, ok := acc.emit(); ok {
			row.StudentNumber = strconv.Itoa(len(rows) + 1)
			rows = append(rows, row)
		}
	}
	return rows
}

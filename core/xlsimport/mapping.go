package xlsimport

import (
	"fmt"
	"math"
	"strings"
)

// Confidence buckets for a mapped column.
const (
	ConfidenceHigh   = "high"   // score >= 0.88
	ConfidenceMedium = "medium" // score >= 0.72
	ConfidenceLow    = "low"
)

// mapThreshold is the minimum (unrounded) similarity for a column to map.
const mapThreshold = 0.65

type (
	// ColumnMapping is the mapping decision for one non-empty header cell.
	ColumnMapping struct {
		ExcelColumn string    `json:"excelColumn"`
		Normalized  string    `json:"normalized"`
		MappedField *FieldKey `json:"mappedField"` // nil when below threshold
		Score       float64   `json:"score"`       // rounded to 2dp for display
		Candidates  []string  `json:"candidates"`
		Confidence  string    `json:"confidence"`

		// column index in the header row; used for positional row resolution
		Column int `json:"-"`
	}

	MappingResult struct {
		HeaderRowIndex  int             `json:"headerRowIndex"`
		Columns         []ColumnMapping `json:"columns"`
		UnmappedColumns []string        `json:"unmappedColumns"`
		CanAutoApply    bool            `json:"canAutoApply"`
		Warnings        []string        `json:"warnings,omitempty"`
	}
)

// normalizeColumn prepares a header cell or dictionary token for comparison:
// lowercase, then keep only [a-z0-9가-힣]. Dropping everything else also
// removes whitespace (NBSP included), brackets and their full-width variants.
func normalizeColumn(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= 0xAC00 && r <= 0xD7A3:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// levenshtein computes the standard edit distance with unit cost for
// insert, delete and substitute, over runes.
func levenshtein(a, b string) int {
	s, t := []rune(a), []rune(b)
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := 0; j <= len(t); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// similarity scores two raw strings in [0, 1]: exact match after
// normalization is 1.0; otherwise 1 − dist/maxLen, plus a flat 0.2 boost
// when one normalized string contains the other.
func similarity(a, b string) float64 {
	x, y := normalizeColumn(a), normalizeColumn(b)
	if x == "" || y == "" {
		return 0
	}
	if x == y {
		return 1
	}

	boost := 0.0
	if strings.Contains(x, y) || strings.Contains(y, x) {
		boost = 0.2
	}

	maxLen := len([]rune(x))
	if l := len([]rune(y)); l > maxLen {
		maxLen = l
	}
	score := 1 - float64(levenshtein(x, y))/float64(maxLen) + boost

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func confidenceBucket(score float64) string {
	switch {
	case score >= 0.88:
		return ConfidenceHigh
	case score >= 0.72:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// BuildMapping fuzzy-matches every non-empty header cell against the field
// dictionary. Columns scoring below the threshold stay unmapped rather than
// being guessed. Two columns mapping to the same field is tolerated
// (last one wins at row-normalization time) but surfaced as a warning.
func BuildMapping(headers []string) MappingResult {
	columns := make([]ColumnMapping, 0, len(headers))
	unmapped := make([]string, 0)
	var warnings []string
	canAutoApply := false

	firstColForField := make(map[FieldKey]string)

	for col, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		normalized := normalizeColumn(header)

		var bestField FieldKey
		bestScore := 0.0
		for _, field := range fieldOrder {
			for _, candidate := range fieldCandidates[field] {
				if score := similarity(header, candidate); score > bestScore {
					bestScore = score
					bestField = field
				}
			}
		}

		entry := ColumnMapping{
			ExcelColumn: header,
			Normalized:  normalized,
			Score:       math.Round(bestScore*100) / 100,
			Candidates:  []string{},
			Confidence:  confidenceBucket(bestScore),
			Column:      col,
		}
		// threshold decision uses the unrounded score
		if bestScore >= mapThreshold {
			field := bestField
			entry.MappedField = &field
			entry.Candidates = fieldCandidates[field]
			canAutoApply = true

			if prev, ok := firstColForField[field]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"columns %q and %q both map to %s; the later column wins", prev, header, field))
			} else {
				firstColForField[field] = header
			}
		} else {
			unmapped = append(unmapped, header)
		}
		columns = append(columns, entry)
	}

	return MappingResult{
		Columns:         columns,
		UnmappedColumns: unmapped,
		CanAutoApply:    canAutoApply,
		Warnings:        warnings,
	}
}

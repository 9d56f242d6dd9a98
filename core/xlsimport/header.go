package xlsimport

import (
	"strings"
	"unicode"
)

// headerScanLimit bounds the scan so pathological files stay cheap.
const headerScanLimit = 40

var titleMarkers = []string{"학생명부", "학년도", "명부"}

func isHangulOrLatin(r rune) bool {
	return (r >= 0xAC00 && r <= 0xD7A3) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func containsHangulOrLatin(s string) bool {
	return strings.IndexFunc(s, isHangulOrLatin) >= 0
}

func isNumericOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// looksLikeTitleRow rejects rows that read like a sheet title rather than a
// header: a single long merged cell, a row naming the roster itself, or a
// short digit-free prose line spread over one or two cells.
func looksLikeTitleRow(row []string) bool {
	nonEmpty := make([]string, 0, len(row))
	for _, cell := range row {
		if cell != "" {
			nonEmpty = append(nonEmpty, cell)
		}
	}
	if len(nonEmpty) == 0 {
		return true
	}
	if len(nonEmpty) == 1 && len([]rune(nonEmpty[0])) >= 6 {
		return true
	}

	concat := normalizeColumn(strings.Join(nonEmpty, ""))
	for _, marker := range titleMarkers {
		if strings.Contains(concat, marker) {
			return true
		}
	}
	if len(nonEmpty) <= 2 && len([]rune(concat)) >= 8 && !strings.ContainsFunc(concat, unicode.IsDigit) {
		return true
	}
	return false
}

func scoreHeaderRow(row []string, tokens []string) int {
	score := 0
	nonEmpty := 0
	for _, cell := range row {
		if cell == "" {
			continue
		}
		nonEmpty++

		if isNumericOnly(cell) {
			score -= 2
		}
		normCell := normalizeColumn(cell)
		for _, token := range tokens {
			if normCell == token {
				score += 12
			} else if normCell != "" && token != "" &&
				(strings.Contains(normCell, token) || strings.Contains(token, normCell)) {
				score += 8
			}
		}
		if containsHangulOrLatin(cell) {
			score += 2
		}
	}
	if nonEmpty >= 3 {
		score += 5
	}
	if nonEmpty >= 5 {
		score += 5
	}
	return score
}

// DetectHeaderRow returns the index of the most header-like row within the
// first 40 rows of the matrix. Only a strictly greater score replaces the
// current best, so ties resolve to the earliest row. When no row qualifies
// as a candidate, the first row is assumed to be the header.
func DetectHeaderRow(matrix [][]string, candidateTokens []string) int {
	tokens := make([]string, 0, len(candidateTokens))
	for _, t := range candidateTokens {
		if norm := normalizeColumn(t); norm != "" {
			tokens = append(tokens, norm)
		}
	}

	limit := len(matrix)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	bestIdx := -1
	bestScore := 0
	for i := 0; i < limit; i++ {
		row := matrix[i]
		if looksLikeTitleRow(row) {
			continue
		}
		nonEmpty := 0
		for _, cell := range row {
			if cell != "" {
				nonEmpty++
			}
		}
		if nonEmpty < 2 {
			continue
		}

		score := scoreHeaderRow(row, tokens)
		if bestIdx < 0 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestIdx < 0 {
		return 0
	}
	return bestIdx
}

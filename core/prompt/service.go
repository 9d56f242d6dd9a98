// Package prompt turns free-text evaluation keywords into short
// report-card paragraphs using fixed sentence templates.
package prompt

import (
	"regexp"
	"strings"
)

const defaultModel = "onlyteaching-local"

var (
	nonWordRe = regexp.MustCompile(`[^a-zA-Z0-9_가-힣\s,]`)
	splitRe   = regexp.MustCompile(`[\s,]+`)
	pointRe   = regexp.MustCompile(`^\d+점$`)
	gradeRe   = regexp.MustCompile(`^\d+등급$`)

	// grade/score markers carry no descriptive content
	stopWords = map[string]struct{}{
		"상": {}, "중": {}, "하": {}, "상중하": {}, "상중": {}, "중하": {}, "상/중/하": {}, "최상": {}, "최하": {},
		"a": {}, "b": {}, "c": {}, "d": {}, "f": {}, "s": {}, "p": {}, "np": {},
		"우수": {}, "미흡": {}, "보통": {},
		"1등급": {}, "2등급": {}, "3등급": {}, "4등급": {}, "5등급": {}, "6등급": {}, "7등급": {}, "8등급": {}, "9등급": {},
	}
)

type Result struct {
	GeneratedDocument string   `json:"generated_document"`
	AIModel           string   `json:"ai_model"`
	Keywords          []string `json:"keywords"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Handle builds a one-paragraph document from at most 4 extracted keywords.
// An attached filename, when present, is appended as a trailing note.
func (svc *Service) Handle(content, aiModel, filename string) Result {
	model := aiModel
	if model == "" {
		model = defaultModel
	}

	keywords := ExtractKeywords(strings.TrimSpace(content))
	if len(keywords) > 4 {
		keywords = keywords[:4]
	}
	parts := buildSentences(keywords)
	if filename != "" {
		parts = append(parts, "첨부 파일: "+filename)
	}

	return Result{
		GeneratedDocument: strings.TrimSpace(strings.Join(parts, " ")),
		AIModel:           model,
		Keywords:          keywords,
	}
}

func isScoreWord(w string) bool {
	if w == "" {
		return true
	}
	if _, ok := stopWords[strings.ToLower(w)]; ok {
		return true
	}
	if pointRe.MatchString(w) || gradeRe.MatchString(w) {
		return true
	}
	// single-rune words are almost always grade markers
	return len([]rune(w)) == 1
}

// ExtractKeywords splits free text on whitespace/commas, drops score and
// grade markers, and dedups while preserving first-seen order.
func ExtractKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(text, " ")
	parts := splitRe.Split(cleaned, -1)

	seen := make(map[string]struct{})
	uniq := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || isScoreWord(p) {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	return uniq
}

type josaKind int

const (
	josaObject  josaKind = iota // 을/를
	josaSubject                 // 이/가
)

// josa picks the object (을/를) or subject (이/가) particle based on whether
// the final Hangul syllable of word carries a trailing consonant.
func josa(word string, kind josaKind) string {
	if word == "" {
		if kind == josaObject {
			return "을"
		}
		return "이"
	}
	runes := []rune(word)
	last := runes[len(runes)-1]
	hasFinal := false
	if last >= 0xAC00 && last <= 0xD7A3 {
		hasFinal = (last-0xAC00)%28 != 0
	}
	if kind == josaObject {
		if hasFinal {
			return "을"
		}
		return "를"
	}
	if hasFinal {
		return "이"
	}
	return "가"
}

func buildSentences(keywords []string) []string {
	padded := make([]string, 4)
	copy(padded, keywords)
	k1, k2, k3, k4 := padded[0], padded[1], padded[2], padded[3]

	var sentences []string
	if k1 != "" {
		sentences = append(sentences, k1+josa(k1, josaObject)+" 바탕으로 수업에 성실히 참여하며 긍정적인 변화를 보였습니다.")
	}
	if k2 != "" {
		sentences = append(sentences, k2+" 태도가 돋보이며 또래와 협력적으로 활동합니다.")
	}
	if k3 != "" {
		sentences = append(sentences, k3+" 역량"+josa("역량", josaObject)+" 키우기 위해 꾸준히 노력하며 책임감 있게 과제를 수행합니다.")
	}
	if k4 != "" {
		sentences = append(sentences, k4+josa(k4, josaObject)+" 통해 자기주도적 성장을 이어가고 있습니다.")
	}
	if len(sentences) == 0 {
		sentences = append(sentences, "수업에 성실히 참여하며 긍정적인 변화를 보였습니다.")
	}
	return sentences
}

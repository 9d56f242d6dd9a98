package prompt

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "keeps descriptive words, drops score markers",
			in:   "성실 90점 창의적 상 리더십 1등급",
			want: []string{"성실", "창의적", "리더십"},
		},
		{
			name: "dedup preserves first-seen order",
			in:   "배려, 협동, 배려, 협동",
			want: []string{"배려", "협동"},
		},
		{
			name: "single-rune words are dropped",
			in:   "가 나 독서토론",
			want: []string{"독서토론"},
		},
		{
			name: "grade letters are dropped case-insensitively",
			in:   "A b 발표력",
			want: []string{"발표력"},
		},
		{
			name: "punctuation is stripped before splitting",
			in:   "성실! (창의적)",
			want: []string{"성실", "창의적"},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractKeywords(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJosa(t *testing.T) {
	tests := []struct {
		word string
		kind josaKind
		want string
	}{
		{"성실", josaObject, "을"},  // final consonant
		{"배려", josaObject, "를"},  // open syllable
		{"리더십", josaObject, "을"},
		{"성실", josaSubject, "이"},
		{"배려", josaSubject, "가"},
		{"abc", josaObject, "를"}, // non-Hangul has no final consonant
		{"", josaObject, "을"},
	}

	for _, tt := range tests {
		if got := josa(tt.word, tt.kind); got != tt.want {
			t.Errorf("josa(%q, %d) = %q, want %q", tt.word, tt.kind, got, tt.want)
		}
	}
}

func TestService_Handle(t *testing.T) {
	svc := NewService()

	t.Run("builds one sentence per keyword, capped at four", func(t *testing.T) {
		res := svc.Handle("성실 창의적 리더십 배려 협동", "", "")

		if len(res.Keywords) != 4 {
			t.Fatalf("got %d keywords, want 4", len(res.Keywords))
		}
		if res.AIModel != defaultModel {
			t.Errorf("AIModel = %q, want %q", res.AIModel, defaultModel)
		}
		if !strings.Contains(res.GeneratedDocument, "성실을 바탕으로") {
			t.Errorf("document %q lacks the first-keyword sentence", res.GeneratedDocument)
		}
		if strings.Contains(res.GeneratedDocument, "협동") {
			t.Errorf("document %q mentions the fifth keyword", res.GeneratedDocument)
		}
	})

	t.Run("filename is appended as a trailing note", func(t *testing.T) {
		res := svc.Handle("성실", "gpt-test", "수행평가.xlsx")

		if res.AIModel != "gpt-test" {
			t.Errorf("AIModel = %q, want gpt-test", res.AIModel)
		}
		if !strings.HasSuffix(res.GeneratedDocument, "첨부 파일: 수행평가.xlsx") {
			t.Errorf("document %q lacks the attachment note", res.GeneratedDocument)
		}
	})

	t.Run("no usable keywords falls back to the stock sentence", func(t *testing.T) {
		res := svc.Handle("90점 상 1등급", "", "")

		if len(res.Keywords) != 0 {
			t.Errorf("keywords = %v, want none", res.Keywords)
		}
		if res.GeneratedDocument != "수업에 성실히 참여하며 긍정적인 변화를 보였습니다." {
			t.Errorf("document = %q", res.GeneratedDocument)
		}
	})
}

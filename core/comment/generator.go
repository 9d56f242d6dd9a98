package comment

import (
	"context"
	"math/rand"
	"strings"
)

// Generator assembles report-card sentences from the keyword bank.
// Each line pulls one fragment per bucket:
// learning_attitude/trait + learning_process/behavior + thinking/process + learning_result/result.
type Generator struct {
	repo Repository
	rnd  *rand.Rand
}

func NewGenerator(repo Repository, rnd *rand.Rand) *Generator {
	return &Generator{repo: repo, rnd: rnd}
}

func (g *Generator) pickOne(cmts []Comment) string {
	if len(cmts) == 0 {
		return ""
	}
	return cmts[g.rnd.Intn(len(cmts))].Content
}

func (g *Generator) pickFrom(ctx context.Context, subcategory, attribute string) (string, error) {
	cmts, err := g.repo.FilterComments(ctx, subcategory, attribute)
	if err != nil {
		return "", err
	}
	return g.pickOne(cmts), nil
}

// Generate produces lineCount newline-joined sentences for the given student.
// The first sentence is subject-led ("<name>은 ..."); subsequent ones open with
// a random conjunction or none at all.
func (g *Generator) Generate(ctx context.Context, studentName string, lineCount int) (string, error) {
	if lineCount <= 0 {
		lineCount = 3
	}
	conjunctions := []string{"또한 ", "아울러 ", ""}

	sentences := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		subject := studentName + "은 "
		if i > 0 {
			subject = conjunctions[g.rnd.Intn(len(conjunctions))]
		}

		attitude, err := g.pickFrom(ctx, "learning_attitude", "trait")
		if err != nil {
			return "", err
		}
		behavior, err := g.pickFrom(ctx, "learning_process", "behavior")
		if err != nil {
			return "", err
		}
		process, err := g.pickFrom(ctx, "thinking", "process")
		if err != nil {
			return "", err
		}
		result, err := g.pickFrom(ctx, "learning_result", "result")
		if err != nil {
			return "", err
		}

		parts := make([]string, 0, 4)
		for _, p := range []string{attitude, behavior} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if process != "" {
			if g.rnd.Float64() > 0.4 {
				process = "이를 통해 " + process
			}
			parts = append(parts, process)
		}
		if result != "" {
			parts = append(parts, result)
		}

		sentences = append(sentences, strings.TrimSpace(subject+strings.Join(parts, " "))+".")
	}

	return strings.Join(sentences, "\n"), nil
}

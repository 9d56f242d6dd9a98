package sqlxrepos

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core/comment"
)

func seedComment(t *testing.T, repo comment.Repository, subcategory, attribute, content string) comment.Comment {
	t.Helper()
	now := time.Now().UTC()
	cmt, err := repo.CreateComment(context.Background(), comment.Comment{
		Category:    "학습",
		Subcategory: subcategory,
		Attribute:   attribute,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("seedComment() failed: %v", err)
	}
	return cmt
}

func TestCommentRepository_FilterComments(t *testing.T) {
	repo := NewCommentRepository(setupDB(t))
	ctx := context.Background()

	seedComment(t, repo, "learning_attitude", "trait", "성실한 자세로")
	seedComment(t, repo, "learning_attitude", "habit", "꾸준한 습관으로")
	seedComment(t, repo, "thinking", "process", "스스로 생각하며")

	got, err := repo.FilterComments(ctx, "learning_attitude", "trait")
	if err != nil {
		t.Fatalf("FilterComments() failed: %v", err)
	}
	if len(got) != 1 || got[0].Content != "성실한 자세로" {
		t.Errorf("FilterComments(trait) = %+v", got)
	}

	// empty attribute matches the whole subcategory
	got, err = repo.FilterComments(ctx, "learning_attitude", "")
	if err != nil {
		t.Fatalf("FilterComments() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d comments, want 2", len(got))
	}

	got, err = repo.FilterComments(ctx, "nope", "")
	if err != nil {
		t.Fatalf("FilterComments() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d comments, want 0", len(got))
	}
}

func TestCommentRepository_CRUD(t *testing.T) {
	repo := NewCommentRepository(setupDB(t))
	ctx := context.Background()

	cmt := seedComment(t, repo, "learning_result", "result", "큰 성취를 이루었습니다")
	if cmt.ID == 0 {
		t.Fatal("CreateComment() did not assign an ID")
	}

	cmt.Content = "훌륭한 성취를 이루었습니다"
	if _, err := repo.UpdateComment(ctx, cmt); err != nil {
		t.Fatalf("UpdateComment() failed: %v", err)
	}
	got, err := repo.GetCommentByID(ctx, cmt.ID)
	if err != nil {
		t.Fatalf("GetCommentByID() failed: %v", err)
	}
	if got.Content != "훌륭한 성취를 이루었습니다" {
		t.Errorf("Content = %q", got.Content)
	}

	if err = repo.DeleteComment(ctx, cmt.ID); err != nil {
		t.Fatalf("DeleteComment() failed: %v", err)
	}
	if _, err = repo.GetCommentByID(ctx, cmt.ID); errors.Cause(err) != comment.ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

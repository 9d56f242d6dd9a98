package student

import (
	"context"
	"testing"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

type fakeRepository struct {
	upserted []Row
}

var _ Repository = (*fakeRepository)(nil)

func (f *fakeRepository) BulkUpsert(ctx context.Context, rows []Row) (int, error) {
	f.upserted = rows
	return len(rows), nil
}
func (f *fakeRepository) QueryAllStudents(ctx context.Context, ordering ...core.DBOrdering) ([]Student, error) {
	return nil, nil
}
func (f *fakeRepository) GetStudentByID(ctx context.Context, id int64) (Student, error) {
	return Student{}, ErrNotFound
}
func (f *fakeRepository) DeleteStudentsByID(ctx context.Context, ids ...int64) error { return nil }

func TestService_Reconcile_dropsNamelessRows(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, nil)

	count, err := svc.Reconcile(context.Background(), []Row{
		{StudentNumber: "1", Name: "김철수"},
		{StudentNumber: "2", Name: "   "},
		{StudentNumber: "3", Name: ""},
		{StudentNumber: "4", Name: "이영희"},
	})
	if err != nil {
		t.Fatalf("Reconcile() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("upserted %d rows, want 2", len(repo.upserted))
	}
	if repo.upserted[0].Name != "김철수" || repo.upserted[1].Name != "이영희" {
		t.Errorf("upserted = %+v", repo.upserted)
	}
}

package student

import (
	"context"
	"errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		// BulkUpsert reconciles rows into the store within a single
		// transaction and returns the number of rows submitted.
		// Rows with a resident ID are keyed by it; the rest by the
		// (name, birth_date, student_number) composite.
		BulkUpsert(ctx context.Context, rows []Row) (int, error)
		QueryAllStudents(ctx context.Context, ordering ...core.DBOrdering) ([]Student, error)
		GetStudentByID(ctx context.Context, id int64) (Student, error)
		DeleteStudentsByID(ctx context.Context, ids ...int64) error
	}

	Service struct {
		repo Repository
		log  core.Logger
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Reconcile persists normalized rows. Rows with an empty name are dropped
// before they reach the store; they are never counted as stored.
func (svc *Service) Reconcile(ctx context.Context, rows []Row) (int, error) {
	kept := make([]Row, 0, len(rows))
	for _, r := range rows {
		if core.CleanString(r.Name) == "" {
			continue
		}
		kept = append(kept, r)
	}
	return svc.repo.BulkUpsert(ctx, kept)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx,
		core.DBOrdering{Field: "student_number", Ascending: true},
		core.DBOrdering{Field: "id", Ascending: true},
	)
}

// QueryOrdered lists students with a caller-supplied ordering; an empty
// ordering falls back to the default roster order.
func (svc *Service) QueryOrdered(ctx context.Context, ordering ...core.DBOrdering) ([]Student, error) {
	if len(ordering) == 0 {
		return svc.QueryAll(ctx)
	}
	return svc.repo.QueryAllStudents(ctx, ordering...)
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, ids ...int64) error {
	return svc.repo.DeleteStudentsByID(ctx, ids...)
}

package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

var (
	// errors
	ErrNotFound = errors.New("schedule not found")
)

type (
	Repository interface {
		CreateSchedule(ctx context.Context, sched Schedule) (Schedule, error)
		QueryAllSchedules(ctx context.Context, ordering ...core.DBOrdering) ([]Schedule, error)
		GetScheduleByID(ctx context.Context, id int64) (Schedule, error)
		UpdateSchedule(ctx context.Context, sched Schedule) (Schedule, error)
		DeleteSchedule(ctx context.Context, id int64) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewSchedule) (Schedule, error) {
	now := time.Now().UTC()
	sched := Schedule{
		Title:     ns.Title,
		Date:      ns.Date,
		Memo:      ns.Memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateSchedule(ctx, sched)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Schedule, error) {
	return svc.repo.QueryAllSchedules(ctx, core.DBOrdering{Field: "date", Ascending: true})
}

func (svc *Service) GetByID(ctx context.Context, id int64) (Schedule, error) {
	return svc.repo.GetScheduleByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int64, us UpdateSchedule) (Schedule, error) {
	sched, err := svc.repo.GetScheduleByID(ctx, id)
	if err != nil {
		return Schedule{}, err
	}
	if us.Title != "" {
		sched.Title = us.Title
	}
	if us.Date != "" {
		sched.Date = us.Date
	}
	if us.Memo != "" {
		sched.Memo = us.Memo
	}
	sched.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateSchedule(ctx, sched)
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.repo.DeleteSchedule(ctx, id)
}

package sqlxrepos

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/schedule"
)

func TestScheduleRepository_CRUD(t *testing.T) {
	repo := NewScheduleRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	sched, err := repo.CreateSchedule(ctx, schedule.Schedule{
		Title:     "학부모 상담주간",
		Date:      "2026-09-07",
		Memo:      "1반부터",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateSchedule() failed: %v", err)
	}
	if sched.ID == 0 {
		t.Fatal("CreateSchedule() did not assign an ID")
	}

	got, err := repo.GetScheduleByID(ctx, sched.ID)
	if err != nil {
		t.Fatalf("GetScheduleByID() failed: %v", err)
	}
	if got.Title != "학부모 상담주간" || got.Date != "2026-09-07" {
		t.Errorf("got %+v", got)
	}

	sched.Memo = "2반부터"
	if _, err = repo.UpdateSchedule(ctx, sched); err != nil {
		t.Fatalf("UpdateSchedule() failed: %v", err)
	}
	got, _ = repo.GetScheduleByID(ctx, sched.ID)
	if got.Memo != "2반부터" {
		t.Errorf("Memo = %q, want 2반부터", got.Memo)
	}

	if err = repo.DeleteSchedule(ctx, sched.ID); err != nil {
		t.Fatalf("DeleteSchedule() failed: %v", err)
	}
	if _, err = repo.GetScheduleByID(ctx, sched.ID); errors.Cause(err) != schedule.ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestScheduleRepository_QueryAllSchedules_ordering(t *testing.T) {
	repo := NewScheduleRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for _, date := range []string{"2026-09-20", "2026-09-01", "2026-09-10"} {
		if _, err := repo.CreateSchedule(ctx, schedule.Schedule{
			Title: "행사", Date: date, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("CreateSchedule() failed: %v", err)
		}
	}

	scheds, err := repo.QueryAllSchedules(ctx, core.DBOrdering{Field: "date", Ascending: true})
	if err != nil {
		t.Fatalf("QueryAllSchedules() failed: %v", err)
	}
	want := []string{"2026-09-01", "2026-09-10", "2026-09-20"}
	for i, sched := range scheds {
		if sched.Date != want[i] {
			t.Errorf("schedule %d date = %s, want %s", i, sched.Date, want[i])
		}
	}
}

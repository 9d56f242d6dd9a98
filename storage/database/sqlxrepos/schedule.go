package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/schedule"
)

type scheduleRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *sqlx.DB) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo scheduleRepository) CreateSchedule(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	query := repo.db.Rebind(`
		INSERT INTO schedules (title, date, memo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`)

	res, err := repo.db.ExecContext(ctx, query, sched.Title, sched.Date, sched.Memo, sched.CreatedAt, sched.UpdatedAt)
	if err != nil {
		return schedule.Schedule{}, errors.Wrap(err, "inserting schedule")
	}
	if id, err := res.LastInsertId(); err == nil {
		sched.ID = id
	}
	return sched, nil
}

func (repo scheduleRepository) QueryAllSchedules(ctx context.Context, ordering ...core.DBOrdering) ([]schedule.Schedule, error) {
	query := `SELECT id, title, date, memo, created_at, updated_at FROM schedules`
	if len(ordering) > 0 {
		orderList := make([]string, 0, len(ordering))
		for _, ord := range ordering {
			orderList = append(orderList, ord.String())
		}
		query += " ORDER BY " + strings.Join(orderList, ", ")
	}

	scheds := make([]schedule.Schedule, 0)
	if err := repo.db.SelectContext(ctx, &scheds, query); err != nil {
		return nil, errors.Wrap(err, "querying schedules")
	}
	return scheds, nil
}

func (repo scheduleRepository) GetScheduleByID(ctx context.Context, id int64) (schedule.Schedule, error) {
	query := repo.db.Rebind(`SELECT id, title, date, memo, created_at, updated_at FROM schedules WHERE id = ?`)

	var sched schedule.Schedule
	if err := repo.db.GetContext(ctx, &sched, query, id); err != nil {
		if err == sql.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrNotFound
		}
		return schedule.Schedule{}, errors.Wrap(err, "finding schedule by ID")
	}
	return sched, nil
}

func (repo scheduleRepository) UpdateSchedule(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	query := repo.db.Rebind(`
		UPDATE schedules SET title = ?, date = ?, memo = ?, updated_at = ? WHERE id = ?`)

	if _, err := repo.db.ExecContext(ctx, query, sched.Title, sched.Date, sched.Memo, sched.UpdatedAt, sched.ID); err != nil {
		return schedule.Schedule{}, errors.Wrap(err, "updating schedule")
	}
	return sched, nil
}

func (repo scheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	query := repo.db.Rebind(`DELETE FROM schedules WHERE id = ?`)
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "deleting schedule")
	}
	return nil
}

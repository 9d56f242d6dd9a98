package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

// upsertByResident reconciles rows keyed by the resident_id unique index.
const upsertByResident = `
	INSERT INTO students (student_number, name, birth_date, resident_id, address, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (resident_id) WHERE resident_id IS NOT NULL DO UPDATE SET
		student_number = excluded.student_number,
		name = excluded.name,
		birth_date = excluded.birth_date,
		address = excluded.address,
		updated_at = excluded.updated_at`

// upsertByIdentity reconciles rows lacking a resident ID, keyed by the
// (name, birth_date, student_number) composite.
const upsertByIdentity = `
	INSERT INTO students (student_number, name, birth_date, resident_id, address, created_at, updated_at)
	VALUES (?, ?, ?, NULL, ?, ?, ?)
	ON CONFLICT (name, birth_date, student_number) WHERE resident_id IS NULL DO UPDATE SET
		address = excluded.address,
		updated_at = excluded.updated_at`

func (repo studentRepository) BulkUpsert(ctx context.Context, rows []student.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var withResident, withoutResident []student.Row
	for _, r := range rows {
		if r.HasResidentID() {
			withResident = append(withResident, r)
		} else {
			withoutResident = append(withoutResident, r)
		}
	}

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for _, r := range withResident {
		if _, err = tx.ExecContext(ctx, repo.db.Rebind(upsertByResident),
			r.StudentNumber, strings.TrimSpace(r.Name), r.BirthDate, r.ResidentID, r.Address, now, now); err != nil {
			return 0, errors.Wrap(err, "upserting student by resident ID")
		}
	}
	for _, r := range withoutResident {
		if _, err = tx.ExecContext(ctx, repo.db.Rebind(upsertByIdentity),
			r.StudentNumber, strings.TrimSpace(r.Name), r.BirthDate, r.Address, now, now); err != nil {
			return 0, errors.Wrap(err, "upserting student by composite key")
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "committing upsert")
	}
	return len(rows), nil
}

func (repo studentRepository) QueryAllStudents(ctx context.Context, ordering ...core.DBOrdering) ([]student.Student, error) {
	query := `
		SELECT id, student_number, name, birth_date, COALESCE(resident_id, '') AS resident_id,
		       address, created_at, updated_at
		FROM students`
	if len(ordering) > 0 {
		orderList := make([]string, 0, len(ordering))
		for _, ord := range ordering {
			orderList = append(orderList, ord.String())
		}
		query += " ORDER BY " + strings.Join(orderList, ", ")
	}

	students := make([]student.Student, 0)
	if err := repo.db.SelectContext(ctx, &students, query); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return students, nil
}

func (repo studentRepository) GetStudentByID(ctx context.Context, id int64) (student.Student, error) {
	query := repo.db.Rebind(`
		SELECT id, student_number, name, birth_date, COALESCE(resident_id, '') AS resident_id,
		       address, created_at, updated_at
		FROM students WHERE id = ?`)

	var stu student.Student
	if err := repo.db.GetContext(ctx, &stu, query, id); err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "finding student by ID")
	}
	return stu, nil
}

func (repo studentRepository) DeleteStudentsByID(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM students WHERE id IN (?)", ids)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting students")
	}
	return nil
}

package schedule

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

type Schedule struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Date      string    `db:"date" json:"date"`
	Memo      string    `db:"memo" json:"memo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewSchedule contains information needed to create a new Schedule.
type NewSchedule struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required,isodate"`
	Memo  string `json:"memo"`
}

func (ns *NewSchedule) Validate(validate *validator.Validate) error {
	ns.Title = core.CleanString(ns.Title)
	ns.Date = core.CleanString(ns.Date)
	ns.Memo = core.CleanString(ns.Memo)
	return validate.Struct(ns)
}

// UpdateSchedule defines what information may be provided to modify an existing Schedule.
// Empty fields are left untouched.
type UpdateSchedule struct {
	Title string `json:"title"`
	Date  string `json:"date" validate:"omitempty,isodate"`
	Memo  string `json:"memo"`
}

func (us *UpdateSchedule) Validate(validate *validator.Validate) error {
	us.Title = core.CleanString(us.Title)
	us.Date = core.CleanString(us.Date)
	us.Memo = core.CleanString(us.Memo)
	return validate.Struct(us)
}

package comment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

// Comment is one entry of the report-card keyword bank: a reusable sentence
// fragment filed under (category, subcategory, attribute).
type Comment struct {
	ID          int64     `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Subcategory string    `db:"subcategory" json:"subcategory"`
	Attribute   string    `db:"attribute" json:"attribute"`
	Content     string    `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// NewComment contains information needed to create a new Comment.
type NewComment struct {
	Category    string `json:"category" validate:"required"`
	Subcategory string `json:"subcategory" validate:"required"`
	Attribute   string `json:"attribute" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

func (nc *NewComment) Validate(validate *validator.Validate) error {
	nc.Category = core.CleanString(nc.Category)
	nc.Subcategory = core.CleanString(nc.Subcategory)
	nc.Attribute = core.CleanString(nc.Attribute)
	nc.Content = core.CleanString(nc.Content)
	return validate.Struct(nc)
}

// UpdateComment defines what information may be provided to modify an existing Comment.
type UpdateComment struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Attribute   string `json:"attribute"`
	Content     string `json:"content"`
}

package student

import "time"

// Student is a durably stored roster entry. ResidentID, when present, is the
// authoritative identity; otherwise (Name, BirthDate, StudentNumber) is.
type Student struct {
	ID            int64     `db:"id" json:"id"`
	StudentNumber string    `db:"student_number" json:"student_number"`
	Name          string    `db:"name" json:"name"`
	BirthDate     string    `db:"birth_date" json:"birth_date"`
	ResidentID    string    `db:"resident_id" json:"resident_id"`
	Address       string    `db:"address" json:"address"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Row is the normalized five-field shape produced by the import pipeline.
// All fields are plain strings; missing values stay empty.
type Row struct {
	StudentNumber string `json:"student_number"`
	Name          string `json:"name"`
	BirthDate     string `json:"birth_date"`
	ResidentID    string `json:"resident_id"`
	Address       string `json:"address"`
}

// HasResidentID reports whether the row carries its authoritative identity key.
func (r Row) HasResidentID() bool {
	return r.ResidentID != ""
}

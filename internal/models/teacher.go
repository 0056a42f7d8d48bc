package models

import (
	"time"

	"github.com/lib/pq"
)

// Teacher represents an instructor record.
type Teacher struct {
	ID        string         `db:"id" json:"id"`
	FullName  string         `db:"full_name" json:"name"`
	Email     string         `db:"email" json:"email"`
	Subjects  pq.StringArray `db:"subjects" json:"subjects"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

package models

import "time"

// Classroom represents a bookable room.
type Classroom struct {
	ID              string    `db:"id" json:"id"`
	ClassroomNumber int       `db:"classroom_number" json:"classroom_number"`
	Capacity        int       `db:"capacity" json:"capacity"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

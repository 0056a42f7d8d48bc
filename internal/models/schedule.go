package models

import "time"

// Schedule represents a class booking for a teacher and classroom at a
// specific date and nightly period. Reads populate the referenced teacher
// and classroom.
type Schedule struct {
	ID                string     `db:"id" json:"id"`
	TeacherID         string     `db:"teacher_id" json:"teacher_id"`
	ClassroomID       string     `db:"classroom_id" json:"classroom_id"`
	ScheduledDate     time.Time  `db:"scheduled_date" json:"scheduled_date"`
	DayOfWeek         string     `db:"day_of_week" json:"day_of_week"`
	Period            string     `db:"period" json:"period"`
	Subject           string     `db:"subject" json:"subject"`
	Description       *string    `db:"description" json:"description,omitempty"`
	MaxStudents       *int       `db:"max_students" json:"max_students,omitempty"`
	Status            string     `db:"status" json:"status"`
	IsRecurring       bool       `db:"is_recurring" json:"is_recurring"`
	RecurrenceEndDate *time.Time `db:"recurrence_end_date" json:"recurrence_end_date,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`

	Teacher   *Teacher   `db:"-" json:"teacher,omitempty"`
	Classroom *Classroom `db:"-" json:"classroom,omitempty"`
	Slot      *TimeSlot  `db:"-" json:"slot,omitempty"`
}

// PopulateSlot attaches the wall-clock window for the schedule's period.
func (s *Schedule) PopulateSlot() {
	if slot, ok := TimeSlots[s.Period]; ok {
		s.Slot = &slot
	}
}

// Conflict axes for schedule creation.
const (
	TeacherConflict   = "TEACHER_CONFLICT"
	ClassroomConflict = "CLASSROOM_CONFLICT"
)

// ConflictDetails identifies the booking an incoming schedule collides with.
type ConflictDetails struct {
	EntityType     string `json:"entityType"`
	EntityID       string `json:"entityId"`
	ConflictDate   string `json:"conflictDate"`
	ConflictPeriod string `json:"conflictPeriod"`
}

// ScheduleConflictError is returned when a teacher or classroom is already
// booked for the candidate date and period.
type ScheduleConflictError struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Details ConflictDetails `json:"details"`
}

// Error implements the error interface.
func (e *ScheduleConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// NewTeacherConflict builds the teacher-axis conflict error.
func NewTeacherConflict(teacherID string, date time.Time, period string) *ScheduleConflictError {
	return &ScheduleConflictError{
		Type:    TeacherConflict,
		Message: "Teacher is already scheduled for this date and period",
		Details: ConflictDetails{
			EntityType:     "Teacher",
			EntityID:       teacherID,
			ConflictDate:   date.UTC().Format(time.RFC3339),
			ConflictPeriod: period,
		},
	}
}

// NewClassroomConflict builds the classroom-axis conflict error.
func NewClassroomConflict(classroomID string, date time.Time, period string) *ScheduleConflictError {
	return &ScheduleConflictError{
		Type:    ClassroomConflict,
		Message: "Classroom is already scheduled for this date and period",
		Details: ConflictDetails{
			EntityType:     "Classroom",
			EntityID:       classroomID,
			ConflictDate:   date.UTC().Format(time.RFC3339),
			ConflictPeriod: period,
		},
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/edusync/scheduler-api/internal/models"
)

// Names of the composite unique indexes guarding the two conflict axes.
// A 23505 on either one is the authoritative double-booking signal.
const (
	teacherSlotConstraint   = "schedules_teacher_slot_key"
	classroomSlotConstraint = "schedules_classroom_slot_key"
)

const uniqueViolation = "23505"

// ScheduleRepository provides persistence for schedules.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleSelect = `SELECT
	s.id, s.teacher_id, s.classroom_id, s.scheduled_date, s.day_of_week, s.period,
	s.subject, s.description, s.max_students, s.status, s.is_recurring,
	s.recurrence_end_date, s.created_at, s.updated_at,
	t.id AS "teacher.id", t.full_name AS "teacher.full_name", t.email AS "teacher.email",
	t.subjects AS "teacher.subjects", t.created_at AS "teacher.created_at", t.updated_at AS "teacher.updated_at",
	c.id AS "classroom.id", c.classroom_number AS "classroom.classroom_number",
	c.capacity AS "classroom.capacity", c.created_at AS "classroom.created_at", c.updated_at AS "classroom.updated_at"
	FROM schedules s
	JOIN teachers t ON t.id = s.teacher_id
	JOIN classrooms c ON c.id = s.classroom_id`

type scheduleRow struct {
	models.Schedule
	JoinedTeacher   models.Teacher   `db:"teacher"`
	JoinedClassroom models.Classroom `db:"classroom"`
}

func (row scheduleRow) toModel() models.Schedule {
	schedule := row.Schedule
	teacher := row.JoinedTeacher
	classroom := row.JoinedClassroom
	schedule.Teacher = &teacher
	schedule.Classroom = &classroom
	schedule.PopulateSlot()
	return schedule
}

// List returns all schedules with teacher and classroom populated.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	query := scheduleSelect + " ORDER BY s.scheduled_date ASC, s.period ASC"
	var rows []scheduleRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	schedules := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, row.toModel())
	}
	return schedules, nil
}

// FindByID loads a schedule by id with its references populated.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := scheduleSelect + " WHERE s.id = $1"
	var row scheduleRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	schedule := row.toModel()
	return &schedule, nil
}

// ExistsTeacherBooking reports whether the teacher already holds an active
// booking for the date and period.
func (r *ScheduleRepository) ExistsTeacherBooking(ctx context.Context, teacherID string, date time.Time, period string) (bool, error) {
	const query = `SELECT 1 FROM schedules WHERE teacher_id = $1 AND scheduled_date = $2 AND period = $3 AND status = 'ACTIVE' LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, date.UTC(), period); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher booking: %w", err)
	}
	return true, nil
}

// ExistsClassroomBooking reports whether the classroom already holds an
// active booking for the date and period.
func (r *ScheduleRepository) ExistsClassroomBooking(ctx context.Context, classroomID string, date time.Time, period string) (bool, error) {
	const query = `SELECT 1 FROM schedules WHERE classroom_id = $1 AND scheduled_date = $2 AND period = $3 AND status = 'ACTIVE' LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, classroomID, date.UTC(), period); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check classroom booking: %w", err)
	}
	return true, nil
}

// Create stores a new schedule record. Unique-index violations on either
// conflict axis surface as *models.ScheduleConflictError so a race lost
// between the pre-check and the insert still yields a conflict, not a 500.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	schedule.UpdatedAt = now

	const query = `INSERT INTO schedules (id, teacher_id, classroom_id, scheduled_date, day_of_week, period, subject, description, max_students, status, is_recurring, recurrence_end_date, created_at, updated_at)
		VALUES (:id, :teacher_id, :classroom_id, :scheduled_date, :day_of_week, :period, :subject, :description, :max_students, :status, :is_recurring, :recurrence_end_date, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		if conflict := conflictFromPq(err, schedule); conflict != nil {
			return conflict
		}
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// Delete removes a schedule by id.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}

func conflictFromPq(err error, schedule *models.Schedule) *models.ScheduleConflictError {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return nil
	}
	switch pqErr.Constraint {
	case teacherSlotConstraint:
		return models.NewTeacherConflict(schedule.TeacherID, schedule.ScheduledDate, schedule.Period)
	case classroomSlotConstraint:
		return models.NewClassroomConflict(schedule.ClassroomID, schedule.ScheduledDate, schedule.Period)
	default:
		return nil
	}
}

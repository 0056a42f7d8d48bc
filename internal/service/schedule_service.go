package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
	"github.com/edusync/scheduler-api/pkg/export"
)

const scheduleListCacheKey = "schedules:list"

type scheduleRepository interface {
	List(ctx context.Context) ([]models.Schedule, error)
	FindByID(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
}

type conflictChecker interface {
	Check(ctx context.Context, candidate BookingCandidate) error
}

type teacherLookup interface {
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

type classroomLookup interface {
	FindByID(ctx context.Context, id string) (*models.Classroom, error)
}

// CreateScheduleRequest describes payload for creating a schedule.
type CreateScheduleRequest struct {
	TeacherID         string  `json:"teacherId" validate:"required,uuid"`
	ClassroomID       string  `json:"classroomId" validate:"required,uuid"`
	ScheduledDate     string  `json:"scheduledDate" validate:"required"`
	Period            string  `json:"period" validate:"required,oneof=PERIOD_NIGHT_1 PERIOD_NIGHT_2 PERIOD_NIGHT_3 PERIOD_NIGHT_4 PERIOD_NIGHT_5"`
	Subject           string  `json:"subject" validate:"required,oneof=ALGORITHMS DATA_STRUCTURES DATABASES OPERATING_SYSTEMS COMPUTER_NETWORKS SOFTWARE_ENGINEERING"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	MaxStudents       *int    `json:"maxStudents" validate:"omitempty,gt=0"`
	IsRecurring       bool    `json:"isRecurring"`
	RecurrenceEndDate *string `json:"recurrenceEndDate"`
}

// ScheduleService coordinates the schedule creation workflow and listings.
type ScheduleService struct {
	repo       scheduleRepository
	teachers   teacherLookup
	classrooms classroomLookup
	conflicts  conflictChecker
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewScheduleService instantiates ScheduleService.
func NewScheduleService(repo scheduleRepository, teachers teacherLookup, classrooms classroomLookup, conflicts conflictChecker, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		repo:       repo,
		teachers:   teachers,
		classrooms: classrooms,
		conflicts:  conflicts,
		cache:      cache,
		validator:  validate,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns all schedules with references populated, serving from cache
// when possible. An empty store yields an empty slice.
func (s *ScheduleService) List(ctx context.Context) ([]models.Schedule, error) {
	var cached []models.Schedule
	if hit, err := s.cache.Get(ctx, scheduleListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedules")
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}

	s.cache.Set(ctx, scheduleListCacheKey, schedules)
	return schedules, nil
}

// Create runs the schedule creation workflow: payload validation, date
// parsing, referenced-entity lookups, temporal business rules, conflict
// detection, then exactly one persistence write.
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidation(err)
	}

	scheduledDate, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		return nil, appErrors.Validation(appErrors.FieldError{Field: "scheduledDate", Message: "must be a valid RFC3339 timestamp"})
	}

	var recurrenceEnd *time.Time
	if req.RecurrenceEndDate != nil && *req.RecurrenceEndDate != "" {
		parsed, err := time.Parse(time.RFC3339, *req.RecurrenceEndDate)
		if err != nil {
			return nil, appErrors.Validation(appErrors.FieldError{Field: "recurrenceEndDate", Message: "must be a valid RFC3339 timestamp"})
		}
		recurrenceEnd = &parsed
	}

	teacher, err := s.teachers.FindByID(ctx, req.TeacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	classroom, err := s.classrooms.FindByID(ctx, req.ClassroomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Classroom not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}

	if scheduledDate.Before(s.now()) {
		return nil, appErrors.BusinessRule("Scheduled date cannot be in the past")
	}
	if req.IsRecurring && recurrenceEnd == nil {
		return nil, appErrors.BusinessRule("Recurrence end date required when schedule is recurring")
	}
	if recurrenceEnd != nil && !recurrenceEnd.After(scheduledDate) {
		return nil, appErrors.BusinessRule("Recurrence end date must be after scheduled date")
	}

	candidate := BookingCandidate{
		TeacherID:     req.TeacherID,
		ClassroomID:   req.ClassroomID,
		ScheduledDate: scheduledDate,
		Period:        req.Period,
	}
	if err := s.conflicts.Check(ctx, candidate); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		TeacherID:         req.TeacherID,
		ClassroomID:       req.ClassroomID,
		ScheduledDate:     scheduledDate.UTC(),
		DayOfWeek:         models.DayOfWeekFor(scheduledDate),
		Period:            req.Period,
		Subject:           req.Subject,
		Description:       req.Description,
		MaxStudents:       req.MaxStudents,
		Status:            models.StatusActive,
		IsRecurring:       req.IsRecurring,
		RecurrenceEndDate: recurrenceEnd,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		var conflict *models.ScheduleConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule")
	}

	schedule.Teacher = teacher
	schedule.Classroom = classroom
	schedule.PopulateSlot()

	s.cache.Invalidate(ctx, "schedules:*")
	return schedule, nil
}

// Export renders the full schedule listing in the requested tabular format.
func (s *ScheduleService) Export(ctx context.Context, format string) ([]byte, string, error) {
	schedules, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Date", "Day", "Period", "Start", "End", "Subject", "Teacher", "Classroom", "Status"},
	}
	for _, schedule := range schedules {
		teacherName := schedule.TeacherID
		if schedule.Teacher != nil {
			teacherName = schedule.Teacher.FullName
		}
		classroomNumber := schedule.ClassroomID
		if schedule.Classroom != nil {
			classroomNumber = strconv.Itoa(schedule.Classroom.ClassroomNumber)
		}
		start, end := "", ""
		if slot, ok := models.TimeSlots[schedule.Period]; ok {
			start, end = slot.StartTime, slot.EndTime
		}
		dataset.Rows = append(dataset.Rows, []string{
			schedule.ScheduledDate.UTC().Format("2006-01-02"),
			schedule.DayOfWeek,
			schedule.Period,
			start,
			end,
			schedule.Subject,
			teacherName,
			classroomNumber,
			schedule.Status,
		})
	}

	switch format {
	case "csv":
		payload, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := export.NewPDFExporter().Render(dataset, "Class Schedules")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Validation(appErrors.FieldError{Field: "format", Message: fmt.Sprintf("unsupported export format %q", format)})
	}
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

type bookingLookup interface {
	ExistsTeacherBooking(ctx context.Context, teacherID string, date time.Time, period string) (bool, error)
	ExistsClassroomBooking(ctx context.Context, classroomID string, date time.Time, period string) (bool, error)
}

// BookingCandidate identifies a prospective schedule slot to check.
type BookingCandidate struct {
	TeacherID     string
	ClassroomID   string
	ScheduledDate time.Time
	Period        string
}

// ScheduleConflictChecker detects double-bookings on the teacher and
// classroom axes before a schedule is persisted.
type ScheduleConflictChecker struct {
	repo   bookingLookup
	logger *zap.Logger
}

// NewScheduleConflictChecker constructs a conflict checker.
func NewScheduleConflictChecker(repo bookingLookup, logger *zap.Logger) *ScheduleConflictChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleConflictChecker{repo: repo, logger: logger}
}

// Check queries the teacher axis first, then the classroom axis, and returns
// a *models.ScheduleConflictError on the first booked slot it finds. Both
// lookups passing means the candidate slot is free at check time; the
// repository's unique indexes remain the final arbiter on insert.
func (s *ScheduleConflictChecker) Check(ctx context.Context, candidate BookingCandidate) error {
	booked, err := s.repo.ExistsTeacherBooking(ctx, candidate.TeacherID, candidate.ScheduledDate, candidate.Period)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher bookings")
	}
	if booked {
		s.logger.Info("schedule conflict",
			zap.String("type", models.TeacherConflict),
			zap.String("teacher_id", candidate.TeacherID),
			zap.String("period", candidate.Period),
		)
		return models.NewTeacherConflict(candidate.TeacherID, candidate.ScheduledDate, candidate.Period)
	}

	booked, err = s.repo.ExistsClassroomBooking(ctx, candidate.ClassroomID, candidate.ScheduledDate, candidate.Period)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check classroom bookings")
	}
	if booked {
		s.logger.Info("schedule conflict",
			zap.String("type", models.ClassroomConflict),
			zap.String("classroom_id", candidate.ClassroomID),
			zap.String("period", candidate.Period),
		)
		return models.NewClassroomConflict(candidate.ClassroomID, candidate.ScheduledDate, candidate.Period)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
)

type mockBookingLookup struct {
	teacherBooked   bool
	classroomBooked bool
	teacherErr      error
	classroomErr    error
}

func (m *mockBookingLookup) ExistsTeacherBooking(ctx context.Context, teacherID string, date time.Time, period string) (bool, error) {
	return m.teacherBooked, m.teacherErr
}

func (m *mockBookingLookup) ExistsClassroomBooking(ctx context.Context, classroomID string, date time.Time, period string) (bool, error) {
	return m.classroomBooked, m.classroomErr
}

func candidateAt(date time.Time) BookingCandidate {
	return BookingCandidate{
		TeacherID:     "teacher-1",
		ClassroomID:   "classroom-1",
		ScheduledDate: date,
		Period:        models.PeriodNight2,
	}
}

func TestConflictCheckerFreeSlot(t *testing.T) {
	checker := NewScheduleConflictChecker(&mockBookingLookup{}, zap.NewNop())

	err := checker.Check(context.Background(), candidateAt(time.Now()))
	assert.NoError(t, err)
}

func TestConflictCheckerTeacherBooked(t *testing.T) {
	checker := NewScheduleConflictChecker(&mockBookingLookup{teacherBooked: true}, zap.NewNop())

	date := time.Date(2026, 3, 2, 18, 20, 0, 0, time.UTC)
	err := checker.Check(context.Background(), candidateAt(date))
	require.Error(t, err)

	var conflict *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, models.TeacherConflict, conflict.Type)
	assert.Equal(t, "Teacher", conflict.Details.EntityType)
	assert.Equal(t, "teacher-1", conflict.Details.EntityID)
	assert.Equal(t, models.PeriodNight2, conflict.Details.ConflictPeriod)
	assert.Equal(t, "2026-03-02T18:20:00Z", conflict.Details.ConflictDate)
}

func TestConflictCheckerClassroomBooked(t *testing.T) {
	checker := NewScheduleConflictChecker(&mockBookingLookup{classroomBooked: true}, zap.NewNop())

	err := checker.Check(context.Background(), candidateAt(time.Now()))
	require.Error(t, err)

	var conflict *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, models.ClassroomConflict, conflict.Type)
	assert.Equal(t, "Classroom", conflict.Details.EntityType)
	assert.Equal(t, "classroom-1", conflict.Details.EntityID)
}

func TestConflictCheckerTeacherAxisWins(t *testing.T) {
	checker := NewScheduleConflictChecker(&mockBookingLookup{teacherBooked: true, classroomBooked: true}, zap.NewNop())

	err := checker.Check(context.Background(), candidateAt(time.Now()))
	require.Error(t, err)

	var conflict *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, models.TeacherConflict, conflict.Type)
}

func TestConflictCheckerLookupError(t *testing.T) {
	checker := NewScheduleConflictChecker(&mockBookingLookup{teacherErr: errors.New("boom")}, zap.NewNop())

	err := checker.Check(context.Background(), candidateAt(time.Now()))
	require.Error(t, err)

	var conflict *models.ScheduleConflictError
	assert.False(t, errors.As(err, &conflict))
}

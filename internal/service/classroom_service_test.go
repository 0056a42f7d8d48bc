package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

type mockClassroomRepo struct {
	items      map[string]*models.Classroom
	numbers    map[int]string
	listResult []models.Classroom
	deleted    []string
	updated    *models.Classroom
}

func (m *mockClassroomRepo) List(ctx context.Context) ([]models.Classroom, error) {
	return m.listResult, nil
}

func (m *mockClassroomRepo) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	if classroom, ok := m.items[id]; ok {
		cp := *classroom
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassroomRepo) ExistsByNumber(ctx context.Context, number int, excludeID string) (bool, error) {
	owner, ok := m.numbers[number]
	if !ok {
		return false, nil
	}
	if excludeID != "" && owner == excludeID {
		return false, nil
	}
	return true, nil
}

func (m *mockClassroomRepo) Create(ctx context.Context, classroom *models.Classroom) error {
	if m.items == nil {
		m.items = make(map[string]*models.Classroom)
	}
	if classroom.ID == "" {
		classroom.ID = uuid.NewString()
	}
	cp := *classroom
	m.items[classroom.ID] = &cp
	return nil
}

func (m *mockClassroomRepo) Update(ctx context.Context, classroom *models.Classroom) error {
	cp := *classroom
	m.updated = &cp
	m.items[classroom.ID] = &cp
	return nil
}

func (m *mockClassroomRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.items, id)
	return nil
}

func TestClassroomServiceCreate(t *testing.T) {
	repo := &mockClassroomRepo{}
	svc := NewClassroomService(repo, validator.New(), zap.NewNop())

	classroom, err := svc.Create(context.Background(), CreateClassroomRequest{
		ClassroomNumber: 101,
		Capacity:        30,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, classroom.ID)
	assert.Equal(t, 101, classroom.ClassroomNumber)
	assert.Equal(t, 30, classroom.Capacity)
}

func TestClassroomServiceCreateDuplicateNumber(t *testing.T) {
	repo := &mockClassroomRepo{numbers: map[int]string{101: "other"}}
	svc := NewClassroomService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClassroomRequest{
		ClassroomNumber: 101,
		Capacity:        30,
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "classroomNumber", appErr.Details[0].Field)
	assert.Equal(t, "Classroom number 101 already exists", appErr.Details[0].Message)
}

func TestClassroomServiceCreateValidation(t *testing.T) {
	svc := NewClassroomService(&mockClassroomRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClassroomRequest{
		ClassroomNumber: 101,
		Capacity:        -1,
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestClassroomServiceUpdateCapacity(t *testing.T) {
	id := uuid.NewString()
	repo := &mockClassroomRepo{
		items:   map[string]*models.Classroom{id: {ID: id, ClassroomNumber: 101, Capacity: 30}},
		numbers: map[int]string{101: id},
	}
	svc := NewClassroomService(repo, validator.New(), zap.NewNop())

	capacity := 45
	classroom, err := svc.Update(context.Background(), UpdateClassroomRequest{
		ClassroomID: id,
		Capacity:    &capacity,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, classroom.Capacity)
	assert.Equal(t, 101, classroom.ClassroomNumber)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 45, repo.updated.Capacity)
}

func TestClassroomServiceUpdateNumberCollision(t *testing.T) {
	id := uuid.NewString()
	repo := &mockClassroomRepo{
		items:   map[string]*models.Classroom{id: {ID: id, ClassroomNumber: 101, Capacity: 30}},
		numbers: map[int]string{101: id, 202: "other"},
	}
	svc := NewClassroomService(repo, validator.New(), zap.NewNop())

	number := 202
	_, err := svc.Update(context.Background(), UpdateClassroomRequest{
		ClassroomID:     id,
		ClassroomNumber: &number,
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "Classroom number 202 already exists", appErr.Details[0].Message)
	assert.Nil(t, repo.updated)
}

func TestClassroomServiceUpdateNotFound(t *testing.T) {
	svc := NewClassroomService(&mockClassroomRepo{}, validator.New(), zap.NewNop())

	capacity := 45
	_, err := svc.Update(context.Background(), UpdateClassroomRequest{
		ClassroomID: uuid.NewString(),
		Capacity:    &capacity,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestClassroomServiceDeleteNotFound(t *testing.T) {
	repo := &mockClassroomRepo{}
	svc := NewClassroomService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), DeleteClassroomRequest{ClassroomID: uuid.NewString()})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deleted)
}

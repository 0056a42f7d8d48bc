package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

type mockTeacherRepo struct {
	items      map[string]*models.Teacher
	emails     map[string]bool
	listResult []models.Teacher
	listErr    error
	deleted    []string
}

func (m *mockTeacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if teacher, ok := m.items[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.emails[strings.ToLower(email)], nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	if m.items == nil {
		m.items = make(map[string]*models.Teacher)
	}
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	cp := *teacher
	m.items[teacher.ID] = &cp
	return nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.items, id)
	return nil
}

func TestTeacherServiceCreate(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, validator.New(), zap.NewNop())

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Subjects: []string{models.SubjectAlgorithms, models.SubjectDatabases},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, teacher.ID)
	assert.Equal(t, "Ada Lovelace", teacher.FullName)
	assert.Equal(t, "ada@example.com", teacher.Email)
	assert.Len(t, teacher.Subjects, 2)
}

func TestTeacherServiceCreateDuplicateEmail(t *testing.T) {
	repo := &mockTeacherRepo{emails: map[string]bool{"ada@example.com": true}}
	svc := NewTeacherService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Subjects: []string{models.SubjectAlgorithms},
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "Teacher with email ada@example.com already exists", appErr.Message)
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateTeacherRequest{
		Name:     "Ada Lovelace",
		Email:    "not-an-email",
		Subjects: []string{"KNITTING"},
	})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.NotEmpty(t, appErr.Details)
}

func TestTeacherServiceGetNotFound(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, validator.New(), zap.NewNop())

	id := uuid.NewString()
	_, err := svc.Get(context.Background(), id)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, fmt.Sprintf("Teacher with ID %q was not found", id), appErr.Message)
}

func TestTeacherServiceListEmpty(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, validator.New(), zap.NewNop())

	teachers, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, teachers)
	assert.Empty(t, teachers)
}

func TestTeacherServiceDelete(t *testing.T) {
	id := uuid.NewString()
	repo := &mockTeacherRepo{items: map[string]*models.Teacher{
		id: {ID: id, FullName: "Ada Lovelace"},
	}}
	svc := NewTeacherService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), DeleteTeacherRequest{TeacherID: id})
	require.NoError(t, err)
	assert.Equal(t, []string{id}, repo.deleted)
}

func TestTeacherServiceDeleteNotFound(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), DeleteTeacherRequest{TeacherID: uuid.NewString()})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Empty(t, repo.deleted)
}

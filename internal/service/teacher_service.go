package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

// CreateTeacherRequest represents payload for creating teachers.
type CreateTeacherRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Subjects []string `json:"subjects" validate:"required,min=1,dive,oneof=ALGORITHMS DATA_STRUCTURES DATABASES OPERATING_SYSTEMS COMPUTER_NETWORKS SOFTWARE_ENGINEERING"`
}

// DeleteTeacherRequest identifies the teacher to remove.
type DeleteTeacherRequest struct {
	TeacherID string `json:"teacherId" validate:"required,uuid"`
}

// TeacherService orchestrates teacher operations.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns every teacher; an empty store yields an empty slice.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, notFoundMessage("Teacher", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// Create registers a new teacher record, enforcing email uniqueness.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidation(err)
	}

	email := strings.TrimSpace(req.Email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email uniqueness")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("Teacher with email %s already exists", email))
	}

	teacher := &models.Teacher{
		FullName: strings.TrimSpace(req.Name),
		Email:    email,
		Subjects: req.Subjects,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return teacher, nil
}

// Delete removes a teacher after confirming it exists.
func (s *TeacherService) Delete(ctx context.Context, req DeleteTeacherRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.FromValidation(err)
	}
	if _, err := s.repo.FindByID(ctx, req.TeacherID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, notFoundMessage("Teacher", req.TeacherID))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if err := s.repo.Delete(ctx, req.TeacherID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	return nil
}

func notFoundMessage(entity, id string) string {
	return fmt.Sprintf("%s with ID %q was not found", entity, id)
}

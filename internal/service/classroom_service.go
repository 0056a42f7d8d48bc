package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusync/scheduler-api/internal/models"
	appErrors "github.com/edusync/scheduler-api/pkg/errors"
)

type classroomRepository interface {
	List(ctx context.Context) ([]models.Classroom, error)
	FindByID(ctx context.Context, id string) (*models.Classroom, error)
	ExistsByNumber(ctx context.Context, number int, excludeID string) (bool, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	Update(ctx context.Context, classroom *models.Classroom) error
	Delete(ctx context.Context, id string) error
}

// CreateClassroomRequest represents payload for creating classrooms.
type CreateClassroomRequest struct {
	ClassroomNumber int `json:"classroomNumber" validate:"required,gt=0"`
	Capacity        int `json:"capacity" validate:"required,gt=0"`
}

// UpdateClassroomRequest carries a partial classroom patch.
type UpdateClassroomRequest struct {
	ClassroomID     string `json:"classroomId" validate:"required,uuid"`
	ClassroomNumber *int   `json:"classroomNumber" validate:"omitempty,gt=0"`
	Capacity        *int   `json:"capacity" validate:"omitempty,gt=0"`
}

// DeleteClassroomRequest identifies the classroom to remove.
type DeleteClassroomRequest struct {
	ClassroomID string `json:"classroomId" validate:"required,uuid"`
}

// ClassroomService orchestrates classroom operations.
type ClassroomService struct {
	repo      classroomRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService constructs a ClassroomService.
func NewClassroomService(repo classroomRepository, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{repo: repo, validator: validate, logger: logger}
}

// List returns every classroom; an empty store yields an empty slice.
func (s *ClassroomService) List(ctx context.Context) ([]models.Classroom, error) {
	classrooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classrooms")
	}
	if classrooms == nil {
		classrooms = []models.Classroom{}
	}
	return classrooms, nil
}

// Get returns a classroom by id.
func (s *ClassroomService) Get(ctx context.Context, id string) (*models.Classroom, error) {
	classroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, notFoundMessage("Classroom", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}
	return classroom, nil
}

// Create registers a new classroom, enforcing number uniqueness.
func (s *ClassroomService) Create(ctx context.Context, req CreateClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidation(err)
	}

	exists, err := s.repo.ExistsByNumber(ctx, req.ClassroomNumber, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check classroom number")
	}
	if exists {
		return nil, duplicateNumberError(req.ClassroomNumber)
	}

	classroom := &models.Classroom{
		ClassroomNumber: req.ClassroomNumber,
		Capacity:        req.Capacity,
	}
	if err := s.repo.Create(ctx, classroom); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create classroom")
	}
	return classroom, nil
}

// Update applies a partial patch after confirming the classroom exists.
func (s *ClassroomService) Update(ctx context.Context, req UpdateClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidation(err)
	}

	classroom, err := s.repo.FindByID(ctx, req.ClassroomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, notFoundMessage("Classroom", req.ClassroomID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}

	if req.ClassroomNumber != nil && *req.ClassroomNumber != classroom.ClassroomNumber {
		exists, err := s.repo.ExistsByNumber(ctx, *req.ClassroomNumber, classroom.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check classroom number")
		}
		if exists {
			return nil, duplicateNumberError(*req.ClassroomNumber)
		}
		classroom.ClassroomNumber = *req.ClassroomNumber
	}
	if req.Capacity != nil {
		classroom.Capacity = *req.Capacity
	}

	if err := s.repo.Update(ctx, classroom); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update classroom")
	}
	return classroom, nil
}

// Delete removes a classroom after confirming it exists.
func (s *ClassroomService) Delete(ctx context.Context, req DeleteClassroomRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.FromValidation(err)
	}
	if _, err := s.repo.FindByID(ctx, req.ClassroomID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, notFoundMessage("Classroom", req.ClassroomID))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}
	if err := s.repo.Delete(ctx, req.ClassroomID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete classroom")
	}
	return nil
}

// Duplicate classroom numbers render as a field-level validation failure.
func duplicateNumberError(number int) *appErrors.Error {
	return appErrors.Validation(appErrors.FieldError{
		Field:   "classroomNumber",
		Message: fmt.Sprintf("Classroom number %d already exists", number),
	})
}

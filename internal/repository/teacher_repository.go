package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edusync/scheduler-api/internal/models"
)

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

const teacherColumns = "id, full_name, email, subjects, created_at, updated_at"

// List returns every teacher ordered by creation time.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers ORDER BY created_at DESC", teacherColumns)
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers WHERE id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByEmail checks whether a teacher already uses the given email.
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = "SELECT 1 FROM teachers WHERE LOWER(email) = LOWER($1) LIMIT 1"
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher email: %w", err)
	}
	return true, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = now
	}
	teacher.UpdatedAt = now

	const query = `INSERT INTO teachers (id, full_name, email, subjects, created_at, updated_at)
		VALUES (:id, :full_name, :email, :subjects, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Delete removes a teacher by id.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return nil
}

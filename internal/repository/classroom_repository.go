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

// ClassroomRepository manages persistence for classrooms.
type ClassroomRepository struct {
	db *sqlx.DB
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

const classroomColumns = "id, classroom_number, capacity, created_at, updated_at"

// List returns every classroom ordered by room number.
func (r *ClassroomRepository) List(ctx context.Context) ([]models.Classroom, error) {
	query := fmt.Sprintf("SELECT %s FROM classrooms ORDER BY classroom_number ASC", classroomColumns)
	var classrooms []models.Classroom
	if err := r.db.SelectContext(ctx, &classrooms, query); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, nil
}

// FindByID fetches a classroom by ID.
func (r *ClassroomRepository) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	query := fmt.Sprintf("SELECT %s FROM classrooms WHERE id = $1", classroomColumns)
	var classroom models.Classroom
	if err := r.db.GetContext(ctx, &classroom, query, id); err != nil {
		return nil, err
	}
	return &classroom, nil
}

// ExistsByNumber checks whether another classroom carries the same number.
func (r *ClassroomRepository) ExistsByNumber(ctx context.Context, number int, excludeID string) (bool, error) {
	query := "SELECT 1 FROM classrooms WHERE classroom_number = $1"
	args := []interface{}{number}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check classroom number: %w", err)
	}
	return true, nil
}

// Create inserts a new classroom record.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	if classroom.ID == "" {
		classroom.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if classroom.CreatedAt.IsZero() {
		classroom.CreatedAt = now
	}
	classroom.UpdatedAt = now

	const query = `INSERT INTO classrooms (id, classroom_number, capacity, created_at, updated_at)
		VALUES (:id, :classroom_number, :capacity, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, classroom); err != nil {
		return fmt.Errorf("create classroom: %w", err)
	}
	return nil
}

// Update modifies an existing classroom record.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	classroom.UpdatedAt = time.Now().UTC()
	const query = `UPDATE classrooms SET classroom_number = :classroom_number, capacity = :capacity, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, classroom); err != nil {
		return fmt.Errorf("update classroom: %w", err)
	}
	return nil
}

// Delete removes a classroom by id.
func (r *ClassroomRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM classrooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete classroom: %w", err)
	}
	return nil
}

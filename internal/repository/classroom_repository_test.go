package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusync/scheduler-api/internal/models"
)

func TestClassroomRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db)

	mock.ExpectExec("INSERT INTO classrooms").
		WithArgs(sqlmock.AnyArg(), 101, 30, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	classroom := &models.Classroom{ClassroomNumber: 101, Capacity: 30}
	err := repo.Create(context.Background(), classroom)
	require.NoError(t, err)
	assert.NotEmpty(t, classroom.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassroomRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "classroom_number", "capacity", "created_at", "updated_at"}).
		AddRow("classroom-1", 101, 30, now, now).
		AddRow("classroom-2", 202, 45, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, classroom_number, capacity, created_at, updated_at FROM classrooms ORDER BY classroom_number ASC")).
		WillReturnRows(rows)

	classrooms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classrooms, 2)
	assert.Equal(t, 101, classrooms[0].ClassroomNumber)
	assert.Equal(t, 45, classrooms[1].Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassroomRepositoryExistsByNumber(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM classrooms WHERE classroom_number = $1 LIMIT 1")).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByNumber(context.Background(), 101, "")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassroomRepositoryExistsByNumberExcludesSelf(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM classrooms WHERE classroom_number = $1 AND id <> $2 LIMIT 1")).
		WithArgs(101, "classroom-1").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByNumber(context.Background(), 101, "classroom-1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassroomRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassroomRepository(db)

	mock.ExpectExec("UPDATE classrooms SET").
		WithArgs(101, 45, sqlmock.AnyArg(), "classroom-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	classroom := &models.Classroom{ID: "classroom-1", ClassroomNumber: 101, Capacity: 45}
	err := repo.Update(context.Background(), classroom)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

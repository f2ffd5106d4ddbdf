package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTodoRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	todo := &model.Todo{ID: uuid.New(), BoardID: uuid.New(), Content: "write tests", Position: 2}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "todos" \("id","board_id","content","position"\)`).
		WithArgs(todo.ID.String(), todo.BoardID.String(), "write tests", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := repo.Create(context.Background(), todo)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_GetByBoardIDs(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	b1, b2 := uuid.New(), uuid.New()
	t1, t2 := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "todos" WHERE board_id IN \(\$1,\$2\) ORDER BY position`).
		WithArgs(b1.String(), b2.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "content", "position"}).
			AddRow(t1.String(), b1.String(), "a", 0).
			AddRow(t2.String(), b2.String(), "b", 0))

	// Act
	todos, err := repo.GetByBoardIDs(context.Background(), []uuid.UUID{b1, b2})

	// Assert
	assert.NoError(t, err)
	if assert.Len(t, todos, 2) {
		assert.Equal(t, t1, todos[0].ID)
		assert.Equal(t, b2, todos[1].BoardID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_GetByBoardIDsEmpty(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	todos, err := repo.GetByBoardIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, todos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_UpdateContent(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos" SET "content"=\$1 WHERE id = \$2`).
		WithArgs("edited", id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateContent(context.Background(), id, "edited")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_UpdateContentNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "todos"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateContent(context.Background(), uuid.New(), "edited")

	assert.ErrorIs(t, err, repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_DeleteNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_UpsertCarriesOrderFields(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewTodoRepository(gormDB)

	source, dest := uuid.New(), uuid.New()
	todos := []model.Todo{
		{ID: uuid.New(), BoardID: source, Content: "stays", Position: 0},
		{ID: uuid.New(), BoardID: dest, Content: "moved", Position: 0},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "todos" .* ON CONFLICT \("id"\) DO UPDATE SET "board_id"="excluded"."board_id","content"="excluded"."content","position"="excluded"."position"`).
		WithArgs(
			todos[0].ID.String(), source.String(), "stays", 0,
			todos[1].ID.String(), dest.String(), "moved", 0,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	err := repo.Upsert(context.Background(), todos)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

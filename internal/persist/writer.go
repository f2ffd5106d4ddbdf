package persist

import (
	"context"

	"taskboard/internal/model"
)

type boardUpserter interface {
	UpsertPositions(ctx context.Context, boards []model.Board) error
}

type todoUpserter interface {
	Upsert(ctx context.Context, todos []model.Todo) error
}

// RepositoryWriter adapts the board and todo repositories to Writer.
type RepositoryWriter struct {
	Boards boardUpserter
	Todos  todoUpserter
}

func (w RepositoryWriter) UpsertBoards(ctx context.Context, boards []model.Board) error {
	return w.Boards.UpsertPositions(ctx, boards)
}

func (w RepositoryWriter) UpsertTodos(ctx context.Context, todos []model.Todo) error {
	return w.Todos.Upsert(ctx, todos)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create adds a new todo to the database
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// GetByBoardIDs retrieves the todos of every listed board, ordered by position
func (r *TodoRepository) GetByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]model.Todo, error) {
	if len(boardIDs) == 0 {
		return nil, nil
	}
	var todos []model.Todo
	result := r.db.WithContext(ctx).Where("board_id IN ?", boardIDs).Order("position").Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// UpdateContent rewrites the text of a todo
func (r *TodoRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	result := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("content", content)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by its ID
func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Upsert writes reordered todos as one batched upsert keyed by id. Board
// reference and position change on moves; content is carried so a row that
// was never inserted is still complete.
func (r *TodoRepository) Upsert(ctx context.Context, todos []model.Todo) error {
	if len(todos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"board_id", "content", "position"}),
		}).
		Create(&todos).Error
}

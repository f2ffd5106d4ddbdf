package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/model"
	"taskboard/internal/ordering"
	"taskboard/internal/repository"
)

type BoardStore interface {
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error)
	Create(ctx context.Context, board *model.Board) error
}

type TodoStore interface {
	GetByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Syncer receives reconciled orders after the in-memory state has changed.
// Implementations must not block.
type Syncer interface {
	SyncBoards(ownerID uuid.UUID, boards []model.Board)
	SyncTodos(ownerID uuid.UUID, todos []model.Todo)
}

// BoardView is a board together with its todos in position order.
type BoardView struct {
	model.Board
	Todos []model.Todo
}

type EditSession struct {
	TodoID uuid.UUID
	Text   string
}

// Workspace is one user's live board state and the entry points that change
// it. Each entry point runs to completion under the workspace lock before the
// next one starts; reorder persistence happens afterwards, in the background.
type Workspace struct {
	mu      sync.Mutex
	ownerID uuid.UUID
	boards  BoardStore
	todos   TodoStore
	syncer  Syncer

	store    *ordering.Store
	gesture  ordering.Interpreter
	selected uuid.UUID
	editing  *EditSession
}

func New(ownerID uuid.UUID, boards BoardStore, todos TodoStore, syncer Syncer) *Workspace {
	return &Workspace{
		ownerID: ownerID,
		boards:  boards,
		todos:   todos,
		syncer:  syncer,
		store:   ordering.NewStore(),
	}
}

func (w *Workspace) OwnerID() uuid.UUID {
	return w.ownerID
}

// Reload replaces the in-memory state with what the database holds. It is the
// only way to heal a divergence left by a failed reorder write.
func (w *Workspace) Reload(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	boards, err := w.boards.GetOwned(ctx, w.ownerID)
	if err != nil {
		return fmt.Errorf("load boards: %w", err)
	}
	ids := make([]uuid.UUID, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	todos, err := w.todos.GetByBoardIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}

	w.store.Load(boards, todos)
	w.gesture.Reset()
	w.editing = nil
	if _, ok := w.store.FindBoard(w.selected); !ok {
		w.selected = uuid.Nil
		if loaded := w.store.Boards(); len(loaded) > 0 {
			w.selected = loaded[0].ID
		}
	}
	return nil
}

func (w *Workspace) Boards() []model.Board {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Boards()
}

func (w *Workspace) TodosForBoard(boardID uuid.UUID) []model.Todo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.TodosForBoard(boardID)
}

// Snapshot returns every board with its todos, both in position order.
func (w *Workspace) Snapshot() []BoardView {
	w.mu.Lock()
	defer w.mu.Unlock()
	boards := w.store.Boards()
	views := make([]BoardView, len(boards))
	for i, b := range boards {
		views[i] = BoardView{Board: b, Todos: w.store.TodosForBoard(b.ID)}
	}
	return views
}

// Selected is the board AddTodo falls back to when none is given.
func (w *Workspace) Selected() uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected
}

func (w *Workspace) SelectBoard(boardID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.store.FindBoard(boardID); !ok {
		return fmt.Errorf("%w: %w", ErrNoBoardSelected, repository.ErrBoardNotFound)
	}
	w.selected = boardID
	return nil
}

// AddBoard creates a board at the end of the list. The first board ever
// created becomes the selected one.
func (w *Workspace) AddBoard(ctx context.Context, name string) (model.Board, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Board{}, ErrEmptyBoardName
	}
	if w.store.HasBoardNamed(name) {
		return model.Board{}, ErrDuplicateBoardName
	}

	board := model.Board{
		ID:       uuid.New(),
		Name:     name,
		Position: w.store.NextBoardPosition(),
		OwnerID:  w.ownerID,
	}
	if err := w.boards.Create(ctx, &board); err != nil {
		w.logger().WithError(err).Error("❌ adding board failed")
		return model.Board{}, fmt.Errorf("create board: %w", err)
	}

	w.store.InsertBoard(board)
	if w.selected == uuid.Nil {
		w.selected = board.ID
	}
	return board, nil
}

// AddTodo appends a todo to boardID, or to the selected board when boardID is
// uuid.Nil.
func (w *Workspace) AddTodo(ctx context.Context, boardID uuid.UUID, content string) (model.Todo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	content = strings.TrimSpace(content)
	if content == "" {
		return model.Todo{}, ErrEmptyContent
	}
	if boardID == uuid.Nil {
		boardID = w.selected
	}
	if _, ok := w.store.FindBoard(boardID); !ok {
		return model.Todo{}, ErrNoBoardSelected
	}

	todo := model.Todo{
		ID:       uuid.New(),
		BoardID:  boardID,
		Content:  content,
		Position: w.store.NextTodoPosition(boardID),
	}
	if err := w.todos.Create(ctx, &todo); err != nil {
		w.logger().WithError(err).Error("❌ adding todo failed")
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	if err := w.store.InsertTodo(todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (w *Workspace) DeleteTodo(ctx context.Context, todoID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.store.FindTodo(todoID); !ok {
		return ErrTodoNotFound
	}
	// A row already gone from the database still has to leave memory.
	if err := w.todos.Delete(ctx, todoID); err != nil && !errors.Is(err, repository.ErrTodoNotFound) {
		w.logger().WithError(err).WithField("todo", todoID).Error("❌ deleting todo failed")
		return fmt.Errorf("delete todo: %w", err)
	}

	w.store.RemoveTodo(todoID)
	if w.editing != nil && w.editing.TodoID == todoID {
		w.editing = nil
	}
	return nil
}

// StartEdit opens the edit session on a todo, seeded with its current text.
// Any previous session is discarded.
func (w *Workspace) StartEdit(todoID uuid.UUID) (EditSession, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	todo, ok := w.store.FindTodo(todoID)
	if !ok {
		return EditSession{}, ErrTodoNotFound
	}
	w.editing = &EditSession{TodoID: todo.ID, Text: todo.Content}
	return *w.editing, nil
}

func (w *Workspace) Editing() (EditSession, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editing == nil {
		return EditSession{}, false
	}
	return *w.editing, true
}

func (w *Workspace) SetEditText(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editing == nil {
		return ErrNotEditing
	}
	w.editing.Text = text
	return nil
}

// SaveEdit stores text as the edited todo's content and closes the session.
// Blank text is rejected and the session stays open.
func (w *Workspace) SaveEdit(ctx context.Context, text string) (model.Todo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.editing == nil {
		return model.Todo{}, ErrNotEditing
	}
	w.editing.Text = text
	content := strings.TrimSpace(text)
	if content == "" {
		return model.Todo{}, ErrEmptyContent
	}

	id := w.editing.TodoID
	if err := w.todos.UpdateContent(ctx, id, content); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		w.logger().WithError(err).WithField("todo", id).Error("❌ updating todo failed")
		return model.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	if !w.store.UpdateTodoContent(id, content) {
		return model.Todo{}, ErrTodoNotFound
	}

	w.editing = nil
	todo, _ := w.store.FindTodo(id)
	return todo, nil
}

func (w *Workspace) CancelEdit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editing = nil
}

// OnDragStart begins a gesture on a board or todo id. hint may be
// ordering.KindUnknown.
func (w *Workspace) OnDragStart(draggedID uuid.UUID, hint ordering.Kind) (ordering.Preview, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gesture.Start(w.store, draggedID, hint)
}

func (w *Workspace) ActiveDrag() (ordering.Preview, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gesture.Active()
}

// OnDragEnd finishes the gesture. The resulting order is visible to readers
// before this returns; its persistence is handed to the syncer. The returned
// intent has kind IntentNone when nothing moved.
func (w *Workspace) OnDragEnd(target *ordering.Target) ordering.Intent {
	w.mu.Lock()
	defer w.mu.Unlock()

	intent := w.gesture.End(w.store, target)
	if !w.apply(intent) {
		return ordering.Intent{}
	}
	return intent
}

func (w *Workspace) apply(intent ordering.Intent) bool {
	switch intent.Kind {
	case ordering.IntentReorderBoards:
		reordered, changed := ordering.ReorderBoards(w.store.Boards(), intent.FromIndex, intent.ToIndex)
		if !changed {
			return false
		}
		w.store.ReplaceBoards(reordered)
		w.syncer.SyncBoards(w.ownerID, reordered)
		return true

	case ordering.IntentReorderTodos:
		reordered, changed := ordering.ReorderTodosWithinBoard(
			w.store.TodosForBoard(intent.TargetBoardID), intent.Dragged.ID, intent.TargetPosition)
		if !changed {
			return false
		}
		if err := w.store.ReplaceTodosForBoards([]uuid.UUID{intent.TargetBoardID}, reordered); err != nil {
			w.logger().WithError(err).Error("❌ applying todo reorder failed")
			return false
		}
		w.syncer.SyncTodos(w.ownerID, reordered)
		return true

	case ordering.IntentMoveTodoAcrossBoards:
		dragged, ok := w.store.FindTodo(intent.Dragged.ID)
		if !ok {
			return false
		}
		var source, dest []model.Todo
		if intent.Append {
			source, dest = ordering.AppendTodoToBoard(
				w.store.TodosForBoard(intent.SourceBoardID),
				w.store.TodosForBoard(intent.TargetBoardID),
				dragged, intent.TargetBoardID)
		} else {
			source, dest = ordering.MoveTodoAcrossBoards(
				w.store.TodosForBoard(intent.SourceBoardID),
				w.store.TodosForBoard(intent.TargetBoardID),
				dragged, intent.TargetBoardID, intent.TargetPosition)
		}
		combined := append(source, dest...)
		if err := w.store.ReplaceTodosForBoards([]uuid.UUID{intent.SourceBoardID, intent.TargetBoardID}, combined); err != nil {
			w.logger().WithError(err).Error("❌ applying todo move failed")
			return false
		}
		w.syncer.SyncTodos(w.ownerID, combined)
		return true
	}
	return false
}

func (w *Workspace) logger() *log.Entry {
	return log.WithField("owner", w.ownerID)
}

package ordering

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

var (
	ErrUnknownBoard = errors.New("board not found")
	ErrForeignTodo  = errors.New("todo references a board outside the replaced set")
)

// Store holds one user's boards and todos in memory. Every mutation swaps in
// a freshly built slice, so readers never see a partially applied change.
type Store struct {
	mu     sync.RWMutex
	boards []model.Board
	todos  []model.Todo
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the whole state, typically with rows just read from the database.
func (s *Store) Load(boards []model.Board, todos []model.Todo) {
	b := slices.Clone(boards)
	slices.SortStableFunc(b, byBoardPosition)
	t := slices.Clone(todos)

	s.mu.Lock()
	s.boards, s.todos = b, t
	s.mu.Unlock()
}

// Boards returns a copy of all boards in position order.
func (s *Store) Boards() []model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.boards)
}

// TodosForBoard filters todos by board and sorts them by position. The result
// is derived from the flat collection on every call.
func (s *Store) TodosForBoard(boardID uuid.UUID) []model.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return todosForBoard(s.todos, boardID)
}

func (s *Store) FindBoard(id uuid.UUID) (model.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.boards {
		if b.ID == id {
			return b, true
		}
	}
	return model.Board{}, false
}

func (s *Store) FindTodo(id uuid.UUID) (model.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// BoardIndex returns the board's index in position order, or -1.
func (s *Store) BoardIndex(id uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.IndexFunc(s.boards, func(b model.Board) bool { return b.ID == id })
}

// HasBoardNamed reports whether a board with the same trimmed, case-folded
// name already exists.
func (s *Store) HasBoardNamed(name string) bool {
	name = strings.TrimSpace(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.boards {
		if strings.EqualFold(strings.TrimSpace(b.Name), name) {
			return true
		}
	}
	return false
}

func (s *Store) NextBoardPosition() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	positions := make([]int, len(s.boards))
	for i, b := range s.boards {
		positions[i] = b.Position
	}
	return NextPosition(positions)
}

func (s *Store) NextTodoPosition(boardID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var positions []int
	for _, t := range s.todos {
		if t.BoardID == boardID {
			positions = append(positions, t.Position)
		}
	}
	return NextPosition(positions)
}

// ReplaceBoards substitutes the whole board list with newOrder.
func (s *Store) ReplaceBoards(newOrder []model.Board) {
	b := slices.Clone(newOrder)
	s.mu.Lock()
	s.boards = b
	s.mu.Unlock()
}

// ReplaceTodosForBoards drops every todo on boardIDs and substitutes newTodos
// in one assignment. Each new todo must reference one of boardIDs, and every
// board in boardIDs must exist.
func (s *Store) ReplaceTodosForBoards(boardIDs []uuid.UUID, newTodos []model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := make(map[uuid.UUID]struct{}, len(boardIDs))
	for _, id := range boardIDs {
		if !slices.ContainsFunc(s.boards, func(b model.Board) bool { return b.ID == id }) {
			return fmt.Errorf("%w: %s", ErrUnknownBoard, id)
		}
		replaced[id] = struct{}{}
	}
	for _, t := range newTodos {
		if _, ok := replaced[t.BoardID]; !ok {
			return fmt.Errorf("%w: todo %s on board %s", ErrForeignTodo, t.ID, t.BoardID)
		}
	}

	next := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if _, ok := replaced[t.BoardID]; !ok {
			next = append(next, t)
		}
	}
	s.todos = append(next, newTodos...)
	return nil
}

func (s *Store) InsertBoard(board model.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(slices.Clone(s.boards), board)
	slices.SortStableFunc(next, byBoardPosition)
	s.boards = next
}

// InsertTodo appends a todo; its board must already be present.
func (s *Store) InsertTodo(todo model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.boards, func(b model.Board) bool { return b.ID == todo.BoardID }) {
		return fmt.Errorf("%w: %s", ErrUnknownBoard, todo.BoardID)
	}
	s.todos = append(slices.Clone(s.todos), todo)
	return nil
}

// UpdateTodoContent rewrites one todo's content; false when it does not exist.
func (s *Store) UpdateTodoContent(id uuid.UUID, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	next := slices.Clone(s.todos)
	next[i].Content = content
	s.todos = next
	return true
}

// RemoveTodo deletes one todo; false when it does not exist.
func (s *Store) RemoveTodo(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	s.todos = slices.Delete(slices.Clone(s.todos), i, i+1)
	return true
}

func todosForBoard(todos []model.Todo, boardID uuid.UUID) []model.Todo {
	var out []model.Todo
	for _, t := range todos {
		if t.BoardID == boardID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Todo) int { return cmp.Compare(a.Position, b.Position) })
	return out
}

func byBoardPosition(a, b model.Board) int {
	return cmp.Compare(a.Position, b.Position)
}

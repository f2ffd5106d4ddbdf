package workspace_test

import (
	"context"
	"slices"
	"sync"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

// memoryDB stands in for the board and todo repositories.
type memoryDB struct {
	mu     sync.Mutex
	boards []model.Board
	todos  []model.Todo

	createErr error
	updateErr error
	deleteErr error
	loadErr   error
	loads     int

	// holds, when set for an owner, parks GetOwned until the channel closes.
	holds   map[uuid.UUID]chan struct{}
	started chan uuid.UUID
}

func (m *memoryDB) hold(ownerID uuid.UUID) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.holds == nil {
		m.holds = make(map[uuid.UUID]chan struct{})
	}
	release := make(chan struct{})
	m.holds[ownerID] = release
	return release
}

func (m *memoryDB) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	m.mu.Lock()
	release := m.holds[ownerID]
	started := m.started
	m.mu.Unlock()
	if started != nil {
		started <- ownerID
	}
	if release != nil {
		<-release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	var out []model.Board
	for _, b := range m.boards {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryDB) Create(ctx context.Context, board *model.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.boards = append(m.boards, *board)
	return nil
}

type memoryTodos struct{ *memoryDB }

func (m memoryTodos) GetByBoardIDs(ctx context.Context, boardIDs []uuid.UUID) ([]model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Todo
	for _, t := range m.todos {
		if slices.Contains(boardIDs, t.BoardID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m memoryTodos) Create(ctx context.Context, todo *model.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.todos = append(m.todos, *todo)
	return nil
}

func (m memoryTodos) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos[i].Content = content
			return nil
		}
	}
	return repository.ErrTodoNotFound
}

func (m memoryTodos) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	i := slices.IndexFunc(m.todos, func(t model.Todo) bool { return t.ID == id })
	if i < 0 {
		return repository.ErrTodoNotFound
	}
	m.todos = slices.Delete(m.todos, i, i+1)
	return nil
}

type syncCall struct {
	owner  uuid.UUID
	boards []model.Board
	todos  []model.Todo
}

type recordingSyncer struct {
	mu    sync.Mutex
	calls []syncCall
}

func (s *recordingSyncer) SyncBoards(ownerID uuid.UUID, boards []model.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, syncCall{owner: ownerID, boards: boards})
}

func (s *recordingSyncer) SyncTodos(ownerID uuid.UUID, todos []model.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, syncCall{owner: ownerID, todos: todos})
}

func (s *recordingSyncer) Calls() []syncCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

package persist

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/model"
)

// Writer performs the batched upserts. The gorm repositories satisfy it
// through RepositoryWriter.
type Writer interface {
	UpsertBoards(ctx context.Context, boards []model.Board) error
	UpsertTodos(ctx context.Context, todos []model.Todo) error
}

type BatchKind string

const (
	BatchBoards BatchKind = "boards"
	BatchTodos  BatchKind = "todos"
)

// Batch is one upsert request built from a reconciled order.
type Batch struct {
	Kind    BatchKind
	OwnerID uuid.UUID
	Boards  []model.Board
	Todos   []model.Todo
}

func (b Batch) Size() int {
	if b.Kind == BatchBoards {
		return len(b.Boards)
	}
	return len(b.Todos)
}

type Options struct {
	Buffer  int
	Timeout time.Duration
}

// Syncer pushes reconciled orders to the database in the background. Callers
// never wait: a batch goes onto a queue drained by a single worker, which keeps
// writes in submission order. When the queue is full the batch is written from
// its own goroutine instead. Failures are logged and dropped; nothing is
// retried or rolled back.
type Syncer struct {
	writer  Writer
	log     *log.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	jobs   chan Batch
	wg     sync.WaitGroup
}

func NewSyncer(writer Writer, logger *log.Logger, opts Options) *Syncer {
	if writer == nil {
		panic("persist.NewSyncer: writer is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	if opts.Buffer < 0 {
		opts.Buffer = 0
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	s := &Syncer{
		writer:  writer,
		log:     logger,
		timeout: opts.Timeout,
		jobs:    make(chan Batch, opts.Buffer),
	}
	s.wg.Add(1)
	go s.run()
	logger.Infof("reorder sync started, buffer: %d, timeout: %v", opts.Buffer, opts.Timeout)
	return s
}

// SyncBoards queues an upsert of {id, owner, name, position} for every board.
func (s *Syncer) SyncBoards(ownerID uuid.UUID, boards []model.Board) {
	rows := make([]model.Board, len(boards))
	for i, b := range boards {
		rows[i] = model.Board{ID: b.ID, OwnerID: ownerID, Name: b.Name, Position: b.Position}
	}
	s.submit(Batch{Kind: BatchBoards, OwnerID: ownerID, Boards: rows})
}

// SyncTodos queues an upsert of {id, board_id, content, position} for every todo.
func (s *Syncer) SyncTodos(ownerID uuid.UUID, todos []model.Todo) {
	rows := make([]model.Todo, len(todos))
	copy(rows, todos)
	s.submit(Batch{Kind: BatchTodos, OwnerID: ownerID, Todos: rows})
}

// Close stops intake and waits for queued and in-flight writes.
func (s *Syncer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Syncer) submit(b Batch) {
	if b.Size() == 0 {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.entry(b).Warn("reorder sync closed, batch dropped")
		return
	}

	select {
	case s.jobs <- b:
	default:
		s.entry(b).Debug("reorder sync queue full, writing out of band")
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.write(b)
		}()
	}
}

func (s *Syncer) run() {
	defer s.wg.Done()
	for b := range s.jobs {
		s.write(b)
	}
}

func (s *Syncer) write(b Batch) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var err error
	switch b.Kind {
	case BatchBoards:
		err = s.writer.UpsertBoards(ctx, b.Boards)
	case BatchTodos:
		err = s.writer.UpsertTodos(ctx, b.Todos)
	}

	if err != nil {
		// The in-memory order stays as is; it may differ from the database
		// until the workspace is reloaded.
		s.entry(b).WithError(err).Error("❌ reorder sync failed")
		return
	}
	s.entry(b).Debug("reorder synced")
}

func (s *Syncer) entry(b Batch) *log.Entry {
	return s.log.WithFields(log.Fields{
		"batch": b.Kind,
		"owner": b.OwnerID,
		"size":  b.Size(),
	})
}

package ordering

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

var ErrUnknownEntity = errors.New("dragged entity not found")

// Kind tags an entity taking part in a drag gesture.
type Kind int

const (
	KindUnknown Kind = iota
	KindBoard
	KindTodo
)

func (k Kind) String() string {
	switch k {
	case KindBoard:
		return "board"
	case KindTodo:
		return "todo"
	default:
		return ""
	}
}

// ParseKind maps the classification carried by a raw gesture to a Kind. An
// empty string means "no hint".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return KindUnknown, nil
	case "board":
		return KindBoard, nil
	case "todo":
		return KindTodo, nil
	default:
		return KindUnknown, fmt.Errorf("unknown entity kind %q", s)
	}
}

// Ref identifies a resolved gesture participant.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

// Target is the raw drop target reported by the presentation layer. Kind is an
// optional hint; when set, only that collection is searched.
type Target struct {
	ID   uuid.UUID
	Kind Kind
}

// Preview is the snapshot captured when a drag starts. It is handed to the
// presentation layer and never mutated afterwards.
type Preview struct {
	Ref   Ref
	Board *model.Board
	Todos []model.Todo
	Todo  *model.Todo
}

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentReorderBoards
	IntentReorderTodos
	IntentMoveTodoAcrossBoards
)

func (k IntentKind) String() string {
	switch k {
	case IntentReorderBoards:
		return "reorder_boards"
	case IntentReorderTodos:
		return "reorder_todos"
	case IntentMoveTodoAcrossBoards:
		return "move_todo_across_boards"
	default:
		return "none"
	}
}

// Intent is the semantic move resolved from a finished gesture.
type Intent struct {
	Kind    IntentKind
	Dragged Ref

	// Board reorders.
	FromIndex int
	ToIndex   int

	// Todo reorders and moves.
	SourceBoardID  uuid.UUID
	TargetBoardID  uuid.UUID
	TargetPosition int
	// Append is set when the todo was dropped onto a board container rather
	// than onto a todo. The todo goes after the board's last todo whatever
	// positions the board currently holds; TargetPosition is then the index.
	Append bool
}

// Collections is the read side of the store the interpreter resolves ids against.
type Collections interface {
	FindBoard(id uuid.UUID) (model.Board, bool)
	FindTodo(id uuid.UUID) (model.Todo, bool)
	BoardIndex(id uuid.UUID) int
	TodosForBoard(boardID uuid.UUID) []model.Todo
}

type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
)

// Interpreter tracks the single active drag gesture. The zero value is idle.
type Interpreter struct {
	state   GestureState
	preview Preview
}

func (in *Interpreter) State() GestureState {
	return in.state
}

// Active returns the preview of the gesture in progress.
func (in *Interpreter) Active() (Preview, bool) {
	if in.state != StateDragging {
		return Preview{}, false
	}
	return in.preview, true
}

// Start begins a gesture on draggedID. A gesture already in progress is
// abandoned. An id found in neither collection leaves the interpreter idle.
func (in *Interpreter) Start(c Collections, draggedID uuid.UUID, hint Kind) (Preview, error) {
	in.Reset()

	ref, ok := Resolve(c, draggedID, hint)
	if !ok {
		return Preview{}, fmt.Errorf("%w: %s", ErrUnknownEntity, draggedID)
	}

	p := Preview{Ref: ref}
	switch ref.Kind {
	case KindBoard:
		b, _ := c.FindBoard(ref.ID)
		p.Board = &b
		p.Todos = c.TodosForBoard(ref.ID)
	case KindTodo:
		t, _ := c.FindTodo(ref.ID)
		p.Todo = &t
	}

	in.state = StateDragging
	in.preview = p
	return p, nil
}

// End finishes the gesture and classifies it. A nil target, an unresolvable
// target, a self drop and a board dropped onto a todo all yield IntentNone.
// The interpreter is idle again afterwards, whatever the outcome.
func (in *Interpreter) End(c Collections, target *Target) Intent {
	dragging := in.state == StateDragging
	dragged := in.preview.Ref
	in.Reset()

	if !dragging || target == nil {
		return Intent{}
	}
	over, ok := Resolve(c, target.ID, target.Kind)
	if !ok || over.ID == dragged.ID {
		return Intent{}
	}

	switch dragged.Kind {
	case KindBoard:
		return boardIntent(c, dragged, over)
	case KindTodo:
		return todoIntent(c, dragged, over)
	}
	return Intent{}
}

// Reset drops the active gesture, if any.
func (in *Interpreter) Reset() {
	in.state = StateIdle
	in.preview = Preview{}
}

// Resolve finds which collection holds id. Boards are searched before todos
// unless hint restricts the search to one of them.
func Resolve(c Collections, id uuid.UUID, hint Kind) (Ref, bool) {
	if hint != KindTodo {
		if _, ok := c.FindBoard(id); ok {
			return Ref{Kind: KindBoard, ID: id}, true
		}
	}
	if hint != KindBoard {
		if _, ok := c.FindTodo(id); ok {
			return Ref{Kind: KindTodo, ID: id}, true
		}
	}
	return Ref{}, false
}

func boardIntent(c Collections, dragged, over Ref) Intent {
	if over.Kind != KindBoard {
		return Intent{}
	}
	from, to := c.BoardIndex(dragged.ID), c.BoardIndex(over.ID)
	if from < 0 || to < 0 || from == to {
		return Intent{}
	}
	return Intent{Kind: IntentReorderBoards, Dragged: dragged, FromIndex: from, ToIndex: to}
}

func todoIntent(c Collections, dragged, over Ref) Intent {
	// Re-read the dragged todo: the preview may be stale, and the todo may
	// have been deleted while the gesture was in flight.
	todo, ok := c.FindTodo(dragged.ID)
	if !ok {
		return Intent{}
	}

	var targetBoard uuid.UUID
	var targetPosition int
	var appendToBoard bool
	switch over.Kind {
	case KindTodo:
		overTodo, _ := c.FindTodo(over.ID)
		targetBoard, targetPosition = overTodo.BoardID, overTodo.Position
	case KindBoard:
		// A drop onto its own board's container leaves the todo in place.
		if over.ID == todo.BoardID {
			return Intent{}
		}
		targetBoard, targetPosition = over.ID, len(c.TodosForBoard(over.ID))
		appendToBoard = true
	default:
		return Intent{}
	}

	intent := Intent{
		Dragged:        dragged,
		SourceBoardID:  todo.BoardID,
		TargetBoardID:  targetBoard,
		TargetPosition: targetPosition,
		Append:         appendToBoard,
	}
	if todo.BoardID == targetBoard {
		if todo.Position == targetPosition {
			return Intent{}
		}
		intent.Kind = IntentReorderTodos
		return intent
	}
	intent.Kind = IntentMoveTodoAcrossBoards
	return intent
}

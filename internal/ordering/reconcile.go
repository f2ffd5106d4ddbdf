package ordering

import (
	"slices"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

// ReorderBoards moves the board at from to the slot at to and renumbers every
// board to its new index. The input slice is never modified. changed is false
// when the move is a no-op (equal or out-of-range indices), in which case the
// returned slice is an untouched copy.
func ReorderBoards(boards []model.Board, from, to int) (reordered []model.Board, changed bool) {
	if from == to || !inRange(from, len(boards)) || !inRange(to, len(boards)) {
		return slices.Clone(boards), false
	}
	return RenumberBoards(arrayMove(boards, from, to)), true
}

// ReorderTodosWithinBoard moves draggedID to the slot currently held by the todo
// at targetPosition. todos must be one board's todos in position order.
func ReorderTodosWithinBoard(todos []model.Todo, draggedID uuid.UUID, targetPosition int) (reordered []model.Todo, changed bool) {
	from := indexOfTodo(todos, draggedID)
	to := indexOfPosition(todos, targetPosition)
	if from < 0 || to < 0 || from == to {
		return slices.Clone(todos), false
	}
	return RenumberTodos(arrayMove(todos, from, to)), true
}

// MoveTodoAcrossBoards removes dragged from source and inserts it into dest on
// destBoardID, in front of the todo currently holding targetPosition. When no
// todo holds targetPosition the moved todo is appended. Both sides come back
// renumbered from zero.
func MoveTodoAcrossBoards(source, dest []model.Todo, dragged model.Todo, destBoardID uuid.UUID, targetPosition int) (newSource, newDest []model.Todo) {
	newSource = RenumberTodos(withoutTodo(source, dragged.ID))

	remaining := withoutTodo(dest, dragged.ID)
	moved := dragged
	moved.BoardID = destBoardID
	moved.Position = targetPosition

	at := indexOfPosition(remaining, targetPosition)
	if at < 0 {
		at = min(max(targetPosition, 0), len(remaining))
	}
	newDest = RenumberTodos(slices.Insert(remaining, at, moved))
	return newSource, newDest
}

// AppendTodoToBoard removes dragged from source and puts it after the last todo
// of dest, on destBoardID. Positions already held in dest play no part, so a
// gap left by a delete cannot pull the todo in front of the last one. Both
// sides come back renumbered from zero.
func AppendTodoToBoard(source, dest []model.Todo, dragged model.Todo, destBoardID uuid.UUID) (newSource, newDest []model.Todo) {
	newSource = RenumberTodos(withoutTodo(source, dragged.ID))

	moved := dragged
	moved.BoardID = destBoardID
	newDest = RenumberTodos(append(withoutTodo(dest, dragged.ID), moved))
	return newSource, newDest
}

// RenumberBoards returns a copy of boards with each position set to its index.
func RenumberBoards(boards []model.Board) []model.Board {
	out := slices.Clone(boards)
	for i := range out {
		out[i].Position = i
	}
	return out
}

// RenumberTodos returns a copy of todos with each position set to its index.
func RenumberTodos(todos []model.Todo) []model.Todo {
	out := slices.Clone(todos)
	for i := range out {
		out[i].Position = i
	}
	return out
}

// NextPosition is the append slot for a collection holding the given positions:
// one past the current maximum, or 0 when empty. Under contiguous numbering this
// equals the collection length; after a delete leaves a gap it still never
// collides with an existing position.
func NextPosition(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	return slices.Max(positions) + 1
}

func arrayMove[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	return slices.Insert(out, to, items[from])
}

func withoutTodo(todos []model.Todo, id uuid.UUID) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func indexOfTodo(todos []model.Todo, id uuid.UUID) int {
	return slices.IndexFunc(todos, func(t model.Todo) bool { return t.ID == id })
}

func indexOfPosition(todos []model.Todo, position int) int {
	return slices.IndexFunc(todos, func(t model.Todo) bool { return t.Position == position })
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

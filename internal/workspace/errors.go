package workspace

import "errors"

// Validation errors. The workspace is left untouched when one is returned.
var (
	ErrEmptyContent       = errors.New("todo content cannot be empty")
	ErrEmptyBoardName     = errors.New("board name cannot be empty")
	ErrDuplicateBoardName = errors.New("a board with this name already exists")
	ErrNoBoardSelected    = errors.New("no board selected")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrNotEditing         = errors.New("no todo is being edited")
)

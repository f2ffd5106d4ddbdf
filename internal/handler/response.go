package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/ordering"
	"taskboard/internal/workspace"
)

type TodoResponse struct {
	ID       string `json:"id"`
	BoardID  string `json:"board_id"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

type BoardResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position int            `json:"position"`
	Selected bool           `json:"selected"`
	Todos    []TodoResponse `json:"todos"`
}

type EditResponse struct {
	TodoID string `json:"todo_id"`
	Text   string `json:"text"`
}

type SnapshotResponse struct {
	Boards          []BoardResponse `json:"boards"`
	SelectedBoardID string          `json:"selected_board_id,omitempty"`
	Editing         *EditResponse   `json:"editing,omitempty"`
}

type DragResponse struct {
	Active bool           `json:"active"`
	Kind   string         `json:"kind,omitempty"`
	ID     string         `json:"id,omitempty"`
	Board  *BoardResponse `json:"board,omitempty"`
	Todos  []TodoResponse `json:"todos,omitempty"`
	Todo   *TodoResponse  `json:"todo,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WorkspaceSource hands out the signed-in user's workspace.
type WorkspaceSource interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*workspace.Workspace, error)
}

// currentWorkspace writes the error response itself when it returns false.
func currentWorkspace(c *gin.Context, source WorkspaceSource) (*workspace.Workspace, bool) {
	ownerID, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}
	ws, err := source.Get(c.Request.Context(), ownerID)
	if err != nil {
		log.WithError(err).WithField("owner", ownerID).Error("❌ loading workspace failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load boards"})
		return nil, false
	}
	return ws, true
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func toTodoResponse(t model.Todo) TodoResponse {
	return TodoResponse{
		ID:       t.ID.String(),
		BoardID:  t.BoardID.String(),
		Content:  t.Content,
		Position: t.Position,
	}
}

// toTodoResponses never returns nil so empty lists encode as [].
func toTodoResponses(todos []model.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}

func toBoardResponse(b model.Board, todos []model.Todo, selected uuid.UUID) BoardResponse {
	return BoardResponse{
		ID:       b.ID.String(),
		Name:     b.Name,
		Position: b.Position,
		Selected: b.ID == selected,
		Todos:    toTodoResponses(todos),
	}
}

func snapshot(ws *workspace.Workspace) SnapshotResponse {
	selected := ws.Selected()
	views := ws.Snapshot()
	resp := SnapshotResponse{Boards: make([]BoardResponse, len(views))}
	for i, v := range views {
		resp.Boards[i] = toBoardResponse(v.Board, v.Todos, selected)
	}
	if selected != uuid.Nil {
		resp.SelectedBoardID = selected.String()
	}
	if edit, ok := ws.Editing(); ok {
		resp.Editing = &EditResponse{TodoID: edit.TodoID.String(), Text: edit.Text}
	}
	return resp
}

func toDragResponse(p ordering.Preview) DragResponse {
	resp := DragResponse{Active: true, Kind: p.Ref.Kind.String(), ID: p.Ref.ID.String()}
	if p.Board != nil {
		board := toBoardResponse(*p.Board, p.Todos, uuid.Nil)
		resp.Board = &board
		resp.Todos = board.Todos
	}
	if p.Todo != nil {
		todo := toTodoResponse(*p.Todo)
		resp.Todo = &todo
	}
	return resp
}

package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/workspace"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TodoHandler struct {
	workspaces WorkspaceSource
}

func NewTodoHandler(workspaces WorkspaceSource) *TodoHandler {
	return &TodoHandler{workspaces: workspaces}
}

type CreateTodoRequest struct {
	// BoardID defaults to the selected board.
	BoardID string `json:"board_id"`
	Content string `json:"content"`
}

type SaveEditRequest struct {
	Text string `json:"text"`
}

// Create godoc
// @Summary      Append a todo to a board
// @Tags         Todos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateTodoRequest true "Todo"
// @Success      201 {object} TodoResponse
// @Failure      400 {object} ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	boardID := uuid.Nil
	if req.BoardID != "" {
		id, err := uuid.Parse(req.BoardID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
			return
		}
		boardID = id
	}

	todo, err := ws.AddTodo(c.Request.Context(), boardID, req.Content)
	switch {
	case errors.Is(err, workspace.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todo content is required"})
		return
	case errors.Is(err, workspace.ErrNoBoardSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No board selected"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         Todos
// @Security     BearerAuth
// @Param        id path string true "Todo ID"
// @Success      200
// @Failure      404 {object} ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	todoID, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ws.DeleteTodo(c.Request.Context(), todoID)
	switch {
	case errors.Is(err, workspace.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

// StartEdit godoc
// @Summary      Open the edit session on a todo
// @Tags         Todos
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Todo ID"
// @Success      200 {object} EditResponse
// @Failure      404 {object} ErrorResponse
// @Router       /todos/{id}/edit [post]
func (h *TodoHandler) StartEdit(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	todoID, ok := parseID(c, "id")
	if !ok {
		return
	}

	session, err := ws.StartEdit(todoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, EditResponse{TodoID: session.TodoID.String(), Text: session.Text})
}

// Editing godoc
// @Summary      Show the open edit session
// @Tags         Todos
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} EditResponse
// @Failure      404 {object} ErrorResponse
// @Router       /edit [get]
func (h *TodoHandler) Editing(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	session, editing := ws.Editing()
	if !editing {
		c.JSON(http.StatusNotFound, gin.H{"error": "No todo is being edited"})
		return
	}
	c.JSON(http.StatusOK, EditResponse{TodoID: session.TodoID.String(), Text: session.Text})
}

// SaveEdit godoc
// @Summary      Save the edited text and close the session
// @Tags         Todos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body SaveEditRequest true "New text"
// @Success      200 {object} TodoResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /edit [put]
func (h *TodoHandler) SaveEdit(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req SaveEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	todo, err := ws.SaveEdit(c.Request.Context(), req.Text)
	switch {
	case errors.Is(err, workspace.ErrNotEditing):
		c.JSON(http.StatusConflict, gin.H{"error": "No todo is being edited"})
		return
	case errors.Is(err, workspace.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todo content is required"})
		return
	case errors.Is(err, workspace.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, toTodoResponse(todo))
}

// CancelEdit godoc
// @Summary      Close the edit session without saving
// @Tags         Todos
// @Security     BearerAuth
// @Success      200
// @Router       /edit [delete]
func (h *TodoHandler) CancelEdit(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	ws.CancelEdit()
	c.JSON(http.StatusOK, gin.H{"message": "Edit cancelled"})
}

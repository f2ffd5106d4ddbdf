package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/workspace"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	workspaces WorkspaceSource
}

func NewBoardHandler(workspaces WorkspaceSource) *BoardHandler {
	return &BoardHandler{workspaces: workspaces}
}

type CreateBoardRequest struct {
	Name string `json:"name"`
}

// GetAll godoc
// @Summary      List boards with their todos in display order
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} SnapshotResponse
// @Router       /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snapshot(ws))
}

// Create godoc
// @Summary      Add a board at the end of the list
// @Tags         Boards
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body CreateBoardRequest true "Board name"
// @Success      201 {object} BoardResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := ws.AddBoard(c.Request.Context(), req.Name)
	switch {
	case errors.Is(err, workspace.ErrEmptyBoardName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board name is required"})
		return
	case errors.Is(err, workspace.ErrDuplicateBoardName):
		c.JSON(http.StatusConflict, gin.H{"error": "A board with this name already exists"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, toBoardResponse(board, nil, ws.Selected()))
}

// Reload godoc
// @Summary      Discard the in-memory order and reload from the database
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} SnapshotResponse
// @Router       /boards/reload [post]
func (h *BoardHandler) Reload(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	if err := ws.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload boards"})
		return
	}
	c.JSON(http.StatusOK, snapshot(ws))
}

// Select godoc
// @Summary      Choose the board new todos go to
// @Tags         Boards
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Board ID"
// @Success      200 {object} SnapshotResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/select [put]
func (h *BoardHandler) Select(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ws.SelectBoard(boardID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot(ws))
}

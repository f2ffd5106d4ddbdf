package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/ordering"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DragHandler struct {
	workspaces WorkspaceSource
}

func NewDragHandler(workspaces WorkspaceSource) *DragHandler {
	return &DragHandler{workspaces: workspaces}
}

type DragStartRequest struct {
	ID   string `json:"id" binding:"required"`
	Kind string `json:"kind"`
}

// DragEndRequest carries the drop target. An empty TargetID means the item was
// released outside any target.
type DragEndRequest struct {
	TargetID   string `json:"target_id"`
	TargetKind string `json:"target_kind"`
}

type DragEndResponse struct {
	Intent string `json:"intent"`
	SnapshotResponse
}

// Start godoc
// @Summary      Begin dragging a board or todo
// @Tags         Drag
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body DragStartRequest true "Dragged item"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /drag/start [post]
func (h *DragHandler) Start(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	kind, err := ordering.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kind"})
		return
	}

	preview, err := ws.OnDragStart(id, kind)
	if errors.Is(err, ordering.ErrUnknownEntity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nothing to drag with this ID"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start drag"})
		return
	}

	c.JSON(http.StatusOK, toDragResponse(preview))
}

// End godoc
// @Summary      Drop the dragged item and apply the resulting order
// @Tags         Drag
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body DragEndRequest false "Drop target"
// @Success      200 {object} DragEndResponse
// @Router       /drag/end [post]
func (h *DragHandler) End(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req DragEndRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	var target *ordering.Target
	if req.TargetID != "" {
		id, err := uuid.Parse(req.TargetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID format"})
			return
		}
		kind, err := ordering.ParseKind(req.TargetKind)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target kind"})
			return
		}
		target = &ordering.Target{ID: id, Kind: kind}
	}

	intent := ws.OnDragEnd(target)
	c.JSON(http.StatusOK, DragEndResponse{
		Intent:           intent.Kind.String(),
		SnapshotResponse: snapshot(ws),
	})
}

// Active godoc
// @Summary      Show the drag in progress
// @Tags         Drag
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} DragResponse
// @Router       /drag [get]
func (h *DragHandler) Active(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	preview, active := ws.ActiveDrag()
	if !active {
		c.JSON(http.StatusOK, DragResponse{Active: false})
		return
	}
	c.JSON(http.StatusOK, toDragResponse(preview))
}

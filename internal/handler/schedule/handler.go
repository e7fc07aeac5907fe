package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/handler"
	"github.com/chirosmith/portal-api/internal/middleware"
	"github.com/chirosmith/portal-api/internal/model"
	"github.com/chirosmith/portal-api/internal/schedule"
	"github.com/chirosmith/portal-api/internal/session"
)

// HeaderSessionID carries the caller's session across grid interactions.
// The server mints one when the caller has none and echoes it back.
const HeaderSessionID = "X-Session-ID"

type Handler struct {
	grid       *schedule.Service
	selections session.SelectionStore
}

func NewHandler(grid *schedule.Service, selections session.SelectionStore) *Handler {
	return &Handler{grid: grid, selections: selections}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sched := r.Group("/schedule")
	{
		// The grid for a given anchor only changes when the product does;
		// selections must never be served stale.
		sched.GET("/grid", middleware.Cache(middleware.DefaultCacheConfig()), h.GetGrid)
		sched.PUT("/selection", h.SelectSlot)
		sched.GET("/selection", h.GetSelection)
	}
}

// GetGrid returns the five day columns and the shared slot rows for an
// anchor date, defaulting to today.
func (h *Handler) GetGrid(c *gin.Context) {
	anchor := h.grid.Today()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := schedule.ParseAnchor(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid anchor date"))
			return
		}
		anchor = parsed
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.grid.Grid(anchor)))
}

type selectSlotRequest struct {
	Anchor    string `json:"anchor"`
	DayIndex  int    `json:"day_index"`
	SlotIndex int    `json:"slot_index"`
}

// SelectSlot records a clicked cell as the session's selection. Any rendered
// cell is selectable, past times included; only indices outside the grid are
// rejected. Repeating a click stores the same snapshot again.
func (h *Handler) SelectSlot(c *gin.Context) {
	var req selectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	anchor := h.grid.Today()
	if req.Anchor != "" {
		parsed, err := schedule.ParseAnchor(req.Anchor)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid anchor date"))
			return
		}
		anchor = parsed
	}

	grid := h.grid.Grid(anchor)
	if req.DayIndex < 0 || req.DayIndex >= len(grid.Days) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("day index out of range"))
		return
	}
	if req.SlotIndex < 0 || req.SlotIndex >= len(grid.Slots) {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("slot index out of range"))
		return
	}

	slot := model.SelectedSlot{
		DayLabel:  schedule.DayLabel(grid.Days[req.DayIndex]),
		TimeLabel: schedule.TimeLabel(grid.Slots[req.SlotIndex].Minutes),
	}

	sessionID := h.sessionID(c)
	if err := h.selections.Put(c.Request.Context(), sessionID, slot); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to store selection")
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to store selection"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slot))
}

// GetSelection returns the session's current selection, if any.
func (h *Handler) GetSelection(c *gin.Context) {
	sessionID := h.sessionID(c)

	slot, err := h.selections.Get(c.Request.Context(), sessionID)
	if err == session.ErrNoSelection {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to read selection")
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to read selection"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slot))
}

func (h *Handler) sessionID(c *gin.Context) string {
	sid := c.GetHeader(HeaderSessionID)
	if sid == "" {
		sid = uuid.New().String()
	}
	c.Header(HeaderSessionID, sid)
	return sid
}

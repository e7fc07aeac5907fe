package shell

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/handler"
	scheduleHandler "github.com/chirosmith/portal-api/internal/handler/schedule"
	"github.com/chirosmith/portal-api/internal/session"
	"github.com/chirosmith/portal-api/internal/shell"
)

type Handler struct {
	selections session.SelectionStore
	names      *shell.NameCache
}

func NewHandler(selections session.SelectionStore, names *shell.NameCache) *Handler {
	return &Handler{selections: selections, names: names}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sh := r.Group("/shell")
	{
		sh.GET("/panel", h.GetPanel)
		sh.GET("/display-name", h.GetDisplayName)
	}
}

type panelResponse struct {
	Route    string `json:"route"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Redirect string `json:"redirect,omitempty"`
}

// GetPanel resolves the summary panel for a navigation path. The session's
// selection feeds in, but only the dashboard root displays it.
func (h *Handler) GetPanel(c *gin.Context) {
	route := shell.ParseRoute(c.Query("path"))

	selected, err := h.selections.Get(c.Request.Context(), c.GetHeader(scheduleHandler.HeaderSessionID))
	if err != nil && err != session.ErrNoSelection {
		log.Error().Err(err).Msg("failed to read selection for panel")
		selected = nil
	}

	panel := shell.ResolvePanel(route, selected)

	resp := panelResponse{
		Route: route.String(),
		Title: panel.Title,
		Body:  panel.Body,
	}
	if route == shell.RouteUnknown {
		resp.Redirect = "/login"
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

// GetDisplayName resolves the cached greeting name for the header.
func (h *Handler) GetDisplayName(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"name": h.names.DisplayName(),
	}))
}

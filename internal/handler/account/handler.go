package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/handler"
	"github.com/chirosmith/portal-api/internal/model"
	accountService "github.com/chirosmith/portal-api/internal/service/account"
	apperrors "github.com/chirosmith/portal-api/pkg/errors"
)

type Handler struct {
	service accountService.AccountServicer
}

func NewHandler(service accountService.AccountServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the signup route at the top level; its wire contract
// predates this service and is kept exactly as the frontend expects it.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	account := r.Group("/account")
	{
		account.POST("/signup", h.Signup)
	}
}

// RegisterAPIRoutes mounts the versioned account reads.
func (h *Handler) RegisterAPIRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/accounts")
	{
		accounts.GET("/:id", h.GetAccount)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Account created successfully",
		"accountId": account.ID,
	})
}

func (h *Handler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperrors.BadRequest("invalid account ID", err))
		return
	}

	account, info, err := h.service.GetAccount(c.Request.Context(), id)
	if err != nil {
		c.Error(apperrors.NotFound("account", err))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"account": account,
		"info":    info,
	}))
}

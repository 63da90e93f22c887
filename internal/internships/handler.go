package internships

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/server/respond"
	"caroai-backend/internal/shared/telemetry"
)

// Handler implements the demo internship application endpoint. Applications
// are acknowledged but not sent anywhere.
type Handler struct {
	Sessions *sessions.Service
}

func NewHandler(sessionSvc *sessions.Service) *Handler {
	return &Handler{Sessions: sessionSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/internships/apply", h.apply)
}

type applyRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

func (h *Handler) apply(c *gin.Context) {
	session, err := h.Sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Company = strings.TrimSpace(req.Company)
	req.Role = strings.TrimSpace(req.Role)
	if req.Company == "" || req.Role == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "company and role are required", nil)
		return
	}

	telemetry.Info("internship.apply", map[string]any{
		"session_id": session.ID,
		"company":    req.Company,
		"role":       req.Role,
	})

	respond.JSON(c, http.StatusOK, gin.H{
		"status":  "submitted",
		"message": "Application for " + req.Role + " at " + req.Company + " submitted. Good luck, " + session.Name + "!",
	})
}

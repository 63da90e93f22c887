package advice

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"caroai-backend/internal/gaps"
	"caroai-backend/internal/llm"
	"caroai-backend/internal/roadmap"
	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/server/respond"
)

var artifactNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.png$`)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/plan", h.generate)
	rg.GET("/sessions/:id/plan", h.get)
	rg.GET("/sessions/:id/artifacts/:name", h.artifact)
}

func (h *Handler) generate(c *gin.Context) {
	plan, err := h.Svc.GeneratePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlanError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, plan)
}

func (h *Handler) get(c *gin.Context) {
	plan, err := h.Svc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlanError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, plan)
}

func (h *Handler) artifact(c *gin.Context) {
	name := c.Param("name")
	if !artifactNamePattern.MatchString(name) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid artifact name", nil)
		return
	}

	rc, err := h.Svc.OpenArtifact(c.Request.Context(), c.Param("id"), name)
	if err != nil {
		writePlanError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrPlanNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "no plan generated for this session", nil)
	case errors.Is(err, ErrArtifactNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
	case errors.Is(err, ErrSkillsRequired), errors.Is(err, ErrAssessmentRequired):
		respond.Error(c, http.StatusConflict, "precondition_failed", err.Error(), nil)
	case errors.Is(err, sessions.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrUnavailable):
		respond.Error(c, http.StatusBadGateway, "llm_unavailable", "language model is unavailable, try again later", nil)
	case errors.Is(err, roadmap.ErrParse), errors.Is(err, gaps.ErrParse):
		respond.Error(c, http.StatusBadGateway, "llm_parse_error", "language model returned an unusable response", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "plan generation failed", nil)
	}
}

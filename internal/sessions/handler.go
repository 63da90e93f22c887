package sessions

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"caroai-backend/internal/extract"
	"caroai-backend/internal/llm"
	"caroai-backend/internal/shared/server/respond"
	"caroai-backend/internal/shared/storage/object"
	"caroai-backend/internal/shared/telemetry"
	"caroai-backend/internal/skills"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc    *Service
	Skills *skills.Service
	Store  object.ObjectStore
}

func NewHandler(svc *Service, skillSvc *skills.Service, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Skills: skillSvc, Store: store}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.GET("/sessions/:id", h.get)
	rg.POST("/sessions/:id/resume", h.uploadResume)
	rg.PUT("/sessions/:id/skills", h.setSkills)
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Create(c.Request.Context(), CreateInput{
		Name:       req.Name,
		Age:        req.Age,
		Domain:     req.Domain,
		Assessment: req.Assessment,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(session))
}

func (h *Handler) get(c *gin.Context) {
	session, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeSessionError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(session))
}

func (h *Handler) uploadResume(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.Svc.GetByID(c.Request.Context(), sessionID); err != nil {
		writeSessionError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	storageKey, _, mimeType, err := h.Store.Save(c.Request.Context(), sessionID, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("resume.save.failed", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		return
	}

	text, err := extract.TextAndPersist(c.Request.Context(), h.Store, data, mimeType, fileHeader.Filename, storageKey)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_error",
			"could not extract text from resume; enter skills manually", gin.H{"reason": err.Error()})
		return
	}

	skillList, err := h.Skills.Extract(c.Request.Context(), text)
	if err != nil {
		writeLLMError(c, err)
		return
	}

	session, err := h.Svc.AttachResume(c.Request.Context(), sessionID, fileHeader.Filename, storageKey, text, skillList)
	if err != nil {
		writeSessionError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(session))
}

func (h *Handler) setSkills(c *gin.Context) {
	var req setSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.SetSkills(c.Request.Context(), c.Param("id"), skills.Normalize(req.Skills))
	if err != nil {
		writeSessionError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(session))
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "session operation failed", nil)
	}
}

func writeLLMError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		respond.Error(c, http.StatusBadGateway, "llm_unavailable", "language model is unavailable, try again later", nil)
	case errors.Is(err, skills.ErrParse):
		respond.Error(c, http.StatusBadGateway, "llm_parse_error", "language model returned an unusable response", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "skill extraction failed", nil)
	}
}

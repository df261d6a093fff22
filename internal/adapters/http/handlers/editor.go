package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truongteam/medusa-admin/internal/adapters/http/dto"
	"github.com/truongteam/medusa-admin/internal/app"
)

const openRoute = "/gift-cards/:id/editors"

// EditorHandler serves the gift card editor sessions.
type EditorHandler struct {
	sessions *app.SessionRegistry
	logger   *slog.Logger
}

// NewEditorHandler creates an editor handler.
func NewEditorHandler(sessions *app.SessionRegistry, logger *slog.Logger) *EditorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &EditorHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "handlers.Editor")),
	}
}

// RegisterRoutes registers the editor routes:
//   - POST   /gift-cards/:id/editors
//   - GET    /editors/:sid
//   - PATCH  /editors/:sid/form
//   - POST   /editors/:sid/reload
//   - POST   /editors/:sid/save
//   - POST   /editors/:sid/toggle-publish
//   - POST   /editors/:sid/delete
//   - POST   /editors/:sid/denominations
//   - DELETE /editors/:sid
func (h *EditorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST(openRoute, h.Open)

	editors := rg.Group("/editors/:sid")
	editors.GET("", h.Get)
	editors.PATCH("/form", h.EditForm)
	editors.POST("/reload", h.Reload)
	editors.POST("/save", h.Save)
	editors.POST("/toggle-publish", h.TogglePublish)
	editors.POST("/delete", h.Delete)
	editors.POST("/denominations", h.AddDenominations)
	editors.DELETE("", h.Close)
}

// Open handles POST /gift-cards/:id/editors. It loads the card before
// answering; a failed load opens no session.
func (h *EditorHandler) Open(c *gin.Context) {
	id := c.Param("id")
	if err := dto.Validator().Var(id, "notempty,max=255"); err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid gift card id")
		return
	}

	s, err := h.sessions.Open(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.FullPath(), openRoute)+"/editors/"+s.ID)
	c.JSON(http.StatusCreated, dto.NewEditorView(s))
}

// Get handles GET /editors/:sid.
func (h *EditorHandler) Get(c *gin.Context) {
	if s, ok := h.session(c); ok {
		h.respond(c, s, http.StatusOK, nil)
	}
}

// EditForm handles PATCH /editors/:sid/form. Only the local form changes.
func (h *EditorHandler) EditForm(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.FormEditRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if errors.Is(err, dto.ErrBinding) {
			dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "malformed request body")
			return
		}

		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))

		return
	}

	req.Apply(s.Editor.Form())
	h.respond(c, s, http.StatusOK, nil)
}

// Reload handles POST /editors/:sid/reload.
func (h *EditorHandler) Reload(c *gin.Context) {
	if s, ok := h.session(c); ok {
		h.respond(c, s, http.StatusOK, s.Editor.Load(c.Request.Context()))
	}
}

// Save handles POST /editors/:sid/save.
func (h *EditorHandler) Save(c *gin.Context) {
	if s, ok := h.session(c); ok {
		h.respond(c, s, http.StatusOK, s.Editor.Submit(c.Request.Context()))
	}
}

// TogglePublish handles POST /editors/:sid/toggle-publish.
func (h *EditorHandler) TogglePublish(c *gin.Context) {
	if s, ok := h.session(c); ok {
		h.respond(c, s, http.StatusOK, s.Editor.TogglePublish(c.Request.Context()))
	}
}

// Delete handles POST /editors/:sid/delete. On success the view is closed
// and carries the redirect; the session is gone afterwards.
func (h *EditorHandler) Delete(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	err := s.Editor.Remove(c.Request.Context())
	if err == nil {
		h.sessions.Close(s.ID)
	}

	h.respond(c, s, http.StatusOK, err)
}

// AddDenominations handles POST /editors/:sid/denominations.
func (h *EditorHandler) AddDenominations(c *gin.Context) {
	if s, ok := h.session(c); ok {
		s.Editor.AddDenominations(c.Request.Context())
		h.respond(c, s, http.StatusAccepted, nil)
	}
}

// Close handles DELETE /editors/:sid. The card is not touched.
func (h *EditorHandler) Close(c *gin.Context) {
	sid := c.Param("sid")
	if !validSessionID(c, sid) {
		return
	}

	h.sessions.Close(sid)
	h.logger.DebugContext(c.Request.Context(), "editor session closed", slog.String("session_id", sid))
	c.Status(http.StatusNoContent)
}

func (h *EditorHandler) session(c *gin.Context) (*app.Session, bool) {
	sid := c.Param("sid")
	if !validSessionID(c, sid) {
		return nil, false
	}

	s, err := h.sessions.Get(sid)
	if err != nil {
		dto.HandleError(c, err)
		return nil, false
	}

	return s, true
}

// respond writes the session view. A failed operation still renders the
// view, with the mapped status and the error attached; the notifications
// it produced are part of the view.
func (h *EditorHandler) respond(c *gin.Context, s *app.Session, status int, err error) {
	view := dto.NewEditorView(s)

	if err != nil {
		var resp *dto.ErrorResponse
		status, resp = dto.ResolveError(c, err)
		view.Error = &resp.Error
	}

	c.JSON(status, view)
}

func validSessionID(c *gin.Context, sid string) bool {
	if err := dto.Validator().Var(sid, "required,uuid"); err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid editor session id")
		return false
	}

	return true
}

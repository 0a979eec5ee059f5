package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
)

// ScreenHandler handles HTTP requests for screen management.
// Mutations publish screen events so connected builder UIs stay in sync.
type ScreenHandler struct {
	storage interfaces.StorageManager
	events  interfaces.EventService
	logger  arbor.ILogger
}

// NewScreenHandler creates a new ScreenHandler
func NewScreenHandler(storage interfaces.StorageManager, events interfaces.EventService, logger arbor.ILogger) *ScreenHandler {
	return &ScreenHandler{
		storage: storage,
		events:  events,
		logger:  logger,
	}
}

type createScreenRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
	Type       string `json:"type" validate:"required,oneof=landing list detail form profile settings"`
	Route      string `json:"route" validate:"max=300"`
	IsHomePage bool   `json:"is_home_page"`
}

// ListScreensHandler handles GET /api/screens?project_id={id}
func (h *ScreenHandler) ListScreensHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projectID := r.URL.Query().Get("project_id")
	if projectID == "" {
		WriteError(w, http.StatusBadRequest, "project_id query parameter is required")
		return
	}

	screens, err := h.storage.Screens().GetScreensByProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to list screens")
		WriteError(w, http.StatusInternalServerError, "Failed to list screens")
		return
	}

	if screens == nil {
		screens = []*models.Screen{}
	}
	WriteJSON(w, http.StatusOK, screens)
}

// GetScreenHandler handles GET /api/screens/{id}
func (h *ScreenHandler) GetScreenHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/screens/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Screen ID is required")
		return
	}

	screen, err := h.storage.Screens().GetScreen(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Screen not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get screen")
			WriteError(w, http.StatusInternalServerError, "Failed to get screen")
		}
		return
	}

	WriteJSON(w, http.StatusOK, screen)
}

// CreateScreenHandler handles POST /api/screens
func (h *ScreenHandler) CreateScreenHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req createScreenRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.storage.Projects().GetProject(r.Context(), req.ProjectID); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusBadRequest, "Project does not exist")
		} else {
			h.logger.Error().Err(err).Str("project_id", req.ProjectID).Msg("Failed to resolve project")
			WriteError(w, http.StatusInternalServerError, "Failed to create screen")
		}
		return
	}

	screen := &models.Screen{
		ID:         common.NewScreenID(),
		ProjectID:  req.ProjectID,
		Name:       req.Name,
		Type:       models.ScreenType(req.Type),
		Route:      req.Route,
		IsHomePage: req.IsHomePage,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.storage.Screens().CreateScreen(r.Context(), screen); err != nil {
		h.logger.Error().Err(err).Msg("Failed to create screen")
		WriteError(w, http.StatusInternalServerError, "Failed to create screen")
		return
	}

	h.publish(r, interfaces.EventScreenCreated, screen)
	WriteJSON(w, http.StatusCreated, screen)
}

// UpdateScreenHandler handles PUT /api/screens/{id}
func (h *ScreenHandler) UpdateScreenHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/screens/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Screen ID is required")
		return
	}

	screen, err := h.storage.Screens().GetScreen(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Screen not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get screen")
			WriteError(w, http.StatusInternalServerError, "Failed to update screen")
		}
		return
	}

	var req createScreenRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	screen.Name = req.Name
	screen.Type = models.ScreenType(req.Type)
	screen.Route = req.Route
	screen.IsHomePage = req.IsHomePage
	screen.UpdatedAt = time.Now()

	if err := h.storage.Screens().UpdateScreen(r.Context(), screen); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to update screen")
		WriteError(w, http.StatusInternalServerError, "Failed to update screen")
		return
	}

	h.publish(r, interfaces.EventScreenUpdated, screen)
	WriteJSON(w, http.StatusOK, screen)
}

// DeleteScreenHandler handles DELETE /api/screens/{id}.
// Deleting a screen also removes its components.
func (h *ScreenHandler) DeleteScreenHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/screens/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Screen ID is required")
		return
	}

	if err := h.storage.Components().DeleteComponentsByScreen(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to delete screen components")
		WriteError(w, http.StatusInternalServerError, "Failed to delete screen")
		return
	}

	if err := h.storage.Screens().DeleteScreen(r.Context(), id); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Screen not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to delete screen")
			WriteError(w, http.StatusInternalServerError, "Failed to delete screen")
		}
		return
	}

	h.publish(r, interfaces.EventScreenDeleted, map[string]string{"id": id})
	WriteSuccess(w, "Screen deleted")
}

func (h *ScreenHandler) publish(r *http.Request, eventType interfaces.EventType, payload interface{}) {
	if err := h.events.Publish(r.Context(), interfaces.Event{Type: eventType, Payload: payload}); err != nil {
		h.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish event")
	}
}

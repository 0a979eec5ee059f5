package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

// ComponentHandler handles HTTP requests for canvas components.
// Unknown component types are rejected against the registry; omitted
// props and styles fall back to the registry defaults.
type ComponentHandler struct {
	storage  interfaces.StorageManager
	events   interfaces.EventService
	registry *registry.Registry
	logger   arbor.ILogger
}

// NewComponentHandler creates a new ComponentHandler
func NewComponentHandler(storage interfaces.StorageManager, events interfaces.EventService, reg *registry.Registry, logger arbor.ILogger) *ComponentHandler {
	return &ComponentHandler{
		storage:  storage,
		events:   events,
		registry: reg,
		logger:   logger,
	}
}

type createComponentRequest struct {
	ScreenID      string                 `json:"screen_id" validate:"required"`
	ComponentType string                 `json:"component_type" validate:"required"`
	Props         map[string]interface{} `json:"props"`
	Styles        map[string]interface{} `json:"styles"`
	Children      []string               `json:"children"`
	ParentID      string                 `json:"parent_id"`
	Position      models.Position        `json:"position"`
}

type updateComponentRequest struct {
	Props    map[string]interface{} `json:"props"`
	Styles   map[string]interface{} `json:"styles"`
	Children []string               `json:"children"`
	ParentID string                 `json:"parent_id"`
	Position *models.Position       `json:"position"`
}

// ListComponentsHandler handles GET /api/components?screen_id={id} and
// GET /api/components?project_id={id}
func (h *ComponentHandler) ListComponentsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	var (
		components []*models.Component
		err        error
	)
	if screenID := r.URL.Query().Get("screen_id"); screenID != "" {
		components, err = h.storage.Components().GetComponentsByScreen(r.Context(), screenID)
	} else if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		components, err = h.storage.Components().GetComponentsByProject(r.Context(), projectID)
	} else {
		WriteError(w, http.StatusBadRequest, "screen_id or project_id query parameter is required")
		return
	}

	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list components")
		WriteError(w, http.StatusInternalServerError, "Failed to list components")
		return
	}

	if components == nil {
		components = []*models.Component{}
	}
	WriteJSON(w, http.StatusOK, components)
}

// GetComponentHandler handles GET /api/components/{id}
func (h *ComponentHandler) GetComponentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/components/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Component ID is required")
		return
	}

	component, err := h.storage.Components().GetComponent(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Component not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get component")
			WriteError(w, http.StatusInternalServerError, "Failed to get component")
		}
		return
	}

	WriteJSON(w, http.StatusOK, component)
}

// CreateComponentHandler handles POST /api/components
func (h *ComponentHandler) CreateComponentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req createComponentRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	if _, ok := h.registry.Lookup(req.ComponentType); !ok {
		WriteError(w, http.StatusBadRequest, "Unknown component type: "+req.ComponentType)
		return
	}

	if _, err := h.storage.Screens().GetScreen(r.Context(), req.ScreenID); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusBadRequest, "Screen does not exist")
		} else {
			h.logger.Error().Err(err).Str("screen_id", req.ScreenID).Msg("Failed to resolve screen")
			WriteError(w, http.StatusInternalServerError, "Failed to create component")
		}
		return
	}

	props := req.Props
	if props == nil {
		props = h.registry.DefaultProps(req.ComponentType)
	}
	styles := req.Styles
	if styles == nil {
		styles = widenStyles(h.registry.DefaultStyles(req.ComponentType))
	}

	component := &models.Component{
		ID:            common.NewComponentID(),
		ScreenID:      req.ScreenID,
		ComponentType: req.ComponentType,
		Props:         props,
		Styles:        styles,
		Children:      req.Children,
		ParentID:      req.ParentID,
		Position:      req.Position,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.storage.Components().CreateComponent(r.Context(), component); err != nil {
		h.logger.Error().Err(err).Msg("Failed to create component")
		WriteError(w, http.StatusInternalServerError, "Failed to create component")
		return
	}

	h.publish(r, interfaces.EventComponentCreated, component)
	WriteJSON(w, http.StatusCreated, component)
}

// UpdateComponentHandler handles PUT /api/components/{id}.
// Only the provided sections are replaced; nil sections keep prior state.
func (h *ComponentHandler) UpdateComponentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "PUT") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/components/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Component ID is required")
		return
	}

	component, err := h.storage.Components().GetComponent(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Component not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to get component")
			WriteError(w, http.StatusInternalServerError, "Failed to update component")
		}
		return
	}

	var req updateComponentRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	if req.Props != nil {
		component.Props = req.Props
	}
	if req.Styles != nil {
		component.Styles = req.Styles
	}
	if req.Children != nil {
		component.Children = req.Children
	}
	if req.ParentID != "" {
		component.ParentID = req.ParentID
	}
	if req.Position != nil {
		component.Position = *req.Position
	}
	component.UpdatedAt = time.Now()

	if err := h.storage.Components().UpdateComponent(r.Context(), component); err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to update component")
		WriteError(w, http.StatusInternalServerError, "Failed to update component")
		return
	}

	h.publish(r, interfaces.EventComponentUpdated, component)
	WriteJSON(w, http.StatusOK, component)
}

// DeleteComponentHandler handles DELETE /api/components/{id}
func (h *ComponentHandler) DeleteComponentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "DELETE") {
		return
	}

	id := extractIDFromPath(r.URL.Path, "/api/components/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Component ID is required")
		return
	}

	if err := h.storage.Components().DeleteComponent(r.Context(), id); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Component not found")
		} else {
			h.logger.Error().Err(err).Str("id", id).Msg("Failed to delete component")
			WriteError(w, http.StatusInternalServerError, "Failed to delete component")
		}
		return
	}

	h.publish(r, interfaces.EventComponentDeleted, map[string]string{"id": id})
	WriteSuccess(w, "Component deleted")
}

func (h *ComponentHandler) publish(r *http.Request, eventType interfaces.EventType, payload interface{}) {
	if err := h.events.Publish(r.Context(), interfaces.Event{Type: eventType, Payload: payload}); err != nil {
		h.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish event")
	}
}

func widenStyles(styles map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}

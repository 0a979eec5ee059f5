package handlers

import (
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/services/inference"
)

// AnalysisHandler exposes the inference engine over HTTP and owns
// persistence of its output. Saves are sequential per section; when a
// save fails mid-loop the earlier records stay committed and the
// section's result degrades to an empty payload with confidence 0 and
// reasoning naming the failure.
type AnalysisHandler struct {
	storage   interfaces.StorageManager
	inference interfaces.InferenceService
	events    interfaces.EventService
	logger    arbor.ILogger
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(storage interfaces.StorageManager, inferenceService interfaces.InferenceService, events interfaces.EventService, logger arbor.ILogger) *AnalysisHandler {
	return &AnalysisHandler{
		storage:   storage,
		inference: inferenceService,
		events:    events,
		logger:    logger,
	}
}

// analyzeResponse is the composite output of POST /api/projects/{id}/analyze
type analyzeResponse struct {
	ProjectID    string                                         `json:"project_id"`
	DataModels   *models.InferenceResult[[]*models.DataModel]   `json:"data_models"`
	DesignSystem *models.InferenceResult[*models.DesignSystem]  `json:"design_system"`
	UserJourneys *models.InferenceResult[[]*models.UserJourney] `json:"user_journeys"`
	Improvements []string                                       `json:"improvements"`
}

// AnalyzeProjectHandler handles POST /api/projects/{id}/analyze
func (h *AnalysisHandler) AnalyzeProjectHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	projectID := extractIDFromPath(r.URL.Path, "/api/projects/")
	if projectID == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	ctx := r.Context()

	if _, err := h.storage.Projects().GetProject(ctx, projectID); err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "Project not found")
		} else {
			h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to resolve project")
			WriteError(w, http.StatusInternalServerError, "Failed to analyze project")
		}
		return
	}

	screens, err := h.storage.Screens().GetScreensByProject(ctx, projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to load screens")
		WriteError(w, http.StatusInternalServerError, "Failed to analyze project")
		return
	}
	components, err := h.storage.Components().GetComponentsByProject(ctx, projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to load components")
		WriteError(w, http.StatusInternalServerError, "Failed to analyze project")
		return
	}

	h.publish(r, interfaces.EventAnalysisStarted, projectID)

	modelResult := h.inference.InferDataModels(components)
	for _, m := range modelResult.Payload {
		m.ProjectID = projectID
	}
	designResult := h.inference.ExtractDesignSystem(components)
	if designResult.Payload != nil {
		designResult.Payload.ProjectID = projectID
	}
	journeyResult := h.inference.GenerateUserJourneys(screens)
	for _, j := range journeyResult.Payload {
		j.ProjectID = projectID
	}

	store := h.storage.Inference()
	degraded := false

	if err := inference.PersistDataModels(ctx, store, projectID, modelResult.Payload); err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Data model persistence failed")
		modelResult = degrade[[]*models.DataModel](err)
		degraded = true
	}
	if err := inference.PersistDesignSystem(ctx, store, designResult.Payload); err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Design system persistence failed")
		designResult = degrade[*models.DesignSystem](err)
		degraded = true
	}
	if err := inference.PersistJourneys(ctx, store, projectID, journeyResult.Payload); err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Journey persistence failed")
		journeyResult = degrade[[]*models.UserJourney](err)
		degraded = true
	}

	resp := &analyzeResponse{
		ProjectID:    projectID,
		DataModels:   modelResult,
		DesignSystem: designResult,
		UserJourneys: journeyResult,
		Improvements: inference.Improvements(modelResult.Confidence, designResult.Confidence, screens, components),
	}

	if degraded {
		h.publish(r, interfaces.EventAnalysisFailed, projectID)
	} else {
		h.publish(r, interfaces.EventAnalysisComplete, resp)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// GetDataModelsHandler handles GET /api/projects/{id}/data-models
func (h *AnalysisHandler) GetDataModelsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projectID := extractIDFromPath(r.URL.Path, "/api/projects/")
	dataModels, err := h.storage.Inference().GetDataModelsByProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to get data models")
		WriteError(w, http.StatusInternalServerError, "Failed to get data models")
		return
	}
	if dataModels == nil {
		dataModels = []*models.DataModel{}
	}
	WriteJSON(w, http.StatusOK, dataModels)
}

// GetDesignSystemHandler handles GET /api/projects/{id}/design-system
func (h *AnalysisHandler) GetDesignSystemHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projectID := extractIDFromPath(r.URL.Path, "/api/projects/")
	ds, err := h.storage.Inference().GetDesignSystem(r.Context(), projectID)
	if err != nil {
		if isNotFound(err) {
			WriteError(w, http.StatusNotFound, "No design system extracted yet")
		} else {
			h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to get design system")
			WriteError(w, http.StatusInternalServerError, "Failed to get design system")
		}
		return
	}
	WriteJSON(w, http.StatusOK, ds)
}

// GetDesignSystemVersionsHandler handles GET /api/projects/{id}/design-system/versions
func (h *AnalysisHandler) GetDesignSystemVersionsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projectID := extractIDFromPath(r.URL.Path, "/api/projects/")
	versions, err := h.storage.Inference().GetDesignSystemVersions(r.Context(), projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to get design system versions")
		WriteError(w, http.StatusInternalServerError, "Failed to get design system versions")
		return
	}
	if versions == nil {
		versions = []*models.DesignSystem{}
	}
	WriteJSON(w, http.StatusOK, versions)
}

// GetJourneysHandler handles GET /api/projects/{id}/journeys
func (h *AnalysisHandler) GetJourneysHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	projectID := extractIDFromPath(r.URL.Path, "/api/projects/")
	journeys, err := h.storage.Inference().GetJourneysByProject(r.Context(), projectID)
	if err != nil {
		h.logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to get journeys")
		WriteError(w, http.StatusInternalServerError, "Failed to get journeys")
		return
	}
	if journeys == nil {
		journeys = []*models.UserJourney{}
	}
	WriteJSON(w, http.StatusOK, journeys)
}

// SuggestComponentsHandler handles GET /api/screens/{id}/suggest
func (h *AnalysisHandler) SuggestComponentsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	screenID := extractIDFromPath(r.URL.Path, "/api/screens/")
	components, err := h.storage.Components().GetComponentsByScreen(r.Context(), screenID)
	if err != nil {
		h.logger.Error().Err(err).Str("screen_id", screenID).Msg("Failed to load screen components")
		WriteError(w, http.StatusInternalServerError, "Failed to suggest components")
		return
	}

	suggestions := h.inference.SuggestComponents(components)
	if suggestions == nil {
		suggestions = []models.ComponentSuggestion{}
	}
	WriteJSON(w, http.StatusOK, suggestions)
}

// AnalyzeDataFlowHandler handles GET /api/screens/{id}/data-flow
func (h *AnalysisHandler) AnalyzeDataFlowHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	screenID := extractIDFromPath(r.URL.Path, "/api/screens/")
	components, err := h.storage.Components().GetComponentsByScreen(r.Context(), screenID)
	if err != nil {
		h.logger.Error().Err(err).Str("screen_id", screenID).Msg("Failed to load screen components")
		WriteError(w, http.StatusInternalServerError, "Failed to analyze data flow")
		return
	}

	flows := h.inference.AnalyzeDataFlow(components)
	if flows == nil {
		flows = []models.DataFlow{}
	}
	WriteJSON(w, http.StatusOK, flows)
}

// degrade builds the empty result for a section whose persistence failed
func degrade[T any](err error) *models.InferenceResult[T] {
	var zero T
	return &models.InferenceResult[T]{
		Payload:    zero,
		Confidence: 0,
		Reasoning:  []string{fmt.Sprintf("Persistence failed: %s", err.Error())},
		Suggestions: []string{
			"Retry the analysis once storage is healthy",
		},
	}
}

func (h *AnalysisHandler) publish(r *http.Request, eventType interfaces.EventType, payload interface{}) {
	if err := h.events.Publish(r.Context(), interfaces.Event{Type: eventType, Payload: payload}); err != nil {
		h.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("Failed to publish event")
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
	"github.com/ternarybob/atelier/internal/services/events"
	"github.com/ternarybob/atelier/internal/services/inference"
)

func newAnalysisHandler(t *testing.T) (*AnalysisHandler, interfaces.StorageManager) {
	t.Helper()
	logger := arbor.NewLogger()
	storage := newTestStorage(t)
	inferenceService := inference.NewService(storage, registry.Default(), logger)
	eventService := events.NewService(logger)
	return NewAnalysisHandler(storage, inferenceService, eventService, logger), storage
}

func seedLoginProject(t *testing.T, storage interfaces.StorageManager) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, storage.Projects().CreateProject(ctx, &models.Project{ID: "proj_1", Name: "Demo"}))
	require.NoError(t, storage.Screens().CreateScreen(ctx, &models.Screen{
		ID: "scr_home", ProjectID: "proj_1", Name: "Home", Type: models.ScreenTypeLanding, IsHomePage: true,
	}))
	require.NoError(t, storage.Screens().CreateScreen(ctx, &models.Screen{
		ID: "scr_login", ProjectID: "proj_1", Name: "Login", Type: models.ScreenTypeForm,
	}))
	require.NoError(t, storage.Components().CreateComponent(ctx, &models.Component{
		ID: "cmp_email", ScreenID: "scr_login", ComponentType: "input",
		Props:    map[string]interface{}{"label": "Email"},
		Styles:   map[string]interface{}{"padding": "8px"},
		Position: models.Position{X: 100, Y: 100},
	}))
	require.NoError(t, storage.Components().CreateComponent(ctx, &models.Component{
		ID: "cmp_password", ScreenID: "scr_login", ComponentType: "input",
		Props:    map[string]interface{}{"label": "Password", "required": true},
		Styles:   map[string]interface{}{"padding": "8px"},
		Position: models.Position{X: 100, Y: 160},
	}))
}

func TestAnalyzeProjectHandler(t *testing.T) {
	handler, storage := newAnalysisHandler(t)
	seedLoginProject(t, storage)
	ctx := context.Background()

	req := httptest.NewRequest("POST", "/api/projects/proj_1/analyze", nil)
	rec := httptest.NewRecorder()
	handler.AnalyzeProjectHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ProjectID  string `json:"project_id"`
		DataModels struct {
			Payload    []*models.DataModel `json:"payload"`
			Confidence float64             `json:"confidence"`
		} `json:"data_models"`
		DesignSystem struct {
			Payload *models.DesignSystem `json:"payload"`
		} `json:"design_system"`
		UserJourneys struct {
			Payload []*models.UserJourney `json:"payload"`
		} `json:"user_journeys"`
		Improvements []string `json:"improvements"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "proj_1", resp.ProjectID)
	require.Len(t, resp.DataModels.Payload, 1)
	assert.Equal(t, "User", resp.DataModels.Payload[0].Name)
	assert.Equal(t, "proj_1", resp.DataModels.Payload[0].ProjectID)
	require.NotNil(t, resp.DesignSystem.Payload)
	assert.NotEmpty(t, resp.UserJourneys.Payload)

	// Results are persisted per section
	saved, err := storage.Inference().GetDataModelsByProject(ctx, "proj_1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	ds, err := storage.Inference().GetDesignSystem(ctx, "proj_1")
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Version)

	journeys, err := storage.Inference().GetJourneysByProject(ctx, "proj_1")
	require.NoError(t, err)
	assert.NotEmpty(t, journeys)
}

func TestAnalyzeProjectHandler_Rerun(t *testing.T) {
	handler, storage := newAnalysisHandler(t)
	seedLoginProject(t, storage)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/projects/proj_1/analyze", nil)
		rec := httptest.NewRecorder()
		handler.AnalyzeProjectHandler(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Re-analysis replaces rather than accumulates data models
	saved, err := storage.Inference().GetDataModelsByProject(ctx, "proj_1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	// Design systems are versioned, not replaced
	versions, err := storage.Inference().GetDesignSystemVersions(ctx, "proj_1")
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

// faultyStorage delegates to a real manager but swaps in an inference
// store that fails selected saves
type faultyStorage struct {
	interfaces.StorageManager
	inference *faultyInferenceStorage
}

func (s *faultyStorage) Inference() interfaces.InferenceStorage { return s.inference }

type faultyInferenceStorage struct {
	interfaces.InferenceStorage
	failDesignSystem bool
}

func (s *faultyInferenceStorage) SaveDesignSystem(ctx context.Context, ds *models.DesignSystem) error {
	if s.failDesignSystem {
		return errors.New("disk full")
	}
	return s.InferenceStorage.SaveDesignSystem(ctx, ds)
}

func TestAnalyzeProjectHandler_DegradedDesignSystem(t *testing.T) {
	logger := arbor.NewLogger()
	backing := newTestStorage(t)
	storage := &faultyStorage{
		StorageManager: backing,
		inference:      &faultyInferenceStorage{InferenceStorage: backing.Inference(), failDesignSystem: true},
	}
	handler := NewAnalysisHandler(storage, inference.NewService(storage, registry.Default(), logger), events.NewService(logger), logger)
	seedLoginProject(t, storage)
	ctx := context.Background()

	req := httptest.NewRequest("POST", "/api/projects/proj_1/analyze", nil)
	rec := httptest.NewRecorder()
	handler.AnalyzeProjectHandler(rec, req)

	// A failed save degrades its section; the request still succeeds
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		DataModels struct {
			Payload []*models.DataModel `json:"payload"`
		} `json:"data_models"`
		DesignSystem struct {
			Payload    *models.DesignSystem `json:"payload"`
			Confidence float64              `json:"confidence"`
			Reasoning  []string             `json:"reasoning"`
		} `json:"design_system"`
		UserJourneys struct {
			Payload []*models.UserJourney `json:"payload"`
		} `json:"user_journeys"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Nil(t, resp.DesignSystem.Payload)
	assert.Zero(t, resp.DesignSystem.Confidence)
	require.NotEmpty(t, resp.DesignSystem.Reasoning)
	assert.Contains(t, resp.DesignSystem.Reasoning[0], "Persistence failed")
	assert.Contains(t, resp.DesignSystem.Reasoning[0], "failed to save design system")

	// Sections before and after the failed one stay intact
	require.Len(t, resp.DataModels.Payload, 1)
	assert.NotEmpty(t, resp.UserJourneys.Payload)

	saved, err := backing.Inference().GetDataModelsByProject(ctx, "proj_1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	journeys, err := backing.Inference().GetJourneysByProject(ctx, "proj_1")
	require.NoError(t, err)
	assert.NotEmpty(t, journeys)

	// Nothing was written for the degraded section
	_, err = backing.Inference().GetDesignSystem(ctx, "proj_1")
	assert.True(t, isNotFound(err))
}

func TestAnalyzeProjectHandler_MissingProject(t *testing.T) {
	handler, _ := newAnalysisHandler(t)

	req := httptest.NewRequest("POST", "/api/projects/proj_missing/analyze", nil)
	rec := httptest.NewRecorder()
	handler.AnalyzeProjectHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDataModelsHandler_EmptyProject(t *testing.T) {
	handler, storage := newAnalysisHandler(t)
	require.NoError(t, storage.Projects().CreateProject(context.Background(), &models.Project{ID: "proj_1", Name: "Demo"}))

	req := httptest.NewRequest("GET", "/api/projects/proj_1/data-models", nil)
	rec := httptest.NewRecorder()
	handler.GetDataModelsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSuggestComponentsHandler(t *testing.T) {
	handler, storage := newAnalysisHandler(t)
	seedLoginProject(t, storage)

	req := httptest.NewRequest("GET", "/api/screens/scr_login/suggest", nil)
	rec := httptest.NewRecorder()
	handler.SuggestComponentsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var suggestions []models.ComponentSuggestion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&suggestions))

	found := false
	for _, s := range suggestions {
		if s.ComponentType == "button" {
			found = true
		}
	}
	assert.True(t, found, "form fields without a button should suggest one")
}

package interfaces

import (
	"context"

	"github.com/ternarybob/atelier/internal/models"
)

// InferenceService - the heuristic inference engine entry points.
// Each method is pure given its inputs except AnalyzeProject, which
// fetches the project's screens and components from storage.
type InferenceService interface {
	InferDataModels(components []*models.Component) *models.InferenceResult[[]*models.DataModel]
	ExtractDesignSystem(components []*models.Component) *models.InferenceResult[*models.DesignSystem]
	GenerateUserJourneys(screens []*models.Screen) *models.InferenceResult[[]*models.UserJourney]
	AnalyzeProject(ctx context.Context, projectID string) (*models.ProjectAnalysis, error)
	SuggestComponents(existing []*models.Component) []models.ComponentSuggestion
	AnalyzeDataFlow(components []*models.Component) []models.DataFlow
}

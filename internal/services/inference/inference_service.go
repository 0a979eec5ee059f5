package inference

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/inference/journeys"
	"github.com/ternarybob/atelier/internal/inference/schema"
	"github.com/ternarybob/atelier/internal/inference/styles"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

// Service implements InferenceService by composing the three sub-engines:
// schema (data models), styles (design system), and journeys.
type Service struct {
	storage  interfaces.StorageManager
	registry *registry.Registry
	logger   arbor.ILogger
}

// NewService creates the inference service
func NewService(storage interfaces.StorageManager, reg *registry.Registry, logger arbor.ILogger) interfaces.InferenceService {
	return &Service{
		storage:  storage,
		registry: reg,
		logger:   logger,
	}
}

// InferDataModels derives normalized data models from a component snapshot.
// Pure computation; re-running on the same input yields the same output.
func (s *Service) InferDataModels(components []*models.Component) *models.InferenceResult[[]*models.DataModel] {
	if len(components) == 0 {
		return &models.InferenceResult[[]*models.DataModel]{
			Payload:     nil,
			Confidence:  0,
			Reasoning:   []string{"No components to analyze"},
			Suggestions: []string{"Add form, list, or card components so data models can be inferred"},
		}
	}

	inferrer := schema.NewInferrer(s.registry, common.NewDataModelID)
	res := inferrer.Infer(components)

	s.logger.Debug().
		Int("components", len(components)).
		Int("models", len(res.Models)).
		Float64("confidence", res.Confidence).
		Msg("Data model inference complete")

	return &models.InferenceResult[[]*models.DataModel]{
		Payload:     res.Models,
		Confidence:  res.Confidence,
		Reasoning:   res.Reasoning,
		Suggestions: res.Suggestions,
	}
}

// ExtractDesignSystem analyzes observed styles and synthesizes a design
// system with color scales, a type scale, and spacing tokens.
func (s *Service) ExtractDesignSystem(components []*models.Component) *models.InferenceResult[*models.DesignSystem] {
	if len(components) == 0 {
		return &models.InferenceResult[*models.DesignSystem]{
			Payload:     nil,
			Confidence:  0,
			Reasoning:   []string{"No components to analyze"},
			Suggestions: []string{"Add styled components so a design system can be extracted"},
		}
	}

	analysis := styles.Analyze(components)
	ds := styles.Synthesize(common.NewDesignSystemID(), "", analysis, components, s.registry)

	s.logger.Debug().
		Int("components", len(components)).
		Float64("confidence", analysis.Confidence).
		Msg("Design system extraction complete")

	return &models.InferenceResult[*models.DesignSystem]{
		Payload:     ds,
		Confidence:  analysis.Confidence,
		Reasoning:   analysis.Reasoning,
		Suggestions: analysis.Suggestions,
	}
}

// GenerateUserJourneys builds the screen navigation graph, derives personas
// from the present screen types, and walks the graph toward each goal.
func (s *Service) GenerateUserJourneys(screens []*models.Screen) *models.InferenceResult[[]*models.UserJourney] {
	if len(screens) == 0 {
		return &models.InferenceResult[[]*models.UserJourney]{
			Payload:     nil,
			Confidence:  0,
			Reasoning:   []string{"No screens to analyze"},
			Suggestions: []string{"Add screens to the project so user journeys can be inferred"},
		}
	}

	gen := journeys.NewGenerator(common.NewJourneyID)
	res := gen.Generate(screens)

	s.logger.Debug().
		Int("screens", len(screens)).
		Int("journeys", len(res.Journeys)).
		Float64("confidence", res.Confidence).
		Msg("User journey generation complete")

	return &models.InferenceResult[[]*models.UserJourney]{
		Payload:     res.Journeys,
		Confidence:  res.Confidence,
		Reasoning:   res.Reasoning,
		Suggestions: res.Suggestions,
	}
}

// AnalyzeProject runs all three engines over the project's current state and
// folds their outputs into one analysis with project-level improvements.
func (s *Service) AnalyzeProject(ctx context.Context, projectID string) (*models.ProjectAnalysis, error) {
	project, err := s.storage.Projects().GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}

	screens, err := s.storage.Screens().GetScreensByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load screens for project %s: %w", projectID, err)
	}

	components, err := s.storage.Components().GetComponentsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load components for project %s: %w", projectID, err)
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("project_name", project.Name).
		Int("screens", len(screens)).
		Int("components", len(components)).
		Msg("Analyzing project")

	modelResult := s.InferDataModels(components)
	designResult := s.ExtractDesignSystem(components)
	journeyResult := s.GenerateUserJourneys(screens)

	for _, m := range modelResult.Payload {
		m.ProjectID = projectID
	}
	if designResult.Payload != nil {
		designResult.Payload.ProjectID = projectID
	}
	for _, j := range journeyResult.Payload {
		j.ProjectID = projectID
	}

	analysis := &models.ProjectAnalysis{
		ProjectID:    projectID,
		DataModels:   modelResult.Payload,
		DesignSystem: designResult.Payload,
		UserJourneys: journeyResult.Payload,
		Improvements: Improvements(modelResult.Confidence, designResult.Confidence, screens, components),
	}
	return analysis, nil
}

// Improvements derives project-level advice from engine confidences and
// from gaps in the screen and component inventory.
func Improvements(modelConfidence, designConfidence float64, screens []*models.Screen, components []*models.Component) []string {
	var out []string

	if modelConfidence < 0.7 {
		out = append(out, "Data model inference is low confidence; add labeled form fields so models can be named and typed")
	}
	if designConfidence < 0.8 {
		out = append(out, "Design usage is inconsistent; consolidate colors, font sizes, and spacing values")
	}

	types := make(map[models.ScreenType]bool, len(screens))
	for _, scr := range screens {
		types[scr.Type] = true
	}
	if !types[models.ScreenTypeLanding] {
		out = append(out, "No landing screen found; add one as an entry point for new users")
	}
	if !types[models.ScreenTypeSettings] {
		out = append(out, "No settings screen found; add one so users can manage their account")
	}

	distinct := make(map[string]bool, len(components))
	for _, c := range components {
		distinct[c.ComponentType] = true
	}
	if len(distinct) < 5 {
		out = append(out, "Fewer than 5 distinct component types in use; the UI may be underspecified")
	}

	return out
}

package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

const helpReply = "I can add components (\"add a button\"), analyze your project " +
	"(\"analyze my data\"), and give style or data model advice. " +
	"Try \"add a search bar\" or \"what colors am I using?\""

// Service implements AssistantService with keyword-matched intents.
// Each intent maps to a canned reply and, for add/analyze, a canvas action.
type Service struct {
	storage   interfaces.StorageManager
	inference interfaces.InferenceService
	events    interfaces.EventService
	registry  *registry.Registry
	logger    arbor.ILogger
}

// NewService creates the assistant service
func NewService(storage interfaces.StorageManager, inference interfaces.InferenceService, events interfaces.EventService, reg *registry.Registry, logger arbor.ILogger) interfaces.AssistantService {
	return &Service{
		storage:   storage,
		inference: inference,
		events:    events,
		registry:  reg,
		logger:    logger,
	}
}

// HandleMessage classifies the message and dispatches to the intent handler
func (s *Service) HandleMessage(ctx context.Context, req *interfaces.AssistantRequest) (*interfaces.AssistantResponse, error) {
	intent := classifyIntent(req.Message)

	s.logger.Debug().
		Str("project_id", req.ProjectID).
		Str("intent", intent).
		Msg("Handling assistant message")

	switch intent {
	case "add_component":
		return s.handleAddComponent(ctx, req)
	case "run_analysis":
		return s.handleRunAnalysis(ctx, req)
	case "style_advice":
		return s.handleStyleAdvice(ctx, req)
	case "data_advice":
		return s.handleDataAdvice(ctx, req)
	default:
		return &interfaces.AssistantResponse{
			Intent: interfaces.IntentHelp,
			Reply:  helpReply,
		}, nil
	}
}

// handleAddComponent creates the named component on the target screen with
// its registry defaults and publishes the creation event.
func (s *Service) handleAddComponent(ctx context.Context, req *interfaces.AssistantRequest) (*interfaces.AssistantResponse, error) {
	componentType := mentionedComponentType(req.Message, s.registry.Types())
	if componentType == "" {
		return &interfaces.AssistantResponse{
			Intent: interfaces.IntentAddComponent,
			Reply:  "I couldn't tell which component to add. Try naming one, like \"add a button\" or \"add an input\".",
		}, nil
	}

	if req.ScreenID == "" {
		return &interfaces.AssistantResponse{
			Intent: interfaces.IntentAddComponent,
			Reply:  fmt.Sprintf("Select a screen first, then I can add the %s for you.", componentType),
		}, nil
	}

	if _, err := s.storage.Screens().GetScreen(ctx, req.ScreenID); err != nil {
		return nil, fmt.Errorf("failed to resolve target screen %s: %w", req.ScreenID, err)
	}

	component := &models.Component{
		ID:            common.NewComponentID(),
		ScreenID:      req.ScreenID,
		ComponentType: componentType,
		Props:         s.registry.DefaultProps(componentType),
		Styles:        stylesAsProps(s.registry.DefaultStyles(componentType)),
	}
	if err := s.storage.Components().CreateComponent(ctx, component); err != nil {
		return nil, fmt.Errorf("failed to add %s component: %w", componentType, err)
	}

	if err := s.events.Publish(ctx, interfaces.Event{Type: interfaces.EventComponentCreated, Payload: component}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish component created event")
	}

	return &interfaces.AssistantResponse{
		Intent: interfaces.IntentAddComponent,
		Reply:  fmt.Sprintf("Added a %s to the screen. You can adjust it in the properties panel.", componentType),
		Actions: []interfaces.CanvasAction{{
			Type:          "add_component",
			ComponentID:   component.ID,
			ComponentType: componentType,
			ScreenID:      req.ScreenID,
		}},
	}, nil
}

// handleRunAnalysis runs the full project analysis and summarizes the output
func (s *Service) handleRunAnalysis(ctx context.Context, req *interfaces.AssistantRequest) (*interfaces.AssistantResponse, error) {
	analysis, err := s.inference.AnalyzeProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze project: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d data model(s) and %d user journey(s).", len(analysis.DataModels), len(analysis.UserJourneys))
	for _, m := range analysis.DataModels {
		fmt.Fprintf(&b, " %s has %d field(s).", m.Name, len(m.Fields))
	}
	if len(analysis.Improvements) > 0 {
		fmt.Fprintf(&b, " Top suggestion: %s.", strings.TrimSuffix(analysis.Improvements[0], "."))
	}

	return &interfaces.AssistantResponse{
		Intent:  interfaces.IntentRunAnalysis,
		Reply:   b.String(),
		Actions: []interfaces.CanvasAction{{Type: "run_analysis"}},
	}, nil
}

// handleStyleAdvice extracts the design system and echoes its suggestions
func (s *Service) handleStyleAdvice(ctx context.Context, req *interfaces.AssistantRequest) (*interfaces.AssistantResponse, error) {
	components, err := s.storage.Components().GetComponentsByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	result := s.inference.ExtractDesignSystem(components)
	if result.Payload == nil {
		return &interfaces.AssistantResponse{
			Intent: interfaces.IntentStyleAdvice,
			Reply:  "There's nothing styled on the canvas yet. Add some components and I can review your colors, fonts, and spacing.",
		}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your primary color is %s with a %s type scale on a %.0fpx spacing unit.",
		result.Payload.Colors.Primary["500"],
		result.Payload.Typography.FontFamily,
		result.Payload.Spacing.BaseUnit)
	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(&b, " %s.", strings.TrimSuffix(suggestion, "."))
	}

	return &interfaces.AssistantResponse{
		Intent: interfaces.IntentStyleAdvice,
		Reply:  b.String(),
	}, nil
}

// handleDataAdvice infers data models and summarizes them
func (s *Service) handleDataAdvice(ctx context.Context, req *interfaces.AssistantRequest) (*interfaces.AssistantResponse, error) {
	components, err := s.storage.Components().GetComponentsByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	result := s.inference.InferDataModels(components)
	if len(result.Payload) == 0 {
		reply := "I couldn't infer any data models yet."
		if len(result.Suggestions) > 0 {
			reply += " " + result.Suggestions[0] + "."
		}
		return &interfaces.AssistantResponse{
			Intent: interfaces.IntentDataAdvice,
			Reply:  reply,
		}, nil
	}

	names := make([]string, 0, len(result.Payload))
	for _, m := range result.Payload {
		names = append(names, m.Name)
	}
	return &interfaces.AssistantResponse{
		Intent: interfaces.IntentDataAdvice,
		Reply:  fmt.Sprintf("Your app looks like it needs %d data model(s): %s. Each comes with CRUD API endpoints.", len(names), strings.Join(names, ", ")),
	}, nil
}

// stylesAsProps widens a string style map to the component's open style map
func stylesAsProps(styles map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}

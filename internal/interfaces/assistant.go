package interfaces

import "context"

// AssistantIntent is the classified purpose of a chat message
type AssistantIntent string

const (
	IntentAddComponent AssistantIntent = "add_component"
	IntentRunAnalysis  AssistantIntent = "run_analysis"
	IntentStyleAdvice  AssistantIntent = "style_advice"
	IntentDataAdvice   AssistantIntent = "data_advice"
	IntentHelp         AssistantIntent = "help"
)

// AssistantRequest is one chat message aimed at a project canvas
type AssistantRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	ScreenID  string `json:"screen_id,omitempty"` // Target screen for canvas mutations
	Message   string `json:"message" validate:"required,min=1"`
}

// CanvasAction describes a mutation the assistant applied to the canvas
type CanvasAction struct {
	Type          string `json:"type"` // "add_component" or "run_analysis"
	ComponentID   string `json:"component_id,omitempty"`
	ComponentType string `json:"component_type,omitempty"`
	ScreenID      string `json:"screen_id,omitempty"`
}

// AssistantResponse is the assistant's reply plus any applied actions
type AssistantResponse struct {
	Intent  AssistantIntent `json:"intent"`
	Reply   string          `json:"reply"`
	Actions []CanvasAction  `json:"actions,omitempty"`
}

// AssistantService - keyword-matched chat assistant that maps messages to
// canvas mutations and canned advice. Deliberately not a language model.
type AssistantService interface {
	HandleMessage(ctx context.Context, req *AssistantRequest) (*AssistantResponse, error)
}

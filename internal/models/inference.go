package models

// InferenceResult wraps an inference payload with the uniform contract
// every entry point returns: a [0,1] confidence, an ordered reasoning log,
// and actionable suggestions.
type InferenceResult[T any] struct {
	Payload     T        `json:"payload"`
	Confidence  float64  `json:"confidence"`
	Reasoning   []string `json:"reasoning"`
	Suggestions []string `json:"suggestions"`
}

// ComponentSuggestion recommends adding a component type to a screen
type ComponentSuggestion struct {
	ComponentType string  `json:"component_type"`
	Reason        string  `json:"reason"`
	Confidence    float64 `json:"confidence"`
}

// DataFlow is one inferred directed data edge between two components
type DataFlow struct {
	Source     string  `json:"source"` // Component id
	Target     string  `json:"target"` // Component id
	DataType   string  `json:"data_type"`
	Confidence float64 `json:"confidence"`
}

// ProjectAnalysis is the composite output of a full project analysis run
type ProjectAnalysis struct {
	ProjectID    string         `json:"project_id"`
	DataModels   []*DataModel   `json:"data_models"`
	DesignSystem *DesignSystem  `json:"design_system"`
	UserJourneys []*UserJourney `json:"user_journeys"`
	Improvements []string       `json:"improvements"`
}

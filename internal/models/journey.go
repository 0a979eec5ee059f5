package models

import "time"

// JourneyPriority ranks a journey's importance
type JourneyPriority string

const (
	PriorityHigh   JourneyPriority = "high"
	PriorityMedium JourneyPriority = "medium"
	PriorityLow    JourneyPriority = "low"
)

// JourneyStep is one (screen, action, outcome, interactions) tuple in an
// ordered user journey.
type JourneyStep struct {
	Step            int      `json:"step"` // 1-based
	ScreenID        string   `json:"screen_id"`
	Action          string   `json:"action"`
	ExpectedOutcome string   `json:"expected_outcome"`
	Interactions    []string `json:"interactions,omitempty"` // Inferred component-interaction tags
}

// UserJourney is an inferred multi-step path through the project's screens
// toward one persona goal. Discarded at generation time if no starting
// screen can be found for the goal.
type UserJourney struct {
	ID              string          `json:"id"` // uj_{uuid}
	ProjectID       string          `json:"project_id"`
	Name            string          `json:"name"` // "{persona}: {goal}"
	Persona         string          `json:"persona"`
	Goal            string          `json:"goal"`
	Steps           []JourneyStep   `json:"steps"`
	SuccessCriteria string          `json:"success_criteria"`
	Priority        JourneyPriority `json:"priority"`
	Confidence      float64         `json:"confidence"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Persona is a named user archetype with associated goals, derived from
// which screen types are present in the project.
type Persona struct {
	Name  string   `json:"name"`
	Goals []string `json:"goals"`
}

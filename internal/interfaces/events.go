package interfaces

import "context"

// EventType identifies a category of application event
type EventType string

const (
	EventComponentCreated EventType = "component.created"
	EventComponentUpdated EventType = "component.updated"
	EventComponentDeleted EventType = "component.deleted"
	EventScreenCreated    EventType = "screen.created"
	EventScreenUpdated    EventType = "screen.updated"
	EventScreenDeleted    EventType = "screen.deleted"
	EventAnalysisStarted  EventType = "analysis.started"
	EventAnalysisComplete EventType = "analysis.completed"
	EventAnalysisFailed   EventType = "analysis.failed"
)

// Event carries an event type and its payload
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventHandler processes a published event
type EventHandler func(ctx context.Context, event Event) error

// EventService - pub/sub for application events
type EventService interface {
	Subscribe(eventType EventType, handler EventHandler) error
	Publish(ctx context.Context, event Event) error
}

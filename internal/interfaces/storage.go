package interfaces

import (
	"context"

	"github.com/ternarybob/atelier/internal/models"
)

// ProjectStorage - interface for project persistence
type ProjectStorage interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error
}

// ScreenStorage - interface for screen persistence
type ScreenStorage interface {
	CreateScreen(ctx context.Context, screen *models.Screen) error
	GetScreen(ctx context.Context, id string) (*models.Screen, error)
	GetScreensByProject(ctx context.Context, projectID string) ([]*models.Screen, error)
	UpdateScreen(ctx context.Context, screen *models.Screen) error
	DeleteScreen(ctx context.Context, id string) error
}

// ComponentStorage - interface for component persistence
type ComponentStorage interface {
	CreateComponent(ctx context.Context, component *models.Component) error
	GetComponent(ctx context.Context, id string) (*models.Component, error)
	GetComponentsByScreen(ctx context.Context, screenID string) ([]*models.Component, error)
	GetComponentsByProject(ctx context.Context, projectID string) ([]*models.Component, error)
	UpdateComponent(ctx context.Context, component *models.Component) error
	DeleteComponent(ctx context.Context, id string) error
	DeleteComponentsByScreen(ctx context.Context, screenID string) error
}

// InferenceStorage - interface for persisting inference output
type InferenceStorage interface {
	// Data models
	SaveDataModel(ctx context.Context, model *models.DataModel) error
	GetDataModel(ctx context.Context, id string) (*models.DataModel, error)
	GetDataModelsByProject(ctx context.Context, projectID string) ([]*models.DataModel, error)
	DeleteDataModel(ctx context.Context, id string) error
	DeleteDataModelsByProject(ctx context.Context, projectID string) error

	// Design systems - SaveDesignSystem assigns the next version for the project
	SaveDesignSystem(ctx context.Context, ds *models.DesignSystem) error
	GetDesignSystem(ctx context.Context, projectID string) (*models.DesignSystem, error)
	GetDesignSystemVersions(ctx context.Context, projectID string) ([]*models.DesignSystem, error)

	// User journeys
	SaveJourney(ctx context.Context, journey *models.UserJourney) error
	GetJourneysByProject(ctx context.Context, projectID string) ([]*models.UserJourney, error)
	DeleteJourney(ctx context.Context, id string) error
	DeleteJourneysByProject(ctx context.Context, projectID string) error
}

// StorageManager - aggregates all storage interfaces behind one connection
type StorageManager interface {
	Projects() ProjectStorage
	Screens() ScreenStorage
	Components() ComponentStorage
	Inference() InferenceStorage
	Close() error
}

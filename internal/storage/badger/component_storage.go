package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// ComponentStorage implements the ComponentStorage interface for Badger.
// Components are indexed by screen and by project; the project index is
// denormalized at write time so full-project inference runs need a single
// query.
type ComponentStorage struct {
	db      *BadgerDB
	screens interfaces.ScreenStorage
	logger  arbor.ILogger
}

// NewComponentStorage creates a new ComponentStorage instance
func NewComponentStorage(db *BadgerDB, screens interfaces.ScreenStorage, logger arbor.ILogger) interfaces.ComponentStorage {
	return &ComponentStorage{
		db:      db,
		screens: screens,
		logger:  logger,
	}
}

func (s *ComponentStorage) CreateComponent(ctx context.Context, component *models.Component) error {
	if component.ID == "" {
		return fmt.Errorf("component ID is required")
	}
	if component.ScreenID == "" {
		return fmt.Errorf("component screen ID is required")
	}
	if component.ComponentType == "" {
		return fmt.Errorf("component type is required")
	}

	screen, err := s.screens.GetScreen(ctx, component.ScreenID)
	if err != nil {
		return fmt.Errorf("failed to resolve screen for component: %w", err)
	}

	now := time.Now().UTC()
	if component.CreatedAt.IsZero() {
		component.CreatedAt = now
	}
	component.UpdatedAt = now

	data, err := marshalEntity(component)
	if err != nil {
		return err
	}
	rec := &componentRecord{
		ID:           component.ID,
		ScreenID:     component.ScreenID,
		ProjectID:    screen.ProjectID,
		Data:         data,
		CreatedEpoch: component.CreatedAt.Unix(),
		UpdatedEpoch: component.UpdatedAt.Unix(),
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save component: %w", err)
	}
	return nil
}

func (s *ComponentStorage) GetComponent(ctx context.Context, id string) (*models.Component, error) {
	var rec componentRecord
	if err := s.db.Store().Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("component not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return componentFromRecord(&rec)
}

func (s *ComponentStorage) GetComponentsByScreen(ctx context.Context, screenID string) ([]*models.Component, error) {
	var recs []componentRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ScreenID").Eq(screenID).Index("ScreenID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find components: %w", err)
	}
	return componentsFromRecords(recs)
}

func (s *ComponentStorage) GetComponentsByProject(ctx context.Context, projectID string) ([]*models.Component, error) {
	var recs []componentRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find components: %w", err)
	}
	return componentsFromRecords(recs)
}

func (s *ComponentStorage) UpdateComponent(ctx context.Context, component *models.Component) error {
	return s.CreateComponent(ctx, component)
}

func (s *ComponentStorage) DeleteComponent(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &componentRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete component: %w", err)
	}
	return nil
}

func (s *ComponentStorage) DeleteComponentsByScreen(ctx context.Context, screenID string) error {
	err := s.db.Store().DeleteMatching(&componentRecord{}, badgerhold.Where("ScreenID").Eq(screenID).Index("ScreenID"))
	if err != nil {
		return fmt.Errorf("failed to delete components for screen %s: %w", screenID, err)
	}
	return nil
}

func componentFromRecord(rec *componentRecord) (*models.Component, error) {
	var component models.Component
	if err := unmarshalEntity(rec.Data, &component); err != nil {
		return nil, err
	}
	component.CreatedAt = epochTime(rec.CreatedEpoch)
	component.UpdatedAt = epochTime(rec.UpdatedEpoch)
	return &component, nil
}

func componentsFromRecords(recs []componentRecord) ([]*models.Component, error) {
	components := make([]*models.Component, 0, len(recs))
	for i := range recs {
		component, err := componentFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

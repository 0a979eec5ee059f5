package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// InferenceStorage implements the InferenceStorage interface for Badger
type InferenceStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewInferenceStorage creates a new InferenceStorage instance
func NewInferenceStorage(db *BadgerDB, logger arbor.ILogger) interfaces.InferenceStorage {
	return &InferenceStorage{
		db:     db,
		logger: logger,
	}
}

// --- Data models ---

func (s *InferenceStorage) SaveDataModel(ctx context.Context, model *models.DataModel) error {
	if model.ID == "" {
		return fmt.Errorf("data model ID is required")
	}
	if model.ProjectID == "" {
		return fmt.Errorf("data model project ID is required")
	}

	now := time.Now().UTC()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	model.UpdatedAt = now

	data, err := marshalEntity(model)
	if err != nil {
		return err
	}
	rec := &dataModelRecord{
		ID:           model.ID,
		ProjectID:    model.ProjectID,
		Data:         data,
		CreatedEpoch: model.CreatedAt.Unix(),
		UpdatedEpoch: model.UpdatedAt.Unix(),
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save data model: %w", err)
	}
	return nil
}

func (s *InferenceStorage) GetDataModel(ctx context.Context, id string) (*models.DataModel, error) {
	var rec dataModelRecord
	if err := s.db.Store().Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("data model not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get data model: %w", err)
	}
	return dataModelFromRecord(&rec)
}

func (s *InferenceStorage) GetDataModelsByProject(ctx context.Context, projectID string) ([]*models.DataModel, error) {
	var recs []dataModelRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find data models: %w", err)
	}

	result := make([]*models.DataModel, 0, len(recs))
	for i := range recs {
		model, err := dataModelFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, model)
	}
	return result, nil
}

func (s *InferenceStorage) DeleteDataModel(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &dataModelRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete data model: %w", err)
	}
	return nil
}

func (s *InferenceStorage) DeleteDataModelsByProject(ctx context.Context, projectID string) error {
	err := s.db.Store().DeleteMatching(&dataModelRecord{}, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return fmt.Errorf("failed to delete data models for project %s: %w", projectID, err)
	}
	return nil
}

// --- Design systems ---

// SaveDesignSystem persists a design system, assigning the next version
// number for the project. The engine always emits version 1; versioning
// across runs is this layer's concern.
func (s *InferenceStorage) SaveDesignSystem(ctx context.Context, ds *models.DesignSystem) error {
	if ds.ID == "" {
		return fmt.Errorf("design system ID is required")
	}
	if ds.ProjectID == "" {
		return fmt.Errorf("design system project ID is required")
	}

	latest, err := s.GetDesignSystem(ctx, ds.ProjectID)
	if err == nil && latest != nil {
		ds.Version = latest.Version + 1
	} else if ds.Version == 0 {
		ds.Version = 1
	}

	now := time.Now().UTC()
	if ds.CreatedAt.IsZero() {
		ds.CreatedAt = now
	}
	ds.UpdatedAt = now

	data, err := marshalEntity(ds)
	if err != nil {
		return err
	}
	rec := &designSystemRecord{
		ID:           ds.ID,
		ProjectID:    ds.ProjectID,
		Version:      ds.Version,
		Data:         data,
		CreatedEpoch: ds.CreatedAt.Unix(),
		UpdatedEpoch: ds.UpdatedAt.Unix(),
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save design system: %w", err)
	}
	return nil
}

// GetDesignSystem returns the highest-version design system for a project
func (s *InferenceStorage) GetDesignSystem(ctx context.Context, projectID string) (*models.DesignSystem, error) {
	versions, err := s.GetDesignSystemVersions(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("design system not found for project: %s", projectID)
	}
	return versions[len(versions)-1], nil
}

// GetDesignSystemVersions returns all design system versions for a project
// in ascending version order
func (s *InferenceStorage) GetDesignSystemVersions(ctx context.Context, projectID string) ([]*models.DesignSystem, error) {
	var recs []designSystemRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find design systems: %w", err)
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Version < recs[j].Version })

	result := make([]*models.DesignSystem, 0, len(recs))
	for i := range recs {
		var ds models.DesignSystem
		if err := unmarshalEntity(recs[i].Data, &ds); err != nil {
			return nil, err
		}
		ds.CreatedAt = epochTime(recs[i].CreatedEpoch)
		ds.UpdatedAt = epochTime(recs[i].UpdatedEpoch)
		result = append(result, &ds)
	}
	return result, nil
}

// --- User journeys ---

func (s *InferenceStorage) SaveJourney(ctx context.Context, journey *models.UserJourney) error {
	if journey.ID == "" {
		return fmt.Errorf("journey ID is required")
	}
	if journey.ProjectID == "" {
		return fmt.Errorf("journey project ID is required")
	}

	now := time.Now().UTC()
	if journey.CreatedAt.IsZero() {
		journey.CreatedAt = now
	}
	journey.UpdatedAt = now

	data, err := marshalEntity(journey)
	if err != nil {
		return err
	}
	rec := &journeyRecord{
		ID:           journey.ID,
		ProjectID:    journey.ProjectID,
		Data:         data,
		CreatedEpoch: journey.CreatedAt.Unix(),
		UpdatedEpoch: journey.UpdatedAt.Unix(),
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save journey: %w", err)
	}
	return nil
}

func (s *InferenceStorage) GetJourneysByProject(ctx context.Context, projectID string) ([]*models.UserJourney, error) {
	var recs []journeyRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find journeys: %w", err)
	}

	result := make([]*models.UserJourney, 0, len(recs))
	for i := range recs {
		var journey models.UserJourney
		if err := unmarshalEntity(recs[i].Data, &journey); err != nil {
			return nil, err
		}
		journey.CreatedAt = epochTime(recs[i].CreatedEpoch)
		journey.UpdatedAt = epochTime(recs[i].UpdatedEpoch)
		result = append(result, &journey)
	}
	return result, nil
}

func (s *InferenceStorage) DeleteJourney(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &journeyRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete journey: %w", err)
	}
	return nil
}

func (s *InferenceStorage) DeleteJourneysByProject(ctx context.Context, projectID string) error {
	err := s.db.Store().DeleteMatching(&journeyRecord{}, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return fmt.Errorf("failed to delete journeys for project %s: %w", projectID, err)
	}
	return nil
}

func dataModelFromRecord(rec *dataModelRecord) (*models.DataModel, error) {
	var model models.DataModel
	if err := unmarshalEntity(rec.Data, &model); err != nil {
		return nil, err
	}
	model.CreatedAt = epochTime(rec.CreatedEpoch)
	model.UpdatedAt = epochTime(rec.UpdatedEpoch)
	return &model, nil
}

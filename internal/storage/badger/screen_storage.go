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

// ScreenStorage implements the ScreenStorage interface for Badger
type ScreenStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewScreenStorage creates a new ScreenStorage instance
func NewScreenStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ScreenStorage {
	return &ScreenStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ScreenStorage) CreateScreen(ctx context.Context, screen *models.Screen) error {
	if screen.ID == "" {
		return fmt.Errorf("screen ID is required")
	}
	if screen.ProjectID == "" {
		return fmt.Errorf("screen project ID is required")
	}

	now := time.Now().UTC()
	if screen.CreatedAt.IsZero() {
		screen.CreatedAt = now
	}
	screen.UpdatedAt = now

	data, err := marshalEntity(screen)
	if err != nil {
		return err
	}
	rec := &screenRecord{
		ID:           screen.ID,
		ProjectID:    screen.ProjectID,
		Data:         data,
		CreatedEpoch: screen.CreatedAt.Unix(),
		UpdatedEpoch: screen.UpdatedAt.Unix(),
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save screen: %w", err)
	}
	return nil
}

func (s *ScreenStorage) GetScreen(ctx context.Context, id string) (*models.Screen, error) {
	var rec screenRecord
	if err := s.db.Store().Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("screen not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get screen: %w", err)
	}
	return screenFromRecord(&rec)
}

func (s *ScreenStorage) GetScreensByProject(ctx context.Context, projectID string) ([]*models.Screen, error) {
	var recs []screenRecord
	err := s.db.Store().Find(&recs, badgerhold.Where("ProjectID").Eq(projectID).Index("ProjectID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find screens: %w", err)
	}

	screens := make([]*models.Screen, 0, len(recs))
	for i := range recs {
		screen, err := screenFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		screens = append(screens, screen)
	}
	return screens, nil
}

func (s *ScreenStorage) UpdateScreen(ctx context.Context, screen *models.Screen) error {
	return s.CreateScreen(ctx, screen)
}

func (s *ScreenStorage) DeleteScreen(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &screenRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete screen: %w", err)
	}
	return nil
}

func screenFromRecord(rec *screenRecord) (*models.Screen, error) {
	var screen models.Screen
	if err := unmarshalEntity(rec.Data, &screen); err != nil {
		return nil, err
	}
	screen.CreatedAt = epochTime(rec.CreatedEpoch)
	screen.UpdatedAt = epochTime(rec.UpdatedEpoch)
	return &screen, nil
}

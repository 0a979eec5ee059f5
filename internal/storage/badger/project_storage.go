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

// ProjectStorage implements the ProjectStorage interface for Badger
type ProjectStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewProjectStorage creates a new ProjectStorage instance
func NewProjectStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ProjectStorage {
	return &ProjectStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ProjectStorage) CreateProject(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		return fmt.Errorf("project ID is required")
	}

	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	rec, err := newProjectRecord(project)
	if err != nil {
		return err
	}
	if err := s.db.Store().Upsert(rec.ID, rec); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (s *ProjectStorage) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var rec projectRecord
	if err := s.db.Store().Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("project not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return projectFromRecord(&rec)
}

func (s *ProjectStorage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	var recs []projectRecord
	if err := s.db.Store().Find(&recs, nil); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*models.Project, 0, len(recs))
	for i := range recs {
		project, err := projectFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *ProjectStorage) UpdateProject(ctx context.Context, project *models.Project) error {
	return s.CreateProject(ctx, project)
}

func (s *ProjectStorage) DeleteProject(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &projectRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func newProjectRecord(project *models.Project) (*projectRecord, error) {
	data, err := marshalEntity(project)
	if err != nil {
		return nil, err
	}
	return &projectRecord{
		ID:           project.ID,
		Data:         data,
		CreatedEpoch: project.CreatedAt.Unix(),
		UpdatedEpoch: project.UpdatedAt.Unix(),
	}, nil
}

func projectFromRecord(rec *projectRecord) (*models.Project, error) {
	var project models.Project
	if err := unmarshalEntity(rec.Data, &project); err != nil {
		return nil, err
	}
	project.CreatedAt = epochTime(rec.CreatedEpoch)
	project.UpdatedAt = epochTime(rec.UpdatedEpoch)
	return &project, nil
}

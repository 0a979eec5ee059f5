package inference

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
)

// recordingStore keeps successful saves and fails once failFrom is reached
type recordingStore struct {
	interfaces.InferenceStorage
	savedModels   []*models.DataModel
	savedJourneys []*models.UserJourney
	failFrom      int
}

func (s *recordingStore) DeleteDataModelsByProject(ctx context.Context, projectID string) error {
	return nil
}

func (s *recordingStore) SaveDataModel(ctx context.Context, m *models.DataModel) error {
	if len(s.savedModels) >= s.failFrom {
		return errors.New("disk full")
	}
	s.savedModels = append(s.savedModels, m)
	return nil
}

func (s *recordingStore) DeleteJourneysByProject(ctx context.Context, projectID string) error {
	return nil
}

func (s *recordingStore) SaveJourney(ctx context.Context, j *models.UserJourney) error {
	if len(s.savedJourneys) >= s.failFrom {
		return errors.New("disk full")
	}
	s.savedJourneys = append(s.savedJourneys, j)
	return nil
}

func TestPersistDataModels_EarlierSavesSurviveFailure(t *testing.T) {
	store := &recordingStore{failFrom: 1}
	batch := []*models.DataModel{
		{ID: "dm_1", Name: "User"},
		{ID: "dm_2", Name: "Post"},
	}

	err := PersistDataModels(context.Background(), store, "proj_1", batch)
	if err == nil {
		t.Fatal("Expected an error from the failing save")
	}
	if !strings.Contains(err.Error(), "Post") {
		t.Errorf("Expected the error to name the failed model, got %v", err)
	}
	if len(store.savedModels) != 1 || store.savedModels[0].Name != "User" {
		t.Errorf("Expected the first model to stay committed, got %v", store.savedModels)
	}
}

func TestPersistJourneys_EarlierSavesSurviveFailure(t *testing.T) {
	store := &recordingStore{failFrom: 1}
	batch := []*models.UserJourney{
		{ID: "uj_1", Name: "New User: Sign up for an account"},
		{ID: "uj_2", Name: "Regular User: Browse available content"},
	}

	err := PersistJourneys(context.Background(), store, "proj_1", batch)
	if err == nil {
		t.Fatal("Expected an error from the failing save")
	}
	if !strings.Contains(err.Error(), "Browse available content") {
		t.Errorf("Expected the error to name the failed journey, got %v", err)
	}
	if len(store.savedJourneys) != 1 {
		t.Errorf("Expected the first journey to stay committed, got %d", len(store.savedJourneys))
	}
}

func TestPersistDesignSystem_NilIsNoOp(t *testing.T) {
	store := &recordingStore{}
	if err := PersistDesignSystem(context.Background(), store, nil); err != nil {
		t.Errorf("Expected nil design system to persist nothing, got %v", err)
	}
}

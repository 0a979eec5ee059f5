package inference

import (
	"context"
	"fmt"

	"github.com/ternarybob/atelier/internal/interfaces"
	"github.com/ternarybob/atelier/internal/models"
)

// PersistDataModels replaces the project's inferred data models with the
// given batch. Saves are sequential; on failure the earlier records stay
// committed and the error names the model that failed.
func PersistDataModels(ctx context.Context, store interfaces.InferenceStorage, projectID string, dataModels []*models.DataModel) error {
	if err := store.DeleteDataModelsByProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to clear prior data models: %w", err)
	}
	for _, m := range dataModels {
		if err := store.SaveDataModel(ctx, m); err != nil {
			return fmt.Errorf("failed to save data model %s: %w", m.Name, err)
		}
	}
	return nil
}

// PersistDesignSystem saves one extraction run; the store assigns the
// next version for the project.
func PersistDesignSystem(ctx context.Context, store interfaces.InferenceStorage, ds *models.DesignSystem) error {
	if ds == nil {
		return nil
	}
	if err := store.SaveDesignSystem(ctx, ds); err != nil {
		return fmt.Errorf("failed to save design system: %w", err)
	}
	return nil
}

// PersistJourneys replaces the project's journeys with the given batch,
// with the same sequential-commit semantics as PersistDataModels.
func PersistJourneys(ctx context.Context, store interfaces.InferenceStorage, projectID string, journeys []*models.UserJourney) error {
	if err := store.DeleteJourneysByProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to clear prior journeys: %w", err)
	}
	for _, j := range journeys {
		if err := store.SaveJourney(ctx, j); err != nil {
			return fmt.Errorf("failed to save journey %q: %w", j.Name, err)
		}
	}
	return nil
}

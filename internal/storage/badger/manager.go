package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/atelier/internal/common"
	"github.com/ternarybob/atelier/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger
type Manager struct {
	db         *BadgerDB
	projects   interfaces.ProjectStorage
	screens    interfaces.ScreenStorage
	components interfaces.ComponentStorage
	inference  interfaces.InferenceStorage
	logger     arbor.ILogger
}

// NewManager creates a new Badger storage manager
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	screens := NewScreenStorage(db, logger)

	manager := &Manager{
		db:         db,
		projects:   NewProjectStorage(db, logger),
		screens:    screens,
		components: NewComponentStorage(db, screens, logger),
		inference:  NewInferenceStorage(db, logger),
		logger:     logger,
	}

	logger.Info().Msg("Badger storage manager initialized")

	return manager, nil
}

// Projects returns the Project storage interface
func (m *Manager) Projects() interfaces.ProjectStorage {
	return m.projects
}

// Screens returns the Screen storage interface
func (m *Manager) Screens() interfaces.ScreenStorage {
	return m.screens
}

// Components returns the Component storage interface
func (m *Manager) Components() interfaces.ComponentStorage {
	return m.components
}

// Inference returns the Inference storage interface
func (m *Manager) Inference() interfaces.InferenceStorage {
	return m.inference
}

// Close closes the underlying database connection
func (m *Manager) Close() error {
	return m.db.Close()
}

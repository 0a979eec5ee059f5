package common

import (
	"github.com/google/uuid"
)

// NewProjectID generates a unique project ID with the "proj_" prefix
func NewProjectID() string {
	return "proj_" + uuid.New().String()
}

// NewScreenID generates a unique screen ID with the "scr_" prefix
func NewScreenID() string {
	return "scr_" + uuid.New().String()
}

// NewComponentID generates a unique component ID with the "cmp_" prefix
func NewComponentID() string {
	return "cmp_" + uuid.New().String()
}

// NewDataModelID generates a unique data model ID with the "dm_" prefix
func NewDataModelID() string {
	return "dm_" + uuid.New().String()
}

// NewDesignSystemID generates a unique design system ID with the "ds_" prefix
func NewDesignSystemID() string {
	return "ds_" + uuid.New().String()
}

// NewJourneyID generates a unique user journey ID with the "uj_" prefix
func NewJourneyID() string {
	return "uj_" + uuid.New().String()
}

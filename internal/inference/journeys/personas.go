package journeys

import (
	"github.com/ternarybob/atelier/internal/models"
)

// Persona derivation works from the set of screen types present in the
// project. Personas are independent: one screen set can yield several.

var (
	newUserGoals = []string{
		"Sign up for an account",
		"Understand the product features",
		"Complete onboarding",
	}
	regularUserGoals = []string{
		"View content",
		"Create new items",
		"Manage existing data",
	}
	powerUserGoals = []string{
		"Customize settings",
		"Perform bulk operations",
		"Use advanced features",
	}
)

// IdentifyPersonas derives personas from the screen types present
func IdentifyPersonas(screens []*models.Screen) []models.Persona {
	present := make(map[models.ScreenType]bool, len(screens))
	for _, s := range screens {
		present[s.Type] = true
	}

	var personas []models.Persona
	if present[models.ScreenTypeLanding] || present[models.ScreenTypeForm] {
		personas = append(personas, models.Persona{Name: "New User", Goals: newUserGoals})
	}
	if present[models.ScreenTypeList] || present[models.ScreenTypeDetail] {
		personas = append(personas, models.Persona{Name: "Regular User", Goals: regularUserGoals})
	}
	if present[models.ScreenTypeSettings] || len(screens) > 5 {
		personas = append(personas, models.Persona{Name: "Power User", Goals: powerUserGoals})
	}

	if len(personas) == 0 {
		all := make([]string, 0, len(newUserGoals)+len(regularUserGoals)+len(powerUserGoals))
		all = append(all, newUserGoals...)
		all = append(all, regularUserGoals...)
		all = append(all, powerUserGoals...)
		personas = append(personas, models.Persona{Name: "General User", Goals: all})
	}
	return personas
}

// goalPriority assigns a journey priority per the persona's goal order:
// a New User's first goal and a Regular User's first two goals are high,
// any other persona's first goal is medium, later goals are low.
func goalPriority(persona string, goalIndex int) models.JourneyPriority {
	switch persona {
	case "New User":
		if goalIndex == 0 {
			return models.PriorityHigh
		}
	case "Regular User":
		if goalIndex < 2 {
			return models.PriorityHigh
		}
	}
	if goalIndex == 0 {
		return models.PriorityMedium
	}
	return models.PriorityLow
}

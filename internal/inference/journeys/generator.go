package journeys

import (
	"fmt"

	"github.com/ternarybob/atelier/internal/models"
)

// Generator produces user journeys from a screen snapshot
type Generator struct {
	newID func() string
}

// NewGenerator creates a generator using newID for journey identifiers
func NewGenerator(newID func() string) *Generator {
	return &Generator{newID: newID}
}

// Result is the outcome of one journey generation run
type Result struct {
	Journeys    []*models.UserJourney
	Confidence  float64
	Reasoning   []string
	Suggestions []string
}

// Generate builds the screen graph, derives personas, and walks the graph
// toward each persona goal. Journeys that produce no steps are discarded.
func (g *Generator) Generate(screens []*models.Screen) Result {
	var result Result

	if len(screens) == 0 {
		result.Reasoning = append(result.Reasoning, "No screens to analyze")
		result.Suggestions = append(result.Suggestions, "Add screens to the project so user journeys can be inferred")
		return result
	}

	edges := BuildGraph(screens)
	personas := IdentifyPersonas(screens)

	result.Reasoning = append(result.Reasoning,
		fmt.Sprintf("Built navigation graph with %d edges over %d screens", len(edges), len(screens)),
		fmt.Sprintf("Identified %d persona(s) from present screen types", len(personas)))

	for _, persona := range personas {
		for goalIndex, goal := range persona.Goals {
			start := startScreen(screens, goal)
			if start == nil {
				continue
			}
			steps := walk(start, goal, screens, edges)
			if len(steps) == 0 {
				continue
			}

			journey := &models.UserJourney{
				ID:              g.newID(),
				Name:            fmt.Sprintf("%s: %s", persona.Name, goal),
				Persona:         persona.Name,
				Goal:            goal,
				Steps:           steps,
				SuccessCriteria: fmt.Sprintf("%s completes %q in %d step(s)", persona.Name, goal, len(steps)),
				Priority:        goalPriority(persona.Name, goalIndex),
				Confidence:      journeyConfidence,
			}
			result.Journeys = append(result.Journeys, journey)
		}
	}

	if len(result.Journeys) > 0 {
		sum := 0.0
		for _, j := range result.Journeys {
			sum += j.Confidence
		}
		result.Confidence = sum / float64(len(result.Journeys))
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Generated %d journey(s) across %d persona(s)", len(result.Journeys), len(personas)))
	} else {
		result.Suggestions = append(result.Suggestions,
			"No journeys could be generated; connect screens with navigation so goal paths exist")
	}

	if HomeScreen(screens) == nil || !hasHomeFlag(screens) {
		result.Suggestions = append(result.Suggestions, "Mark one screen as the home page to anchor navigation")
	}

	if orphans := orphanScreens(screens, edges); len(orphans) > 0 {
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("%d screen(s) are not connected to any other screen; add navigation to or from them", len(orphans)))
	}

	return result
}

func hasHomeFlag(screens []*models.Screen) bool {
	for _, s := range screens {
		if s.IsHomePage {
			return true
		}
	}
	return false
}

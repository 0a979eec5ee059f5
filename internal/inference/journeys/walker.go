package journeys

import (
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// maxJourneySteps caps the greedy walk; combined with the visited-set
// cycle guard it keeps every journey finite and revisit-free.
const maxJourneySteps = 10

const journeyConfidence = 0.8

// stepRule maps (screen type, goal keyword) to the recorded action and
// expected outcome. First match wins; an empty keyword is the screen
// type's default row.
type stepRule struct {
	screenType  models.ScreenType
	goalKeyword string
	action      string
	outcome     string
}

var stepRules = []stepRule{
	{models.ScreenTypeLanding, "sign", "Click sign up button", "User understands value proposition"},
	{models.ScreenTypeLanding, "", "Review landing page content", "User understands value proposition"},
	{models.ScreenTypeForm, "sign", "Fill in registration details", "Account is created"},
	{models.ScreenTypeForm, "create", "Fill in item details", "New item is saved"},
	{models.ScreenTypeForm, "", "Fill in and submit the form", "Submission is accepted"},
	{models.ScreenTypeList, "view", "Browse available items", "User finds relevant content"},
	{models.ScreenTypeList, "manage", "Select an item to manage", "Item actions are available"},
	{models.ScreenTypeList, "", "Browse the list", "User finds relevant content"},
	{models.ScreenTypeDetail, "", "View item details", "User sees complete information"},
	{models.ScreenTypeProfile, "", "Review profile information", "Profile data is up to date"},
	{models.ScreenTypeSettings, "customize", "Adjust preferences", "Settings are saved"},
	{models.ScreenTypeSettings, "", "Open settings", "Configuration options are visible"},
}

// alignmentRule marks a target screen as goal-aligned for next-step choice
type alignmentRule struct {
	goalKeyword string
	screenType  models.ScreenType
}

var alignmentRules = []alignmentRule{
	{"sign", models.ScreenTypeForm},
	{"onboarding", models.ScreenTypeProfile},
	{"view", models.ScreenTypeList},
	{"content", models.ScreenTypeList},
	{"create", models.ScreenTypeForm},
	{"manage", models.ScreenTypeDetail},
	{"settings", models.ScreenTypeSettings},
	{"customize", models.ScreenTypeSettings},
	{"advanced", models.ScreenTypeSettings},
}

// completionRule judges a goal complete once the walk reaches a screen type
type completionRule struct {
	goalKeyword string
	screenType  models.ScreenType
}

var completionRules = []completionRule{
	{"sign", models.ScreenTypeForm},
	{"onboarding", models.ScreenTypeProfile},
	{"view", models.ScreenTypeDetail},
	{"create", models.ScreenTypeForm},
	{"manage", models.ScreenTypeDetail},
	{"settings", models.ScreenTypeSettings},
	{"customize", models.ScreenTypeSettings},
	{"bulk", models.ScreenTypeList},
	{"advanced", models.ScreenTypeSettings},
}

// interactionTags maps action-text keywords to component-interaction tags
var interactionTags = []struct {
	keyword string
	tags    []string
}{
	{"click", []string{"Button click"}},
	{"fill", []string{"Form input", "Validation feedback"}},
	{"enter", []string{"Form input", "Validation feedback"}},
	{"select", []string{"Item selection", "Hover state"}},
	{"browse", []string{"Scroll interaction", "Content loading"}},
	{"view", []string{"Scroll interaction", "Content loading"}},
}

// walk performs the greedy goal-directed traversal from the start screen,
// recording one step per screen until the goal is judged complete, the
// walk would revisit a screen, or no edge leads anywhere new.
func walk(start *models.Screen, goal string, screens []*models.Screen, edges []Edge) []models.JourneyStep {
	byID := make(map[string]*models.Screen, len(screens))
	for _, s := range screens {
		byID[s.ID] = s
	}

	var steps []models.JourneyStep
	visited := make(map[string]bool)
	current := start

	for len(steps) < maxJourneySteps {
		if visited[current.ID] {
			break
		}
		visited[current.ID] = true

		action, outcome := stepFor(current, goal)
		steps = append(steps, models.JourneyStep{
			Step:            len(steps) + 1,
			ScreenID:        current.ID,
			Action:          action,
			ExpectedOutcome: outcome,
			Interactions:    tagsFor(action),
		})

		if goalComplete(goal, current) {
			break
		}

		next := nextScreen(current, goal, edges, byID, visited)
		if next == nil {
			break
		}
		current = next
	}
	return steps
}

// stepFor resolves the action/outcome row for a screen and goal
func stepFor(screen *models.Screen, goal string) (action, outcome string) {
	lowerGoal := strings.ToLower(goal)
	for _, rule := range stepRules {
		if rule.screenType != screen.Type {
			continue
		}
		if rule.goalKeyword == "" || strings.Contains(lowerGoal, rule.goalKeyword) {
			return rule.action, rule.outcome
		}
	}
	return "Interact with the screen", "User progresses toward the goal"
}

// nextScreen picks the best outgoing edge to an unvisited screen:
// goal-aligned targets first, then the highest-confidence edge.
func nextScreen(current *models.Screen, goal string, edges []Edge, byID map[string]*models.Screen, visited map[string]bool) *models.Screen {
	var best *models.Screen
	bestConfidence := -1.0

	lowerGoal := strings.ToLower(goal)
	for _, e := range edges {
		if e.From != current.ID {
			continue
		}
		target, ok := byID[e.To]
		if !ok || visited[target.ID] {
			continue
		}
		if goalAligned(lowerGoal, target) {
			return target
		}
		if e.Confidence > bestConfidence {
			best = target
			bestConfidence = e.Confidence
		}
	}
	return best
}

func goalAligned(lowerGoal string, target *models.Screen) bool {
	for _, rule := range alignmentRules {
		if target.Type == rule.screenType && strings.Contains(lowerGoal, rule.goalKeyword) {
			return true
		}
	}
	return false
}

func goalComplete(goal string, screen *models.Screen) bool {
	lowerGoal := strings.ToLower(goal)
	for _, rule := range completionRules {
		if screen.Type == rule.screenType && strings.Contains(lowerGoal, rule.goalKeyword) {
			return true
		}
	}
	return false
}

func tagsFor(action string) []string {
	lower := strings.ToLower(action)
	var tags []string
	seen := make(map[string]bool)
	for _, m := range interactionTags {
		if !strings.Contains(lower, m.keyword) {
			continue
		}
		for _, tag := range m.tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// startScreen chooses where a goal's journey begins: the home screen,
// else a landing screen, else a goal-keyed fallback, else the first
// screen. Returns nil only for an empty screen list.
func startScreen(screens []*models.Screen, goal string) *models.Screen {
	if len(screens) == 0 {
		return nil
	}
	if home := HomeScreen(screens); home != nil {
		return home
	}

	lowerGoal := strings.ToLower(goal)
	if strings.Contains(lowerGoal, "sign") {
		for _, s := range screens {
			if s.Type == models.ScreenTypeForm {
				return s
			}
		}
	}
	if strings.Contains(lowerGoal, "view") {
		for _, s := range screens {
			if s.Type == models.ScreenTypeList {
				return s
			}
		}
	}
	return screens[0]
}

// Package journeys builds a directed navigation graph over a project's
// screens and walks it to generate persona-driven user journeys.
package journeys

import (
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// Edge is one inferred navigation connection between two screens
type Edge struct {
	From       string   `json:"from"` // Screen id
	To         string   `json:"to"`   // Screen id
	Triggers   []string `json:"triggers"`
	Confidence float64  `json:"confidence"`
}

// connectionRule matches an ordered screen pair by type and target name.
// Rules live in a table so each one stays auditable and testable on its own.
type connectionRule struct {
	name           string
	fromType       models.ScreenType // empty matches any
	toType         models.ScreenType // empty matches any
	toNameContains string            // empty matches any
	trigger        string
	bonus          float64
}

var connectionRules = []connectionRule{
	{
		name:           "landing-to-login",
		fromType:       models.ScreenTypeLanding,
		toType:         models.ScreenTypeForm,
		toNameContains: "login",
		trigger:        "Login button click",
		bonus:          0.2,
	},
	{
		name:     "list-to-detail",
		fromType: models.ScreenTypeList,
		toType:   models.ScreenTypeDetail,
		trigger:  "Item selection",
		bonus:    0.3,
	},
	{
		name:     "form-to-list",
		fromType: models.ScreenTypeForm,
		toType:   models.ScreenTypeList,
		trigger:  "Form submission",
	},
	{
		name:           "form-to-success",
		fromType:       models.ScreenTypeForm,
		toNameContains: "success",
		trigger:        "Form submission",
		bonus:          0.3,
	},
	{
		name:    "any-to-settings",
		toType:  models.ScreenTypeSettings,
		trigger: "Settings navigation",
	},
}

func (r connectionRule) matches(from, to *models.Screen) bool {
	if r.fromType != "" && from.Type != r.fromType {
		return false
	}
	if r.toType != "" && to.Type != r.toType {
		return false
	}
	if r.toNameContains != "" && !strings.Contains(strings.ToLower(to.Name), r.toNameContains) {
		return false
	}
	return true
}

// BuildGraph infers directed edges between screens: explicit rule matches
// first, then implicit hub connections from the home screen and the
// profile/settings pairing.
func BuildGraph(screens []*models.Screen) []Edge {
	var edges []Edge

	for _, from := range screens {
		for _, to := range screens {
			if from.ID == to.ID {
				continue
			}
			var triggers []string
			bonus := 0.0
			for _, rule := range connectionRules {
				if rule.matches(from, to) {
					triggers = append(triggers, rule.trigger)
					if rule.bonus > bonus {
						bonus = rule.bonus
					}
				}
			}
			if len(triggers) == 0 {
				continue
			}
			confidence := 0.5 + 0.1*float64(len(triggers)) + bonus
			if confidence > 1.0 {
				confidence = 1.0
			}
			edges = append(edges, Edge{
				From:       from.ID,
				To:         to.ID,
				Triggers:   triggers,
				Confidence: confidence,
			})
		}
	}

	edges = append(edges, implicitHubEdges(screens, edges)...)
	edges = append(edges, profileSettingsEdges(screens, edges)...)
	return edges
}

// HomeScreen returns the designated home screen: the flagged one, else
// the first landing-type screen, else nil.
func HomeScreen(screens []*models.Screen) *models.Screen {
	for _, s := range screens {
		if s.IsHomePage {
			return s
		}
	}
	for _, s := range screens {
		if s.Type == models.ScreenTypeLanding {
			return s
		}
	}
	return nil
}

// mainNavigationTarget reports whether a screen belongs in a hub's main
// navigation: list/profile/settings screens and anything named like an
// overview page.
func mainNavigationTarget(s *models.Screen) bool {
	switch s.Type {
	case models.ScreenTypeList, models.ScreenTypeProfile, models.ScreenTypeSettings:
		return true
	}
	name := strings.ToLower(s.Name)
	for _, hub := range []string{"dashboard", "home", "main", "overview"} {
		if strings.Contains(name, hub) {
			return true
		}
	}
	return false
}

func implicitHubEdges(screens []*models.Screen, existing []Edge) []Edge {
	home := HomeScreen(screens)
	if home == nil {
		return nil
	}

	var edges []Edge
	for _, s := range screens {
		if s.ID == home.ID || !mainNavigationTarget(s) {
			continue
		}
		if hasEdge(existing, home.ID, s.ID) {
			continue
		}
		edges = append(edges, Edge{
			From:       home.ID,
			To:         s.ID,
			Triggers:   []string{"Main navigation"},
			Confidence: 0.7,
		})
	}
	return edges
}

func profileSettingsEdges(screens []*models.Screen, existing []Edge) []Edge {
	var profile, settings *models.Screen
	for _, s := range screens {
		switch s.Type {
		case models.ScreenTypeProfile:
			if profile == nil {
				profile = s
			}
		case models.ScreenTypeSettings:
			if settings == nil {
				settings = s
			}
		}
	}
	if profile == nil || settings == nil {
		return nil
	}

	var edges []Edge
	if !hasEdge(existing, profile.ID, settings.ID) {
		edges = append(edges, Edge{
			From:       profile.ID,
			To:         settings.ID,
			Triggers:   []string{"Settings navigation"},
			Confidence: 0.8,
		})
	}
	if !hasEdge(existing, settings.ID, profile.ID) {
		edges = append(edges, Edge{
			From:       settings.ID,
			To:         profile.ID,
			Triggers:   []string{"Profile navigation"},
			Confidence: 0.8,
		})
	}
	return edges
}

func hasEdge(edges []Edge, from, to string) bool {
	for _, e := range edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

// orphanScreens returns screens that appear in no edge at all
func orphanScreens(screens []*models.Screen, edges []Edge) []*models.Screen {
	connected := make(map[string]bool, len(screens))
	for _, e := range edges {
		connected[e.From] = true
		connected[e.To] = true
	}
	var orphans []*models.Screen
	for _, s := range screens {
		if !connected[s.ID] {
			orphans = append(orphans, s)
		}
	}
	return orphans
}

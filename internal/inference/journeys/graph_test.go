package journeys

import (
	"testing"

	"github.com/ternarybob/atelier/internal/models"
)

func TestBuildGraph_ListToDetail(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_list", Name: "Products", Type: models.ScreenTypeList},
		{ID: "scr_detail", Name: "Product Detail", Type: models.ScreenTypeDetail},
	}

	edges := BuildGraph(screens)
	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d: %+v", len(edges), edges)
	}
	edge := edges[0]
	if edge.From != "scr_list" || edge.To != "scr_detail" {
		t.Errorf("Expected list->detail, got %s->%s", edge.From, edge.To)
	}
	if len(edge.Triggers) != 1 || edge.Triggers[0] != "Item selection" {
		t.Errorf("Expected item selection trigger, got %v", edge.Triggers)
	}
	// 0.5 base + 0.1 per trigger + 0.3 rule bonus
	if edge.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", edge.Confidence)
	}
}

func TestBuildGraph_LandingToLoginForm(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_home", Name: "Home", Type: models.ScreenTypeLanding},
		{ID: "scr_login", Name: "Login", Type: models.ScreenTypeForm},
	}

	edges := BuildGraph(screens)
	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d: %+v", len(edges), edges)
	}
	edge := edges[0]
	if edge.From != "scr_home" || edge.To != "scr_login" {
		t.Errorf("Expected landing->login, got %s->%s", edge.From, edge.To)
	}
	if edge.Confidence != 0.7 {
		t.Errorf("Expected confidence 0.7, got %f", edge.Confidence)
	}
}

func TestBuildGraph_ImplicitHubEdges(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_home", Name: "Home", Type: models.ScreenTypeLanding, IsHomePage: true},
		{ID: "scr_items", Name: "Items", Type: models.ScreenTypeList},
		{ID: "scr_profile", Name: "My Profile", Type: models.ScreenTypeProfile},
	}

	edges := BuildGraph(screens)
	if !hasEdge(edges, "scr_home", "scr_items") {
		t.Error("Expected a hub edge from home to the list screen")
	}
	if !hasEdge(edges, "scr_home", "scr_profile") {
		t.Error("Expected a hub edge from home to the profile screen")
	}
	for _, e := range edges {
		if e.From == "scr_home" && e.Confidence != 0.7 {
			t.Errorf("Expected hub edge confidence 0.7, got %f", e.Confidence)
		}
	}
}

func TestBuildGraph_ProfileSettingsPairing(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_profile", Name: "Profile", Type: models.ScreenTypeProfile},
		{ID: "scr_settings", Name: "Settings", Type: models.ScreenTypeSettings},
	}

	edges := BuildGraph(screens)
	if !hasEdge(edges, "scr_profile", "scr_settings") {
		t.Error("Expected profile->settings edge")
	}
	if !hasEdge(edges, "scr_settings", "scr_profile") {
		t.Error("Expected settings->profile edge")
	}
	for _, e := range edges {
		if e.From == "scr_settings" && e.To == "scr_profile" && e.Confidence != 0.8 {
			t.Errorf("Expected pairing confidence 0.8, got %f", e.Confidence)
		}
	}
}

func TestBuildGraph_ConfidenceCapped(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_signup", Name: "Signup", Type: models.ScreenTypeForm},
		{ID: "scr_done", Name: "Success Settings", Type: models.ScreenTypeSettings},
	}

	edges := BuildGraph(screens)
	for _, e := range edges {
		if e.Confidence > 1.0 {
			t.Errorf("Edge confidence exceeds 1.0: %+v", e)
		}
	}
	if !hasEdge(edges, "scr_signup", "scr_done") {
		t.Error("Expected form->success edge")
	}
}

func TestHomeScreen(t *testing.T) {
	t.Run("flagged screen wins", func(t *testing.T) {
		screens := []*models.Screen{
			{ID: "a", Type: models.ScreenTypeLanding},
			{ID: "b", Type: models.ScreenTypeList, IsHomePage: true},
		}
		if home := HomeScreen(screens); home == nil || home.ID != "b" {
			t.Errorf("Expected flagged screen b, got %+v", home)
		}
	})
	t.Run("landing fallback", func(t *testing.T) {
		screens := []*models.Screen{
			{ID: "a", Type: models.ScreenTypeList},
			{ID: "b", Type: models.ScreenTypeLanding},
		}
		if home := HomeScreen(screens); home == nil || home.ID != "b" {
			t.Errorf("Expected landing screen b, got %+v", home)
		}
	})
	t.Run("nil without candidates", func(t *testing.T) {
		screens := []*models.Screen{{ID: "a", Type: models.ScreenTypeDetail}}
		if home := HomeScreen(screens); home != nil {
			t.Errorf("Expected no home screen, got %+v", home)
		}
	})
}

package journeys

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ternarybob/atelier/internal/models"
)

func testIDSequence() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("uj_test_%d", n)
	}
}

func signupScreens() []*models.Screen {
	return []*models.Screen{
		{ID: "scr_home", Name: "Home", Type: models.ScreenTypeLanding, IsHomePage: true},
		{ID: "scr_login", Name: "Login", Type: models.ScreenTypeForm},
		{ID: "scr_items", Name: "Items", Type: models.ScreenTypeList},
	}
}

func TestGenerate_Empty(t *testing.T) {
	result := NewGenerator(testIDSequence()).Generate(nil)

	if len(result.Journeys) != 0 {
		t.Errorf("Expected no journeys, got %d", len(result.Journeys))
	}
	if result.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", result.Confidence)
	}
	if len(result.Suggestions) == 0 {
		t.Error("Expected a suggestion for an empty project")
	}
}

func TestGenerate_SignupJourney(t *testing.T) {
	result := NewGenerator(testIDSequence()).Generate(signupScreens())

	var signup *models.UserJourney
	for _, j := range result.Journeys {
		if j.Name == "New User: Sign up for an account" {
			signup = j
		}
	}
	if signup == nil {
		t.Fatalf("Expected a New User signup journey, got %+v", result.Journeys)
	}

	if signup.Priority != models.PriorityHigh {
		t.Errorf("Expected high priority for the first New User goal, got %s", signup.Priority)
	}
	if signup.Confidence != 0.8 {
		t.Errorf("Expected journey confidence 0.8, got %f", signup.Confidence)
	}
	if len(signup.Steps) < 2 {
		t.Fatalf("Expected at least 2 steps, got %d", len(signup.Steps))
	}
	if signup.Steps[0].ScreenID != "scr_home" {
		t.Errorf("Expected journey to start at the home screen, got %s", signup.Steps[0].ScreenID)
	}
	if !strings.Contains(strings.ToLower(signup.Steps[0].Action), "sign up") {
		t.Errorf("Expected a sign up action on the landing step, got %q", signup.Steps[0].Action)
	}
	if signup.Steps[1].ScreenID != "scr_login" {
		t.Errorf("Expected the walk to reach the login form, got %s", signup.Steps[1].ScreenID)
	}
	if !strings.Contains(signup.SuccessCriteria, "Sign up for an account") {
		t.Errorf("Expected success criteria to reference the goal, got %q", signup.SuccessCriteria)
	}
}

func TestGenerate_StepInvariants(t *testing.T) {
	result := NewGenerator(testIDSequence()).Generate(signupScreens())
	if len(result.Journeys) == 0 {
		t.Fatal("Expected journeys to be generated")
	}

	for _, j := range result.Journeys {
		if len(j.Steps) == 0 || len(j.Steps) > 10 {
			t.Errorf("Journey %s has %d steps", j.Name, len(j.Steps))
		}
		seen := make(map[string]bool)
		for i, step := range j.Steps {
			if step.Step != i+1 {
				t.Errorf("Journey %s step %d numbered %d", j.Name, i+1, step.Step)
			}
			if seen[step.ScreenID] {
				t.Errorf("Journey %s revisits screen %s", j.Name, step.ScreenID)
			}
			seen[step.ScreenID] = true
		}
	}
}

func TestGenerate_BatchConfidenceIsMean(t *testing.T) {
	result := NewGenerator(testIDSequence()).Generate(signupScreens())
	if len(result.Journeys) == 0 {
		t.Fatal("Expected journeys to be generated")
	}
	// Every journey carries the same fixed confidence, so the mean equals it
	if result.Confidence != 0.8 {
		t.Errorf("Expected batch confidence 0.8, got %f", result.Confidence)
	}
}

func TestGenerate_MissingHomeFlagSuggestion(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_a", Name: "Landing", Type: models.ScreenTypeLanding},
		{ID: "scr_b", Name: "Login", Type: models.ScreenTypeForm},
	}
	result := NewGenerator(testIDSequence()).Generate(screens)

	found := false
	for _, s := range result.Suggestions {
		if strings.Contains(s, "home page") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a home-page suggestion, got %v", result.Suggestions)
	}
}

func TestGenerate_OrphanScreenSuggestion(t *testing.T) {
	screens := []*models.Screen{
		{ID: "scr_home", Name: "Home", Type: models.ScreenTypeLanding, IsHomePage: true},
		{ID: "scr_items", Name: "Items", Type: models.ScreenTypeList},
		{ID: "scr_promo", Name: "Promo", Type: models.ScreenTypeLanding},
	}
	result := NewGenerator(testIDSequence()).Generate(screens)

	found := false
	for _, s := range result.Suggestions {
		if strings.Contains(s, "not connected") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an orphan-screen suggestion, got %v", result.Suggestions)
	}
}

func TestIdentifyPersonas(t *testing.T) {
	t.Run("screen types map to personas", func(t *testing.T) {
		screens := []*models.Screen{
			{ID: "a", Type: models.ScreenTypeLanding},
			{ID: "b", Type: models.ScreenTypeList},
			{ID: "c", Type: models.ScreenTypeSettings},
		}
		personas := IdentifyPersonas(screens)
		if len(personas) != 3 {
			t.Fatalf("Expected 3 personas, got %d", len(personas))
		}
		names := []string{personas[0].Name, personas[1].Name, personas[2].Name}
		want := []string{"New User", "Regular User", "Power User"}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("Persona %d: expected %s, got %s", i, want[i], names[i])
			}
		}
	})

	t.Run("detail alone implies a regular user", func(t *testing.T) {
		screens := []*models.Screen{{ID: "a", Type: models.ScreenTypeDetail}}
		personas := IdentifyPersonas(screens)
		if len(personas) != 1 || personas[0].Name != "Regular User" {
			t.Fatalf("Expected a single Regular User persona, got %+v", personas)
		}
	})

	t.Run("fallback persona carries all goals", func(t *testing.T) {
		screens := []*models.Screen{{ID: "a", Type: models.ScreenTypeProfile}}
		personas := IdentifyPersonas(screens)
		if len(personas) != 1 || personas[0].Name != "General User" {
			t.Fatalf("Expected the General User fallback, got %+v", personas)
		}
		if len(personas[0].Goals) != 9 {
			t.Errorf("Expected all 9 goals on the fallback persona, got %d", len(personas[0].Goals))
		}
	})
}

func TestGoalPriority(t *testing.T) {
	cases := []struct {
		persona string
		index   int
		want    models.JourneyPriority
	}{
		{"New User", 0, models.PriorityHigh},
		{"New User", 1, models.PriorityLow},
		{"Regular User", 0, models.PriorityHigh},
		{"Regular User", 1, models.PriorityHigh},
		{"Regular User", 2, models.PriorityLow},
		{"Power User", 0, models.PriorityMedium},
		{"Power User", 2, models.PriorityLow},
	}
	for _, tc := range cases {
		if got := goalPriority(tc.persona, tc.index); got != tc.want {
			t.Errorf("goalPriority(%s, %d) = %s, want %s", tc.persona, tc.index, got, tc.want)
		}
	}
}

package registry

import "testing"

func TestDefault_CoversCoreTypes(t *testing.T) {
	reg := Default()

	for _, componentType := range []string{"input", "button", "list", "card", "product-card", "navbar", "search"} {
		if _, ok := reg.Lookup(componentType); !ok {
			t.Errorf("Expected %s to be registered", componentType)
		}
	}
	if len(reg.Types()) < 20 {
		t.Errorf("Expected at least 20 registered types, got %d", len(reg.Types()))
	}
}

func TestCategoryOf(t *testing.T) {
	reg := Default()

	cases := map[string]Category{
		"input":    CategoryForm,
		"search":   CategoryForm,
		"button":   CategoryAction,
		"list":     CategoryList,
		"card":     CategoryCard,
		"text":     CategoryText,
		"image":    CategoryMedia,
		"navbar":   CategoryNavigation,
		"section":  CategoryLayout,
		"carousel": CategoryUnknown,
	}
	for componentType, want := range cases {
		if got := reg.CategoryOf(componentType); got != want {
			t.Errorf("CategoryOf(%s) = %s, want %s", componentType, got, want)
		}
	}
}

func TestDefaultStyles_ReturnsCopy(t *testing.T) {
	reg := Default()

	styles := reg.DefaultStyles("input")
	if styles["padding"] != "8px" {
		t.Fatalf("Expected input padding 8px, got %s", styles["padding"])
	}

	styles["padding"] = "999px"
	if again := reg.DefaultStyles("input"); again["padding"] != "8px" {
		t.Error("Mutating a returned style map must not affect the registry")
	}
}

func TestDefaultProps_ReturnsCopy(t *testing.T) {
	reg := Default()

	props := reg.DefaultProps("input")
	props["label"] = "mutated"
	if again := reg.DefaultProps("input"); again["label"] != "Label" {
		t.Error("Mutating a returned prop map must not affect the registry")
	}
}

func TestDefaultStyles_UnknownType(t *testing.T) {
	reg := Default()
	if styles := reg.DefaultStyles("carousel"); styles == nil || len(styles) != 0 {
		t.Errorf("Expected an empty map for unknown types, got %v", styles)
	}
}

func TestNew_LaterDuplicateWins(t *testing.T) {
	reg := New([]Definition{
		{Type: "widget", Category: CategoryForm},
		{Type: "widget", Category: CategoryCard},
	})
	if got := reg.CategoryOf("widget"); got != CategoryCard {
		t.Errorf("Expected later definition to win, got %s", got)
	}
}

package schema

import "testing"

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"user":     "users",
		"category": "categories",
		"box":      "boxes",
		"class":    "classes",
		"dish":     "dishes",
		"match":    "matches",
		"day":      "days",
		"":         "",
	}
	for in, want := range cases {
		if got := Pluralize(in); got != want {
			t.Errorf("Pluralize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSingularize(t *testing.T) {
	cases := map[string]string{
		"users":      "user",
		"categories": "category",
		"boxes":      "box",
		"classes":    "class",
		"dishes":     "dish",
		"class":      "class",
		"user":       "user",
	}
	for in, want := range cases {
		if got := Singularize(in); got != want {
			t.Errorf("Singularize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"First Name": "firstName",
		"first_name": "firstName",
		"Email":      "email",
		"user-id":    "userId",
		"":           "",
	}
	for in, want := range cases {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"user profile": "UserProfile",
		"product":      "Product",
		"order_item":   "OrderItem",
	}
	for in, want := range cases {
		if got := PascalCase(in); got != want {
			t.Errorf("PascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

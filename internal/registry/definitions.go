package registry

// Definitions returns the static component-type definition list.
// This is the single source of truth for component defaults.
func Definitions() []Definition {
	return []Definition{
		// Form inputs
		{
			Type:         "input",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "placeholder": ""},
			DefaultStyles: map[string]string{
				"padding":      "8px",
				"borderColor":  "#d1d5db",
				"borderRadius": "6px",
				"fontSize":     "14px",
			},
			Interactive: true,
		},
		{
			Type:         "textarea",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "rows": 4},
			DefaultStyles: map[string]string{
				"padding":      "8px",
				"borderColor":  "#d1d5db",
				"borderRadius": "6px",
				"fontSize":     "14px",
			},
			Interactive: true,
		},
		{
			Type:         "select",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "options": []interface{}{}},
			DefaultStyles: map[string]string{
				"padding":     "8px",
				"borderColor": "#d1d5db",
				"fontSize":    "14px",
			},
			Interactive: true,
		},
		{
			Type:         "checkbox",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "checked": false},
			Interactive:  true,
		},
		{
			Type:         "radio",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "options": []interface{}{}},
			Interactive:  true,
		},
		{
			Type:         "toggle",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"label": "Label", "checked": false},
			Interactive:  true,
		},

		// Actions
		{
			Type:         "button",
			Category:     CategoryAction,
			DefaultProps: map[string]interface{}{"label": "Button"},
			DefaultStyles: map[string]string{
				"backgroundColor": "#3b82f6",
				"color":           "#ffffff",
				"padding":         "8px 16px",
				"borderRadius":    "6px",
				"fontSize":        "14px",
				"fontWeight":      "500",
			},
			Interactive: true,
		},
		{
			Type:         "link",
			Category:     CategoryAction,
			DefaultProps: map[string]interface{}{"label": "Link", "href": "#"},
			DefaultStyles: map[string]string{
				"color":    "#3b82f6",
				"fontSize": "14px",
			},
			Interactive: true,
		},

		// Text
		{
			Type:         "heading",
			Category:     CategoryText,
			DefaultProps: map[string]interface{}{"text": "Heading", "level": 1},
			DefaultStyles: map[string]string{
				"fontSize":   "30px",
				"fontWeight": "700",
				"color":      "#111827",
			},
		},
		{
			Type:         "text",
			Category:     CategoryText,
			DefaultProps: map[string]interface{}{"text": "Text"},
			DefaultStyles: map[string]string{
				"fontSize": "16px",
				"color":    "#374151",
			},
		},
		{
			Type:         "label",
			Category:     CategoryText,
			DefaultProps: map[string]interface{}{"text": "Label"},
			DefaultStyles: map[string]string{
				"fontSize":   "14px",
				"fontWeight": "500",
				"color":      "#374151",
			},
		},

		// Lists
		{
			Type:         "list",
			Category:     CategoryList,
			DefaultProps: map[string]interface{}{"itemCount": 3},
			DefaultStyles: map[string]string{
				"gap": "12px",
			},
			Container: true,
		},
		{
			Type:         "grid",
			Category:     CategoryList,
			DefaultProps: map[string]interface{}{"columns": 3},
			DefaultStyles: map[string]string{
				"gap": "16px",
			},
			Container: true,
		},
		{
			Type:      "table",
			Category:  CategoryList,
			Container: true,
		},

		// Cards
		{
			Type:     "card",
			Category: CategoryCard,
			DefaultStyles: map[string]string{
				"backgroundColor": "#ffffff",
				"padding":         "16px",
				"borderRadius":    "8px",
				"borderColor":     "#e5e7eb",
			},
			Container: true,
		},
		{
			Type:         "product-card",
			Category:     CategoryCard,
			DefaultProps: map[string]interface{}{"title": "Product", "price": "0.00"},
			DefaultStyles: map[string]string{
				"backgroundColor": "#ffffff",
				"padding":         "16px",
				"borderRadius":    "8px",
			},
			Container: true,
		},
		{
			Type:         "user-card",
			Category:     CategoryCard,
			DefaultProps: map[string]interface{}{"name": "Name", "email": ""},
			DefaultStyles: map[string]string{
				"backgroundColor": "#ffffff",
				"padding":         "16px",
				"borderRadius":    "8px",
			},
			Container: true,
		},

		// Layout
		{
			Type:      "container",
			Category:  CategoryLayout,
			Container: true,
			DefaultStyles: map[string]string{
				"padding": "16px",
			},
		},
		{
			Type:      "section",
			Category:  CategoryLayout,
			Container: true,
			DefaultStyles: map[string]string{
				"padding": "24px",
			},
		},
		{
			Type:     "divider",
			Category: CategoryLayout,
			DefaultStyles: map[string]string{
				"borderColor": "#e5e7eb",
				"margin":      "16px 0",
			},
		},

		// Media
		{
			Type:         "image",
			Category:     CategoryMedia,
			DefaultProps: map[string]interface{}{"src": "", "alt": ""},
			DefaultStyles: map[string]string{
				"borderRadius": "8px",
			},
		},
		{
			Type:         "avatar",
			Category:     CategoryMedia,
			DefaultProps: map[string]interface{}{"src": "", "alt": ""},
			DefaultStyles: map[string]string{
				"borderRadius": "9999px",
			},
		},

		// Navigation
		{
			Type:      "header",
			Category:  CategoryNavigation,
			Container: true,
			DefaultStyles: map[string]string{
				"backgroundColor": "#ffffff",
				"padding":         "12px 24px",
				"borderColor":     "#e5e7eb",
			},
		},
		{
			Type:      "navbar",
			Category:  CategoryNavigation,
			Container: true,
			DefaultStyles: map[string]string{
				"backgroundColor": "#111827",
				"color":           "#ffffff",
				"padding":         "12px 24px",
			},
		},
		{
			Type:         "search",
			Category:     CategoryForm,
			DefaultProps: map[string]interface{}{"placeholder": "Search..."},
			DefaultStyles: map[string]string{
				"padding":      "8px 12px",
				"borderColor":  "#d1d5db",
				"borderRadius": "9999px",
			},
			Interactive: true,
		},
	}
}

package models

import "time"

// Position is a component's 2D location on the canvas, used only for
// proximity grouping during form inference.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component represents a single placed UI element on a screen.
// Props and Styles are open string-keyed maps at the boundary; analyzers
// narrow the specific keys they read rather than trusting the shape.
type Component struct {
	ID            string                 `json:"id"`        // cmp_{uuid}
	ScreenID      string                 `json:"screen_id"` // Every component belongs to exactly one screen
	ComponentType string                 `json:"component_type"`
	Props         map[string]interface{} `json:"props"`
	Styles        map[string]interface{} `json:"styles"`
	Children      []string               `json:"children,omitempty"` // Ordered child component ids
	ParentID      string                 `json:"parent_id,omitempty"`
	Position      Position               `json:"position"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// StringProp returns a prop narrowed to string, with ok reporting whether
// the key was present and string-typed.
func (c *Component) StringProp(key string) (string, bool) {
	if c.Props == nil {
		return "", false
	}
	v, ok := c.Props[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// BoolProp returns a prop narrowed to bool.
func (c *Component) BoolProp(key string) (bool, bool) {
	if c.Props == nil {
		return false, false
	}
	v, ok := c.Props[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// StringStyle returns a style value narrowed to string.
func (c *Component) StringStyle(key string) (string, bool) {
	if c.Styles == nil {
		return "", false
	}
	v, ok := c.Styles[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

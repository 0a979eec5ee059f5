// Package registry provides the immutable component-type lookup table.
// It is constructed once at startup from the static definition list and
// passed by reference to every consumer; it is never mutated at runtime.
package registry

// Category groups component types by the role they play in inference
type Category string

const (
	CategoryForm       Category = "form"
	CategoryList       Category = "list"
	CategoryCard       Category = "card"
	CategoryText       Category = "text"
	CategoryAction     Category = "action"
	CategoryLayout     Category = "layout"
	CategoryMedia      Category = "media"
	CategoryNavigation Category = "navigation"
	CategoryUnknown    Category = "unknown"
)

// Definition describes one component type's defaults and behavior flags
type Definition struct {
	Type          string
	Category      Category
	DefaultProps  map[string]interface{}
	DefaultStyles map[string]string
	Interactive   bool // Responds to user input
	Container     bool // May hold child components
}

// Registry is an immutable component-type lookup table
type Registry struct {
	defs map[string]Definition
}

// New builds a registry from a definition list. Later duplicates override
// earlier entries.
func New(defs []Definition) *Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		m[d.Type] = d
	}
	return &Registry{defs: m}
}

// Default returns the registry built from the built-in definition list
func Default() *Registry {
	return New(Definitions())
}

// Lookup returns the definition for a component type
func (r *Registry) Lookup(componentType string) (Definition, bool) {
	d, ok := r.defs[componentType]
	return d, ok
}

// CategoryOf returns the category for a component type, CategoryUnknown
// when the type is not registered.
func (r *Registry) CategoryOf(componentType string) Category {
	if d, ok := r.defs[componentType]; ok {
		return d.Category
	}
	return CategoryUnknown
}

// Types returns all registered component type tags
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.defs))
	for t := range r.defs {
		types = append(types, t)
	}
	return types
}

// DefaultStyles returns a copy of the default styles for a component type,
// safe for the caller to mutate.
func (r *Registry) DefaultStyles(componentType string) map[string]string {
	d, ok := r.defs[componentType]
	if !ok || d.DefaultStyles == nil {
		return map[string]string{}
	}
	styles := make(map[string]string, len(d.DefaultStyles))
	for k, v := range d.DefaultStyles {
		styles[k] = v
	}
	return styles
}

// DefaultProps returns a copy of the default props for a component type
func (r *Registry) DefaultProps(componentType string) map[string]interface{} {
	d, ok := r.defs[componentType]
	if !ok || d.DefaultProps == nil {
		return map[string]interface{}{}
	}
	props := make(map[string]interface{}, len(d.DefaultProps))
	for k, v := range d.DefaultProps {
		props[k] = v
	}
	return props
}

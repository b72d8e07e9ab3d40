package theme

import "errors"

// Registry holds loaded theme definitions and provides lookup utilities.
// Themes keep the order they were defined in, which drives cycling.
type Registry struct {
	byID map[string]*ThemeDef
	all  []ThemeDef
}

// NewRegistry creates a registry from loaded theme definitions.
func NewRegistry(themes []ThemeDef) *Registry {
	registry := &Registry{
		byID: make(map[string]*ThemeDef),
		all:  themes,
	}
	for i := range themes {
		registry.byID[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(themes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *ThemeDef {
	return r.byID[id]
}

// Default returns the first defined theme, or nil if the registry is empty.
func (r *Registry) Default() *ThemeDef {
	if len(r.all) == 0 {
		return nil
	}
	return &r.all[0]
}

// Next returns the theme after the given ID in definition order,
// wrapping around at the end. Unknown IDs resolve to the default.
func (r *Registry) Next(id string) *ThemeDef {
	for i := range r.all {
		if r.all[i].ID == id {
			return &r.all[(i+1)%len(r.all)]
		}
	}
	return r.Default()
}

// IDs returns all theme IDs in definition order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, t := range r.all {
		ids = append(ids, t.ID)
	}
	return ids
}

// All returns all theme definitions.
func (r *Registry) All() []ThemeDef {
	return r.all
}

// Count returns the number of themes in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

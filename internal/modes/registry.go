package modes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the journal modes loaded from the embedded YAML file.
// It is immutable after construction, so lookups need no locking.
type Registry struct {
	modes     map[string]ModeSpec
	order     []string
	defaultID string
}

// NewRegistry loads the embedded mode definitions.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/modes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read mode config: %w", err)
	}

	var file modeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mode config: %w", err)
	}

	if len(file.Modes) == 0 {
		return nil, fmt.Errorf("mode config defines no modes")
	}

	r := &Registry{
		modes:     make(map[string]ModeSpec, len(file.Modes)),
		defaultID: file.Default,
	}
	for _, m := range file.Modes {
		if m.ID == "" {
			return nil, fmt.Errorf("mode config contains a mode without an id")
		}
		r.modes[m.ID] = m
		r.order = append(r.order, m.ID)
	}

	if _, ok := r.modes[r.defaultID]; !ok {
		return nil, fmt.Errorf("default mode %q is not defined", r.defaultID)
	}

	return r, nil
}

// Resolve returns the spec for the given mode ID, falling back to the
// default mode when the ID is empty or unrecognized.
func (r *Registry) Resolve(id string) ModeSpec {
	if spec, ok := r.modes[id]; ok {
		return spec
	}
	return r.modes[r.defaultID]
}

// Known reports whether the given mode ID is defined.
func (r *Registry) Known(id string) bool {
	_, ok := r.modes[id]
	return ok
}

// List returns all mode specs in definition order.
func (r *Registry) List() []ModeSpec {
	specs := make([]ModeSpec, 0, len(r.order))
	for _, id := range r.order {
		specs = append(specs, r.modes[id])
	}
	return specs
}

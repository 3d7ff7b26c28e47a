// Package scenarios contains built-in demo scenarios for glint.
package scenarios

import (
	"github.com/glint-tui/glint/internal/demo"
)

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Motion,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Package profile is the per-institution specialization point. Each bank
// profile layers its own rules and checklist entries on top of the generic
// SEPA set; profiles are selected by name from a registry, so adding an
// institution never touches the schema checker or the generic rules.
package profile

import (
	"fmt"
	"sort"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	"sepalint/pkg/platform/sentinel"
)

// Profile is the capability every institution variant implements.
type Profile interface {
	// Name is the registry key profiles are selected by.
	Name() string

	// Describe returns the display title and a markdown description of the
	// profile's rule rationale.
	Describe() (title, description string)

	// Checks declares the profile's bank-level checklist entries. They are
	// merged into the generic set at session creation and stay "not
	// evaluated" until ApplyBankRules decides them.
	Checks() []validation.CheckDecl

	// ApplyBankRules evaluates the institution's rules against a parsed,
	// schema-valid document.
	ApplyBankRules(root *document.Element, sess *validation.Session)
}

// Registry maintains the registered profiles, keyed by name.
type Registry struct {
	profiles map[string]Profile
	names    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]Profile)}
}

// Register adds a profile. Registering the same name twice is a wiring bug
// and is rejected.
func (r *Registry) Register(p Profile) error {
	name := p.Name()
	if _, exists := r.profiles[name]; exists {
		return fmt.Errorf("profile %q already registered: %w", name, sentinel.ErrConflict)
	}
	r.profiles[name] = p
	r.names = append(r.names, name)
	return nil
}

// Get retrieves a profile by name.
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", name, sentinel.ErrNotFound)
	}
	return p, nil
}

// Names returns all registered profile names, sorted for stable listings.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	sort.Strings(out)
	return out
}

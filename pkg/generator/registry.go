package generator

import (
	"fmt"
	"sort"
)

// Registry maps profile names to factory functions.
// Factories hand out fresh tables so callers may edit what they get back.
var Registry = map[string]func() Profile{
	"complex":  ComplexProfile,
	"balanced": BalancedProfile,
}

// DefaultProfile is used when no profile is named
const DefaultProfile = "complex"

// Get returns a profile by name
func Get(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	factory, exists := Registry[name]
	if !exists {
		return Profile{}, fmt.Errorf("unknown profile: %s", name)
	}
	return factory(), nil
}

// List returns all registered profile names, sorted
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a profile factory
func Register(name string, factory func() Profile) {
	Registry[name] = factory
}

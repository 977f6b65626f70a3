// Package fixture bulk-registers components into an environment from a YAML
// manifest, so test suites can share one declarative service roster instead
// of repeating registration calls.
package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	telecomtest "github.com/MocaRafee/android-packages-services-Telecomm"
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// Manifest is the on-disk roster format.
type Manifest struct {
	Components []ComponentSpec `yaml:"components"`
}

// ComponentSpec declares one component to register.
type ComponentSpec struct {
	Package    string `yaml:"package"`
	Class      string `yaml:"class"`
	Action     string `yaml:"action"`
	Permission string `yaml:"permission"`
}

// EndpointFactory builds the fake endpoint registered for a component.
type EndpointFactory func(name types.ComponentName) types.Endpoint

// Seeder loads manifests into an environment.
type Seeder struct {
	env         *telecomtest.Environment
	newEndpoint EndpointFactory
}

// NewSeeder creates a seeder registering into env. factory is invoked once
// per manifest entry.
func NewSeeder(env *telecomtest.Environment, factory EndpointFactory) *Seeder {
	return &Seeder{env: env, newEndpoint: factory}
}

// SeedFile loads a manifest from path and registers its components.
// Returns the number of components registered.
func (s *Seeder) SeedFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read manifest: %w", err)
	}
	return s.Seed(data)
}

// Seed parses a manifest and registers its components in declaration order.
func (s *Seeder) Seed(data []byte) (int, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return 0, fmt.Errorf("failed to parse manifest: %w", err)
	}

	// Validate the whole roster before touching the environment, so a bad
	// manifest registers nothing.
	for i, spec := range manifest.Components {
		if spec.Package == "" || spec.Class == "" {
			return 0, fmt.Errorf("component %d missing package or class", i)
		}
		if spec.Action == "" {
			return 0, fmt.Errorf("component %d (%s/%s) missing action", i, spec.Package, spec.Class)
		}
	}

	for _, spec := range manifest.Components {
		name := types.NewComponentName(spec.Package, spec.Class)
		permission := spec.Permission
		if permission == "" {
			permission = defaultPermission(spec.Action)
		}
		s.env.RegisterService(spec.Action, name, s.newEndpoint(name), permission)
	}

	return len(manifest.Components), nil
}

// defaultPermission maps the predefined action categories to their bind
// permissions. Unknown actions get no permission tag.
func defaultPermission(action string) string {
	switch action {
	case types.ActionCallService:
		return types.PermissionBindCallService
	case types.ActionInCallUI:
		return types.PermissionBindInCallUI
	default:
		return ""
	}
}

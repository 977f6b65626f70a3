package directory

import (
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// Directory is the component registry: it maps actions to the components
// advertising them and components to their endpoints and descriptors. It is
// the single owner of those tables; the binding manager only reads them.
//
// The harness assumes single-goroutine test execution and takes no locks.
type Directory struct {
	componentsByAction map[string][]types.ComponentName
	endpointByName     map[types.ComponentName]types.Endpoint
	descriptorByName   map[types.ComponentName]types.ServiceDescriptor
	nameByEndpoint     map[types.Endpoint]types.ComponentName
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{
		componentsByAction: make(map[string][]types.ComponentName),
		endpointByName:     make(map[types.ComponentName]types.Endpoint),
		descriptorByName:   make(map[types.ComponentName]types.ServiceDescriptor),
		nameByEndpoint:     make(map[types.Endpoint]types.ComponentName),
	}
}

// Register adds name under action and records the endpoint, descriptor, and
// reverse mappings. Append semantics: registering the same name under the
// same action again adds a duplicate index entry rather than deduplicating.
func (d *Directory) Register(action string, name types.ComponentName, endpoint types.Endpoint, desc types.ServiceDescriptor) {
	d.componentsByAction[action] = append(d.componentsByAction[action], name)
	d.endpointByName[name] = endpoint
	d.descriptorByName[name] = desc
	d.nameByEndpoint[endpoint] = name
}

// Endpoint returns the endpoint registered for name.
func (d *Directory) Endpoint(name types.ComponentName) (types.Endpoint, bool) {
	ep, ok := d.endpointByName[name]
	return ep, ok
}

// Descriptor returns the descriptor recorded for name.
func (d *Directory) Descriptor(name types.ComponentName) (types.ServiceDescriptor, bool) {
	desc, ok := d.descriptorByName[name]
	return desc, ok
}

// ComponentFor recovers the identity a registered endpoint belongs to. Used
// at disconnect time, when the caller only tracked the connection.
func (d *Directory) ComponentFor(endpoint types.Endpoint) (types.ComponentName, bool) {
	name, ok := d.nameByEndpoint[endpoint]
	return name, ok
}

// ComponentsFor returns the components advertising action, in registration
// order. The returned slice is a copy; nil means nothing is registered.
func (d *Directory) ComponentsFor(action string) []types.ComponentName {
	indexed := d.componentsByAction[action]
	if len(indexed) == 0 {
		return nil
	}
	out := make([]types.ComponentName, len(indexed))
	copy(out, indexed)
	return out
}

// Size returns the number of distinct components registered.
func (d *Directory) Size() int {
	return len(d.endpointByName)
}

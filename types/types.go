package types

import "fmt"

// ComponentName identifies a registered fake service. Comparable, so it is
// used directly as a map key. Immutable once created.
type ComponentName struct {
	Package string
	Class   string
}

// NewComponentName creates a component identity from its package and class.
func NewComponentName(pkg, class string) ComponentName {
	return ComponentName{Package: pkg, Class: class}
}

// String renders the identity in "package/class" form.
func (c ComponentName) String() string {
	return fmt.Sprintf("%s/%s", c.Package, c.Class)
}

// Endpoint is an opaque handle to a fake service implementation. The harness
// holds a non-owning reference; the registering test keeps ownership.
// Endpoints are used as map keys in the reverse index, so a registered value
// must be comparable (a pointer in practice).
type Endpoint interface{}

// Connection is the caller-supplied handle for one bind lifecycle. The
// binding manager invokes both callbacks synchronously: OnServiceConnected
// before Bind returns, OnServiceDisconnected before Unbind returns.
// Connections key the session table, so implementations must be comparable
// (a pointer in practice).
type Connection interface {
	OnServiceConnected(name ComponentName, endpoint Endpoint)
	OnServiceDisconnected(name ComponentName)
}

// ServiceDescriptor carries the static metadata recorded when a component is
// registered. Immutable after registration.
type ServiceDescriptor struct {
	Permission string
	Package    string
	Class      string
}

// ResolveEntry is one discovery result: the component that advertises the
// queried action paired with its descriptor.
type ResolveEntry struct {
	Component  ComponentName
	Descriptor ServiceDescriptor
}

// Actions advertised by the two predefined service categories.
const (
	// ActionCallService discovers outbound-call-handling services.
	ActionCallService = "telecom.action.CALL_SERVICE"

	// ActionInCallUI discovers in-call UI services.
	ActionInCallUI = "telecom.action.IN_CALL_UI"
)

// Permission tags attached to the predefined categories. Carried as
// descriptor data only; nothing enforces them.
const (
	PermissionBindCallService = "permission.BIND_CALL_SERVICE"
	PermissionBindInCallUI    = "permission.BIND_IN_CALL_UI"
)

// Names resolvable through the system-service locator.
const (
	AudioService     = "audio"
	TelephonyService = "telephony"
)

package telecomtest

import (
	"os"

	"go.uber.org/zap"

	"github.com/MocaRafee/android-packages-services-Telecomm/binding"
	"github.com/MocaRafee/android-packages-services-Telecomm/config"
	"github.com/MocaRafee/android-packages-services-Telecomm/directory"
	"github.com/MocaRafee/android-packages-services-Telecomm/logging"
	"github.com/MocaRafee/android-packages-services-Telecomm/monitoring"
	"github.com/MocaRafee/android-packages-services-Telecomm/resolver"
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// Environment is the object tests hand to the system under test in place of
// the real platform context. It wires the component directory, the intent
// resolver, and the binding session manager together and stubs everything
// else the platform surface offers.
type Environment struct {
	cfg     *config.Config
	logger  *logging.Logger
	metrics *monitoring.Metrics

	dir      *directory.Directory
	resolver *resolver.Resolver
	bindings *binding.Manager

	loggerSet bool

	resources      map[int]string
	resourceLookup func(id int) (string, bool)

	systemServices map[string]interface{}
	serviceLocator func(name string) (interface{}, bool)

	broadcasts []Broadcast
	content    *ContentResolver
	filesDir   string
}

// Broadcast is one recorded sendBroadcast call. Nothing is delivered; the
// record exists so tests can assert the system under test sent it.
type Broadcast struct {
	Action     string
	Permission string
}

// Stats summarizes environment activity.
type Stats struct {
	RegisteredComponents int
	LiveSessions         int
	Broadcasts           int
}

// New creates an environment. Overrides are injected through options at
// construction time; there is no runtime monkey-patching.
func New(opts ...Option) *Environment {
	env := &Environment{
		cfg:            config.LoadOrDefault(),
		logger:         logging.NewNop(),
		metrics:        monitoring.NewMetrics(),
		dir:            directory.New(),
		resources:      make(map[int]string),
		systemServices: make(map[string]interface{}),
		content:        &ContentResolver{},
	}

	for _, opt := range opts {
		opt(env)
	}

	if env.cfg.Logging.Enabled && !env.loggerSet {
		if logger, err := logging.New(logging.Config{
			Level:       env.cfg.Logging.Level,
			Development: true,
			OutputPaths: []string{"stdout"},
		}); err == nil {
			env.logger = logger
		}
	}

	if _, ok := env.systemServices[types.AudioService]; !ok {
		env.systemServices[types.AudioService] = NewAudioManager()
	}
	if _, ok := env.systemServices[types.TelephonyService]; !ok {
		env.systemServices[types.TelephonyService] = NewTelephonyManager()
	}

	env.resolver = resolver.New(env.dir)
	env.bindings = binding.NewManager(env.dir, env.logger, env.metrics)

	return env
}

// RegisterCallService registers a fake outbound-call-handling service under
// name, advertising the call-service action with its bind permission.
func (e *Environment) RegisterCallService(name types.ComponentName, endpoint types.Endpoint) {
	e.RegisterService(types.ActionCallService, name, endpoint, types.PermissionBindCallService)
}

// RegisterInCallUI registers a fake in-call UI service under name,
// advertising the in-call action with its bind permission.
func (e *Environment) RegisterInCallUI(name types.ComponentName, endpoint types.Endpoint) {
	e.RegisterService(types.ActionInCallUI, name, endpoint, types.PermissionBindInCallUI)
}

// RegisterService registers endpoint under name for action with the given
// required permission. Registrations are permanent for the life of the
// environment; registering the same name under the same action again appends
// a duplicate discovery entry.
func (e *Environment) RegisterService(action string, name types.ComponentName, endpoint types.Endpoint, permission string) {
	desc := types.ServiceDescriptor{
		Permission: permission,
		Package:    name.Package,
		Class:      name.Class,
	}
	e.dir.Register(action, name, endpoint, desc)
	e.metrics.RegistrationsTotal.WithLabelValues(action).Inc()
	e.logger.Debug("service registered",
		zap.String("action", action),
		zap.String("component", name.String()),
	)
}

// QueryServices returns the discovery results for action, in registration
// order. flags mirrors the platform signature and does not filter.
func (e *Environment) QueryServices(action string, flags int) []types.ResolveEntry {
	e.metrics.QueriesTotal.WithLabelValues(action).Inc()
	return e.resolver.Resolve(action, flags)
}

// BindService opens a binding session for conn against target. The connect
// callback fires synchronously before BindService returns.
func (e *Environment) BindService(conn types.Connection, target types.ComponentName, flags int) error {
	return e.bindings.Bind(conn, target, flags)
}

// UnbindService closes conn's binding session. The disconnect callback fires
// synchronously before UnbindService returns.
func (e *Environment) UnbindService(conn types.Connection) error {
	return e.bindings.Unbind(conn)
}

// SystemService resolves a system-wide service by name. Audio and telephony
// resolve to their stand-ins; everything else is absent. An injected locator
// takes precedence over the built-in set.
func (e *Environment) SystemService(name string) (interface{}, bool) {
	if e.serviceLocator != nil {
		if svc, ok := e.serviceLocator(name); ok {
			return svc, true
		}
	}
	svc, ok := e.systemServices[name]
	return svc, ok
}

// AudioManager returns the audio service stand-in, or nil if it was
// replaced with a different type.
func (e *Environment) AudioManager() *AudioManager {
	am, _ := e.systemServices[types.AudioService].(*AudioManager)
	return am
}

// TelephonyManager returns the telephony service stand-in, or nil if it was
// replaced with a different type.
func (e *Environment) TelephonyManager() *TelephonyManager {
	tm, _ := e.systemServices[types.TelephonyService].(*TelephonyManager)
	return tm
}

// SetResource overrides the value returned for a resource key.
func (e *Environment) SetResource(id int, value string) {
	e.resources[id] = value
}

// Resource looks a resource value up. An injected lookup function takes
// precedence over per-test overrides.
func (e *Environment) Resource(id int) (string, bool) {
	if e.resourceLookup != nil {
		if value, ok := e.resourceLookup(id); ok {
			return value, true
		}
	}
	value, ok := e.resources[id]
	return value, ok
}

// Configuration reports the resource configuration, which carries only the
// configured locale.
func (e *Environment) Configuration() Configuration {
	return Configuration{Locale: e.cfg.Context.Locale}
}

// OpPackageName reports the package the environment claims to run as.
func (e *Environment) OpPackageName() string {
	return e.cfg.Context.OpPackage
}

// FilesDir returns a per-environment scratch directory, created on first
// use. Falls back to the system temp dir if creation fails.
func (e *Environment) FilesDir() string {
	if e.filesDir == "" {
		dir, err := os.MkdirTemp("", "telecomtest")
		if err != nil {
			dir = os.TempDir()
		}
		e.filesDir = dir
	}
	return e.filesDir
}

// RegisterReceiver accepts a broadcast receiver registration and reports no
// sticky broadcast. Receivers are never invoked: broadcasts are recorded,
// not delivered.
func (e *Environment) RegisterReceiver(receiver interface{}, actions ...string) interface{} {
	return nil
}

// SendBroadcast records a broadcast. Nothing is delivered.
func (e *Environment) SendBroadcast(action string) {
	e.broadcasts = append(e.broadcasts, Broadcast{Action: action})
}

// SendBroadcastWithPermission records a broadcast gated on a permission.
// The permission is recorded, not enforced.
func (e *Environment) SendBroadcastWithPermission(action, permission string) {
	e.broadcasts = append(e.broadcasts, Broadcast{Action: action, Permission: permission})
}

// Broadcasts returns every broadcast sent so far, in order.
func (e *Environment) Broadcasts() []Broadcast {
	out := make([]Broadcast, len(e.broadcasts))
	copy(out, e.broadcasts)
	return out
}

// ContentResolver returns the content resolution stub.
func (e *Environment) ContentResolver() *ContentResolver {
	return e.content
}

// Metrics exposes the activity metrics for assertion.
func (e *Environment) Metrics() *monitoring.Metrics {
	return e.metrics
}

// Stats summarizes current environment activity.
func (e *Environment) Stats() Stats {
	return Stats{
		RegisteredComponents: e.dir.Size(),
		LiveSessions:         e.bindings.SessionCount(),
		Broadcasts:           len(e.broadcasts),
	}
}

// Package types defines the shared data model for the test host environment.
//
// The model mirrors the handful of platform concepts the harness simulates:
//   - ComponentName: opaque identity of a registered fake service
//   - Endpoint: handle to the fake service implementation
//   - Connection: caller-side handle driving the bind lifecycle
//   - ServiceDescriptor: static metadata attached at registration
//   - ResolveEntry: one discovery result produced by an action query
package types

// Package directory implements the component directory for the test host
// environment: a bidirectional mapping between component identities and
// registered service endpoints, plus the per-action index discovery queries
// read from.
//
// Ownership:
//   - the directory exclusively owns the action index and identity maps
//   - the binding manager reads the directory, never mutates it
//
// Registrations are permanent for the life of a test instance; there is no
// unregister.
package directory

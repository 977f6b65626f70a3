// Package binding enforces the bind/unbind protocol of the test host
// environment.
//
// Per connection the state machine is Unbound -> Bound -> Unbound. A
// connection binds at most once at a time and unbinds only an existing
// session. Both notifications run synchronously inside Bind/Unbind, so a
// test observes a total, deterministic ordering: connect strictly precedes
// the bind call returning, disconnect strictly precedes the unbind call
// returning.
//
// Every failure is a setup or logic error in the caller; there are no
// transient conditions and nothing is retried. A failed operation mutates
// nothing and fires no callback.
package binding

package binding

import "fmt"

// DuplicateBindingError reports a Bind on a connection that already has a
// live session. The existing session is left untouched.
type DuplicateBindingError struct {
	Bound string // identity the connection is already bound to
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("connection already bound: %s", e.Bound)
}

// UnknownServiceError reports a Bind targeting an identity with no
// registered endpoint. Almost always missing test setup.
type UnknownServiceError struct {
	Component string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("service not found: %s", e.Component)
}

// NoSuchBindingError reports an Unbind on a connection with no session.
type NoSuchBindingError struct{}

func (e *NoSuchBindingError) Error() string {
	return "connection not bound"
}

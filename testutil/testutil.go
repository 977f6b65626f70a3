// Package testutil provides connection doubles and factories shared by the
// harness's own tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// EventKind distinguishes the two connection callbacks.
type EventKind string

const (
	EventConnected    EventKind = "connected"
	EventDisconnected EventKind = "disconnected"
)

// Event is one observed connection callback.
type Event struct {
	Kind      EventKind
	Component types.ComponentName
	Endpoint  types.Endpoint // nil for disconnects
}

// RecordingConnection implements types.Connection and records every
// callback in arrival order, so tests can assert the connect/disconnect
// protocol.
type RecordingConnection struct {
	events []Event
}

// NewRecordingConnection creates an empty recording connection.
func NewRecordingConnection() *RecordingConnection {
	return &RecordingConnection{}
}

// OnServiceConnected records the connect callback.
func (c *RecordingConnection) OnServiceConnected(name types.ComponentName, endpoint types.Endpoint) {
	c.events = append(c.events, Event{Kind: EventConnected, Component: name, Endpoint: endpoint})
}

// OnServiceDisconnected records the disconnect callback.
func (c *RecordingConnection) OnServiceDisconnected(name types.ComponentName) {
	c.events = append(c.events, Event{Kind: EventDisconnected, Component: name})
}

// Events returns every recorded callback in order.
func (c *RecordingConnection) Events() []Event {
	return c.events
}

// MockConnection is a testify mock implementation of types.Connection for
// expectation-style tests.
type MockConnection struct {
	mock.Mock
}

// OnServiceConnected mocks the connect callback.
func (m *MockConnection) OnServiceConnected(name types.ComponentName, endpoint types.Endpoint) {
	m.Called(name, endpoint)
}

// OnServiceDisconnected mocks the disconnect callback.
func (m *MockConnection) OnServiceDisconnected(name types.ComponentName) {
	m.Called(name)
}

// FakeEndpoint is a comparable stand-in for a registered fake service.
type FakeEndpoint struct {
	Name string
}

// NewFakeEndpoint creates an endpoint labeled for debugging.
func NewFakeEndpoint(name string) *FakeEndpoint {
	return &FakeEndpoint{Name: name}
}

// CreateTestComponent creates a component identity with conventional test
// naming.
func CreateTestComponent(t *testing.T, class string) types.ComponentName {
	t.Helper()
	return types.NewComponentName("com.example.test", class)
}

// CreateTestDescriptor creates the descriptor Register would attach for
// name under the given permission.
func CreateTestDescriptor(t *testing.T, name types.ComponentName, permission string) types.ServiceDescriptor {
	t.Helper()
	return types.ServiceDescriptor{
		Permission: permission,
		Package:    name.Package,
		Class:      name.Class,
	}
}

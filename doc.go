// Package telecomtest simulates the operating-system host environment a
// telephony/call-management service runs inside, for use in unit tests.
//
// A test creates one Environment, registers fake services under component
// identities, and hands the environment to the system under test. The
// environment then answers discovery queries, drives the bind/unbind
// lifecycle with synchronous connect/disconnect callbacks, and stubs the
// remaining platform surface (system services, resources, broadcasts,
// content resolution).
//
// Example:
//
//	env := telecomtest.New()
//	name := types.NewComponentName("com.example.calls", "CallServiceImpl")
//	env.RegisterCallService(name, fakeService)
//
//	entries := env.QueryServices(types.ActionCallService, 0)
//	err := env.BindService(conn, name, 0)
//	err = env.UnbindService(conn)
//
// All state is in memory, rebuilt per Environment and discarded at test
// teardown. Operations run synchronously on the caller's goroutine; the
// harness applies no locking and assumes single-threaded test execution.
package telecomtest

package binding

import (
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MocaRafee/android-packages-services-Telecomm/directory"
	"github.com/MocaRafee/android-packages-services-Telecomm/monitoring"
	"github.com/MocaRafee/android-packages-services-Telecomm/testutil"
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

type fakeService struct {
	label string
}

func newTestManager(t *testing.T) (*Manager, *directory.Directory) {
	t.Helper()
	dir := directory.New()
	return NewManager(dir, nil, monitoring.NewMetrics()), dir
}

func registerFake(t *testing.T, dir *directory.Directory, class string) (types.ComponentName, *fakeService) {
	t.Helper()
	name := types.NewComponentName("com.example.test", class)
	endpoint := &fakeService{label: class}
	dir.Register(types.ActionCallService, name, endpoint, types.ServiceDescriptor{
		Permission: types.PermissionBindCallService,
		Package:    name.Package,
		Class:      name.Class,
	})
	return name, endpoint
}

func TestBindCreatesSessionAndSignalsConnect(t *testing.T) {
	mgr, dir := newTestManager(t)
	name, endpoint := registerFake(t, dir, "CallSvc")
	conn := testutil.NewRecordingConnection()

	require.NoError(t, mgr.Bind(conn, name, 0))

	events := conn.Events()
	require.Len(t, events, 1)
	assert.Equal(t, testutil.EventConnected, events[0].Kind)
	assert.Equal(t, name, events[0].Component)
	assert.Same(t, endpoint, events[0].Endpoint)

	session, ok := mgr.Session(conn)
	require.True(t, ok)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, name, session.Component)
	assert.Same(t, endpoint, session.Endpoint)
	assert.False(t, session.BoundAt.IsZero())
	assert.Equal(t, 1, mgr.SessionCount())
}

func TestBindDuplicateConnectionFails(t *testing.T) {
	mgr, dir := newTestManager(t)
	first, _ := registerFake(t, dir, "First")
	second, _ := registerFake(t, dir, "Second")
	conn := testutil.NewRecordingConnection()

	require.NoError(t, mgr.Bind(conn, first, 0))
	original, _ := mgr.Session(conn)

	err := mgr.Bind(conn, second, 0)
	var dup *DuplicateBindingError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.String(), dup.Bound)

	// The existing session is untouched and no second connect fired.
	session, ok := mgr.Session(conn)
	require.True(t, ok)
	assert.Equal(t, original.ID, session.ID)
	assert.Equal(t, first, session.Component)
	assert.Len(t, conn.Events(), 1)
}

func TestBindUnknownServiceFails(t *testing.T) {
	mgr, _ := newTestManager(t)
	conn := testutil.NewRecordingConnection()
	missing := types.NewComponentName("com.example.test", "NeverRegistered")

	err := mgr.Bind(conn, missing, 0)

	var unknown *UnknownServiceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, missing.String(), unknown.Component)
	assert.Empty(t, conn.Events())
	assert.Equal(t, 0, mgr.SessionCount())
}

func TestUnbindClosesSessionAndSignalsDisconnect(t *testing.T) {
	mgr, dir := newTestManager(t)
	name, _ := registerFake(t, dir, "CallSvc")
	conn := testutil.NewRecordingConnection()
	require.NoError(t, mgr.Bind(conn, name, 0))

	require.NoError(t, mgr.Unbind(conn))

	events := conn.Events()
	require.Len(t, events, 2)
	assert.Equal(t, testutil.EventConnected, events[0].Kind)
	assert.Equal(t, testutil.EventDisconnected, events[1].Kind)
	assert.Equal(t, name, events[1].Component)
	assert.Equal(t, 0, mgr.SessionCount())

	_, ok := mgr.Session(conn)
	assert.False(t, ok)
}

func TestUnbindWithoutSessionFails(t *testing.T) {
	mgr, _ := newTestManager(t)
	conn := testutil.NewRecordingConnection()

	err := mgr.Unbind(conn)

	var missing *NoSuchBindingError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, conn.Events())
}

func TestRebindAfterUnbind(t *testing.T) {
	mgr, dir := newTestManager(t)
	name, _ := registerFake(t, dir, "CallSvc")
	conn := testutil.NewRecordingConnection()

	require.NoError(t, mgr.Bind(conn, name, 0))
	require.NoError(t, mgr.Unbind(conn))
	require.NoError(t, mgr.Bind(conn, name, 0))

	assert.Equal(t, 1, mgr.SessionCount())
	require.Len(t, conn.Events(), 3)
	assert.Equal(t, testutil.EventConnected, conn.Events()[2].Kind)
}

func TestIndependentConnectionsBindSameService(t *testing.T) {
	mgr, dir := newTestManager(t)
	name, endpoint := registerFake(t, dir, "Shared")
	connA := testutil.NewRecordingConnection()
	connB := testutil.NewRecordingConnection()

	require.NoError(t, mgr.Bind(connA, name, 0))
	require.NoError(t, mgr.Bind(connB, name, 0))
	assert.Equal(t, 2, mgr.SessionCount())

	require.NoError(t, mgr.Unbind(connA))
	assert.Equal(t, 1, mgr.SessionCount())

	// connB is unaffected by connA's unbind.
	session, ok := mgr.Session(connB)
	require.True(t, ok)
	assert.Same(t, endpoint, session.Endpoint)
	assert.Len(t, connB.Events(), 1)
}

func TestMockConnectionExpectations(t *testing.T) {
	mgr, dir := newTestManager(t)
	name, endpoint := registerFake(t, dir, "Mocked")

	conn := new(testutil.MockConnection)
	conn.On("OnServiceConnected", name, endpoint).Once()
	conn.On("OnServiceDisconnected", name).Once()

	require.NoError(t, mgr.Bind(conn, name, 0))
	require.NoError(t, mgr.Unbind(conn))

	conn.AssertExpectations(t)
}

func TestBindingMetrics(t *testing.T) {
	dir := directory.New()
	metrics := monitoring.NewMetrics()
	mgr := NewManager(dir, nil, metrics)
	name, _ := registerFake(t, dir, "Metered")
	conn := testutil.NewRecordingConnection()

	require.NoError(t, mgr.Bind(conn, name, 0))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.BindsTotal))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.SessionsActive))

	_ = mgr.Bind(conn, name, 0)
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.BindErrors.WithLabelValues("duplicate")))

	require.NoError(t, mgr.Unbind(conn))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.UnbindsTotal))
	assert.Equal(t, 0.0, promtest.ToFloat64(metrics.SessionsActive))

	_ = mgr.Unbind(conn)
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.UnbindErrors.WithLabelValues("no_session")))
}

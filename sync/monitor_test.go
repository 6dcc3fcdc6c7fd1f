// ABOUTME: Tests for the connectivity monitor's edge-triggered sync behavior
package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitorTriggersOnlyOnOfflineToOnlineEdge(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)

	var changes []bool
	monitor := NewMonitor(engine, func(online bool) { changes = append(changes, online) })
	ctx := context.Background()

	require.False(t, monitor.Online())

	monitor.SetOnline(ctx, true)
	require.True(t, monitor.Online())
	require.Equal(t, 1, remote.readyCalls)

	// Same state again: no edge, no trigger, no indicator call
	monitor.SetOnline(ctx, true)
	require.Equal(t, 1, remote.readyCalls)

	monitor.SetOnline(ctx, false)
	require.False(t, monitor.Online())
	require.Equal(t, 1, remote.readyCalls)

	monitor.SetOnline(ctx, true)
	require.Equal(t, 2, remote.readyCalls)

	require.Equal(t, []bool{true, false, true}, changes)
}

func TestMonitorOfflineTransitionDoesNotTrigger(t *testing.T) {
	store := openTestStore(t)
	remote := newFakeRemote()
	engine := New(store, remote, nil)
	monitor := NewMonitor(engine, nil)
	ctx := context.Background()

	monitor.SetOnline(ctx, false)
	require.Equal(t, 0, remote.readyCalls)
	require.False(t, monitor.Online())
}

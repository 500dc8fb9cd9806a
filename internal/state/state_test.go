package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreStartsIdle(t *testing.T) {
	store := NewStore()
	assert.Equal(t, IDLE, store.Snapshot().Phase)
	assert.Equal(t, "idle", store.Snapshot().Phase.String())
}

func TestTerminateKeepsCount(t *testing.T) {
	store := NewStore()
	store.SetPhase(COUNTING)
	store.UpdateTick(TickInfo{Direction: "down", Count: 2, Line: "Blast off in 2..."})

	store.Terminate("Launch aborted!")

	snap := store.Snapshot()
	assert.Equal(t, TERMINATING, snap.Phase)
	assert.Equal(t, 2, snap.Tick.Count)
	assert.Equal(t, "down", snap.Tick.Direction)
	assert.Equal(t, "Launch aborted!", snap.Tick.Line)
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.UpdateServer(ServerInfo{Addr: ":8080", URL: "http://127.0.0.1:8080"})

	snap := store.Snapshot()
	snap.Server.URL = "changed"

	assert.Equal(t, "http://127.0.0.1:8080", store.Snapshot().Server.URL)
}

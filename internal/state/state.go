package state

import "sync"

type Phase int

const (
	IDLE Phase = iota
	COUNTING
	SERVING
	TERMINATING
)

func (p Phase) String() string {
	switch p {
	case IDLE:
		return "idle"
	case COUNTING:
		return "counting"
	case SERVING:
		return "serving"
	case TERMINATING:
		return "terminating"
	default:
		return "unknown"
	}
}

type TickInfo struct {
	Direction string
	Count     int
	Line      string
}

type ServerInfo struct {
	Addr string
	URL  string
}

type State struct {
	Phase  Phase
	Tick   TickInfo
	Server ServerInfo
}

// Store holds the latest snapshot published by the timer loop and the server.
// Readers (displays) never mutate it.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) UpdateTick(tick TickInfo) {
	store.mu.Lock()
	store.state.Tick = tick
	store.mu.Unlock()
}

// Terminate moves to TERMINATING and records the final line in one step.
func (store *Store) Terminate(line string) {
	store.mu.Lock()
	store.state.Phase = TERMINATING
	store.state.Tick.Line = line
	store.mu.Unlock()
}

func (store *Store) UpdateServer(server ServerInfo) {
	store.mu.Lock()
	store.state.Server = server
	store.mu.Unlock()
}

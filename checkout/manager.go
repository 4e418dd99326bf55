package checkout

import (
	"sync"
	"time"

	"github.com/YannikAckermann/Vintage-Store/cart"
)

// CloseGracePeriod delays the step reset after the cart panel closes, so a
// close mid-flow does not visibly snap the panel back to the cart view
// while it is still animating out.
const CloseGracePeriod = 300 * time.Millisecond

// Manager scopes one machine per session, mirroring the cart manager. A
// machine lives from panel-open until confirmation or close.
type Manager struct {
	mu       sync.Mutex
	machines map[string]*Machine

	delay    time.Duration
	schedule func(time.Duration, func())
	complete func(sessionID string, s Summary)
}

// NewManager wires the shared machine collaborators. schedule defaults to
// time.AfterFunc; complete may be nil.
func NewManager(delay time.Duration, schedule func(time.Duration, func()), complete func(string, Summary)) *Manager {
	if schedule == nil {
		schedule = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Manager{
		machines: make(map[string]*Machine),
		delay:    delay,
		schedule: schedule,
		complete: complete,
	}
}

// Get returns the session's machine, creating a fresh one at the cart step
// if none is active.
func (m *Manager) Get(sessionID string, store *cart.Store) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mach, ok := m.machines[sessionID]; ok {
		return mach
	}
	mach := NewMachine(store, Config{
		ProcessingDelay: m.delay,
		Schedule:        m.schedule,
		OnComplete: func(s Summary) {
			if m.complete != nil {
				m.complete(sessionID, s)
			}
		},
	})
	m.machines[sessionID] = mach
	return mach
}

// ScheduleReset discards the session's machine after the close grace
// period. A machine mid-payment is left alone; it resets on the next close
// once the order has completed.
func (m *Manager) ScheduleReset(sessionID string) {
	m.schedule(CloseGracePeriod, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if mach, ok := m.machines[sessionID]; ok && !mach.Processing() {
			delete(m.machines, sessionID)
		}
	})
}

package cart

import "sync"

// snapshotKeyPrefix namespaces the storage slots; the suffix is the session
// id. The prefix is kept from the storefront's original storage key.
const snapshotKeyPrefix = "retrobloom-cart:"

// Manager hands out one Store per session, constructing and rehydrating it
// on first use. Stores live for the process lifetime; durability across
// restarts comes from the snapshot slots.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	storage  Storage
	notifier Notifier
}

func NewManager(storage Storage, notifier Notifier) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		storage:  storage,
		notifier: notifier,
	}
}

// Get returns the session's store, creating it from the snapshot slot if
// this is the first touch since startup.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := NewStore(snapshotKeyPrefix+sessionID, m.storage, m.notifier)
	m.stores[sessionID] = s
	return s
}

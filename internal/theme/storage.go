package theme

import "sync"

// Storage is a per-visitor key/value store, the server-side counterpart of
// the browser's local storage.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Event is a storage-change notification.
type Event struct {
	Key      string `json:"key"`
	NewValue string `json:"newValue"`
	// Origin is the tab that performed the write. It does not receive its
	// own event.
	Origin string `json:"origin,omitempty"`
}

// MemoryStorage is a Storage kept in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// NotifyingStorage publishes an Event on the hub after every successful
// write, which is what lets other tabs of the same visitor follow along.
type NotifyingStorage struct {
	Storage
	Hub     *Hub
	Visitor string
	Tab     string
}

func (n *NotifyingStorage) Set(key, value string) error {
	if err := n.Storage.Set(key, value); err != nil {
		return err
	}
	n.Hub.Publish(n.Visitor, Event{Key: key, NewValue: value, Origin: n.Tab})
	return nil
}

package theme

import "sync"

type subscriber struct {
	tab string
	fn  func(Event)
}

// Hub fans storage events out to every open tab of a visitor. Delivery is
// best-effort: a tab that is not subscribed at publish time misses the event
// and picks up the stored value on its next page load.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]subscriber)}
}

// Subscribe registers fn for events of visitor, except those written by tab
// itself. The returned func must be called when the tab goes away.
func (h *Hub) Subscribe(visitor, tab string, fn func(Event)) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	if h.subs[visitor] == nil {
		h.subs[visitor] = make(map[int]subscriber)
	}
	h.subs[visitor][id] = subscriber{tab: tab, fn: fn}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[visitor], id)
		if len(h.subs[visitor]) == 0 {
			delete(h.subs, visitor)
		}
	}
}

// Publish delivers ev to the visitor's other tabs. Callbacks run on the
// caller's goroutine after the hub lock is released.
func (h *Hub) Publish(visitor string, ev Event) {
	h.mu.Lock()
	var targets []func(Event)
	for _, s := range h.subs[visitor] {
		if ev.Origin != "" && s.tab == ev.Origin {
			continue
		}
		targets = append(targets, s.fn)
	}
	h.mu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
}

// tabs returns how many tabs of visitor are subscribed.
func (h *Hub) tabs(visitor string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[visitor])
}

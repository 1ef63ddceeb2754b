package scrollspy

import "sync"

// Tracker holds the active section for one page view.
//
// Initialization happens in two phases. Estimate gives an immediate answer
// from absolute offsets; Observe is the authoritative measurement once layout
// has settled. After the first Observe call, Estimate is ignored.
type Tracker struct {
	mu       sync.Mutex
	sections []Section
	active   string
	ready    bool
	nextSub  int
	subs     map[int]func(string)
}

// NewTracker creates a tracker for the given sections, in page order.
func NewTracker(sections []Section) *Tracker {
	return &Tracker{
		sections: append([]Section(nil), sections...),
		subs:     make(map[int]func(string)),
	}
}

// Sections returns the registered sections.
func (t *Tracker) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

// Active returns the active section id, empty before any estimate or
// measurement.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Ready reports whether an authoritative measurement has arrived.
func (t *Tracker) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}

// Estimate applies the synchronous offset-based fallback.
func (t *Tracker) Estimate(offsets map[string]Rect, scrollY, viewportHeight float64) string {
	t.mu.Lock()
	if t.ready {
		active := t.active
		t.mu.Unlock()
		return active
	}
	next := Estimate(t.sections, offsets, scrollY, viewportHeight)
	if next == "" {
		next = t.active
	}
	return t.set(next)
}

// Observe feeds a visibility snapshot through Reduce. The first call marks
// the tracker ready; if nothing has ever been visible the first section
// becomes active so that exactly one section is always active from then on.
func (t *Tracker) Observe(snap Snapshot) string {
	t.mu.Lock()
	t.ready = true
	next := Reduce(t.active, t.sections, snap)
	if next == "" && len(t.sections) > 0 {
		next = t.sections[0].ID
	}
	return t.set(next)
}

// set must be called with t.mu held; it unlocks before notifying.
func (t *Tracker) set(next string) string {
	changed := next != t.active
	t.active = next
	var subs []func(string)
	if changed {
		subs = make([]func(string), 0, len(t.subs))
		for _, fn := range t.subs {
			subs = append(subs, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to be called whenever the active id changes.
// Call the returned func when the owning view goes away.
func (t *Tracker) Subscribe(fn func(active string)) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// Close drops every subscriber.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = make(map[int]func(string))
}

// Package theme tracks the light/dark preference of a visitor and keeps
// their open tabs in agreement.
package theme

import (
	"log"
	"sync"
)

const (
	// StorageKey is the preference key shared by every tab.
	StorageKey = "theme"

	Dark  = "dark"
	Light = "light"

	// DarkClass is the document-level marker for dark mode.
	DarkClass = "dark"
)

// ClassList is the document root's class set.
type ClassList interface {
	Add(class string)
	Remove(class string)
}

// Theme is one tab's view of the preference.
type Theme struct {
	mu      sync.Mutex
	dark    bool
	storage Storage
	nextSub int
	subs    map[int]func(dark bool)
}

// New reads the stored preference. A missing key means dark, as does
// "dark"; any other stored value means light. If storage cannot be read the
// theme starts dark and lives in memory only.
func New(storage Storage) *Theme {
	t := &Theme{dark: true, storage: storage, subs: make(map[int]func(bool))}
	if storage == nil {
		return t
	}

	v, ok, err := storage.Get(StorageKey)
	if err != nil {
		log.Printf("theme: storage unavailable, keeping preference in memory: %v", err)
		t.storage = nil
		return t
	}
	t.dark = !ok || v == Dark
	return t
}

// IsDark reports the current preference.
func (t *Theme) IsDark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Value is the stored form of the preference.
func (t *Theme) Value() string {
	if t.IsDark() {
		return Dark
	}
	return Light
}

// Toggle flips the preference and persists it. A failed write switches the
// theme to memory-only for the rest of its life.
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	t.dark = !t.dark
	dark := t.dark
	storage := t.storage
	t.mu.Unlock()

	if storage != nil {
		if err := storage.Set(StorageKey, valueOf(dark)); err != nil {
			log.Printf("theme: could not persist preference: %v", err)
			t.mu.Lock()
			t.storage = nil
			t.mu.Unlock()
		}
	}
	t.notify(dark)
	return dark
}

// HandleStorageEvent applies a change made by another tab. Only the theme
// key with a known value is honored.
func (t *Theme) HandleStorageEvent(ev Event) {
	if ev.Key != StorageKey {
		return
	}
	var dark bool
	switch ev.NewValue {
	case Dark:
		dark = true
	case Light:
		dark = false
	default:
		return
	}

	t.mu.Lock()
	changed := t.dark != dark
	t.dark = dark
	t.mu.Unlock()

	if changed {
		t.notify(dark)
	}
}

// Apply sets or clears the dark marker on the document.
func (t *Theme) Apply(doc ClassList) {
	if t.IsDark() {
		doc.Add(DarkClass)
	} else {
		doc.Remove(DarkClass)
	}
}

// Subscribe calls fn after every change of preference.
func (t *Theme) Subscribe(fn func(dark bool)) (unsubscribe func()) {
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

func (t *Theme) notify(dark bool) {
	t.mu.Lock()
	subs := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(dark)
	}
}

// Icon names the toggle's icon.
func (t *Theme) Icon() string {
	if t.IsDark() {
		return "moon"
	}
	return "sun"
}

// ToggleLabel is the accessible label of the toggle button.
func (t *Theme) ToggleLabel() string {
	if t.IsDark() {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

func valueOf(dark bool) string {
	if dark {
		return Dark
	}
	return Light
}

// Classes is a plain ClassList used when rendering the document root.
type Classes map[string]bool

func (c Classes) Add(class string) { c[class] = true }
func (c Classes) Remove(class string) { delete(c, class) }
func (c Classes) Has(class string) bool { return c[class] }

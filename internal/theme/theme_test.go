package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStorage struct {
	getErr, setErr error
	sets           int
}

func (b *brokenStorage) Get(string) (string, bool, error) { return "", false, b.getErr }

func (b *brokenStorage) Set(string, string) error {
	b.sets++
	return b.setErr
}

func TestNewReadsStoredValue(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		set    bool
		dark   bool
	}{
		{"absent defaults to dark", "", false, true},
		{"dark", Dark, true, true},
		{"light", Light, true, false},
		{"unknown value is light", "sepia", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStorage()
			if tt.set {
				require.NoError(t, s.Set(StorageKey, tt.stored))
			}
			assert.Equal(t, tt.dark, New(s).IsDark())
		})
	}
}

func TestToggleInvolution(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.Set(StorageKey, Light))
	th := New(s)
	doc := Classes{}
	th.Apply(doc)
	require.False(t, doc.Has(DarkClass))

	th.Toggle()
	th.Apply(doc)
	assert.True(t, doc.Has(DarkClass))
	v, _, _ := s.Get(StorageKey)
	assert.Equal(t, Dark, v)

	th.Toggle()
	th.Apply(doc)
	assert.False(t, doc.Has(DarkClass))
	v, _, _ = s.Get(StorageKey)
	assert.Equal(t, Light, v)
}

func TestStorageEventFromOtherTab(t *testing.T) {
	hub := NewHub()
	shared := NewMemoryStorage()

	first := New(&NotifyingStorage{Storage: shared, Hub: hub, Visitor: "v1", Tab: "tab-1"})
	unsubscribe := hub.Subscribe("v1", "tab-1", first.HandleStorageEvent)
	defer unsubscribe()
	require.True(t, first.IsDark())

	var icons []string
	first.Subscribe(func(bool) { icons = append(icons, first.Icon()) })

	second := &NotifyingStorage{Storage: shared, Hub: hub, Visitor: "v1", Tab: "tab-2"}
	require.NoError(t, second.Set(StorageKey, Light))

	assert.False(t, first.IsDark())
	assert.Equal(t, []string{"sun"}, icons)
}

func TestHandleStorageEventIgnoresOtherKeys(t *testing.T) {
	th := New(NewMemoryStorage())

	th.HandleStorageEvent(Event{Key: "lang", NewValue: Light})
	assert.True(t, th.IsDark())

	th.HandleStorageEvent(Event{Key: StorageKey, NewValue: "sepia"})
	assert.True(t, th.IsDark())

	th.HandleStorageEvent(Event{Key: StorageKey, NewValue: Light})
	assert.False(t, th.IsDark())
	th.HandleStorageEvent(Event{Key: StorageKey, NewValue: Dark})
	assert.True(t, th.IsDark())
}

func TestHubSkipsOriginAndOtherVisitors(t *testing.T) {
	hub := NewHub()
	var got []string
	record := func(name string) func(Event) {
		return func(Event) { got = append(got, name) }
	}

	unsubA := hub.Subscribe("v1", "a", record("a"))
	hub.Subscribe("v1", "b", record("b"))
	hub.Subscribe("v2", "c", record("c"))

	hub.Publish("v1", Event{Key: StorageKey, NewValue: Dark, Origin: "a"})
	assert.Equal(t, []string{"b"}, got)

	unsubA()
	assert.Equal(t, 1, hub.tabs("v1"))
}

func TestStorageUnavailableDegradesToMemory(t *testing.T) {
	th := New(&brokenStorage{getErr: errors.New("disk gone")})
	assert.True(t, th.IsDark())
	assert.False(t, th.Toggle())
	assert.True(t, th.Toggle())

	broken := &brokenStorage{setErr: errors.New("quota")}
	th = New(broken)
	assert.False(t, th.Toggle())
	assert.True(t, th.Toggle())
	assert.Equal(t, 1, broken.sets, "writes stop after the first failure")
}

func TestLabels(t *testing.T) {
	th := New(nil)
	assert.Equal(t, "moon", th.Icon())
	assert.Equal(t, "Switch to light mode", th.ToggleLabel())
	th.Toggle()
	assert.Equal(t, Light, th.Value())
	assert.Equal(t, "Switch to dark mode", th.ToggleLabel())
}

//go:build js && wasm

// Command spy drives the side navigation of long pages in the browser. It
// measures section geometry, feeds the scrollspy tracker and re-renders the
// navigation when the active section changes. It also gives the page's
// dialogs their keyboard behavior.
//
// Build with: GOOS=js GOARCH=wasm go build -o assets/spy.wasm ./wasm/spy
package main

import (
	"encoding/json"
	"strconv"
	"syscall/js"

	"github.com/sophiafu/portfolio/internal/scrollspy"
	"github.com/sophiafu/portfolio/internal/selection"
)

type driver struct {
	window js.Value
	doc    js.Value
	nav    js.Value
	list   js.Value
	top    js.Value
	settle int

	tracker *scrollspy.Tracker
	model   *scrollspy.Nav
	focus   scrollspy.Focus
	entries []scrollspy.Entry

	running   bool
	pending   map[int]timer
	nextID    int
	listeners []listener
	framed    bool
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// timer is a scheduled one-shot callback and the call that cancels it.
type timer struct {
	fn     js.Func
	cancel string
	handle js.Value
}

func main() {
	doc := js.Global().Get("document")
	nav := doc.Call("querySelector", ".spy-nav")
	if nav.IsNull() {
		return
	}

	var sections []scrollspy.Section
	if err := json.Unmarshal([]byte(nav.Get("dataset").Get("sections").String()), &sections); err != nil {
		warn("scroll spy: bad section list:", err.Error())
		return
	}
	labels := map[string]string{}
	if raw := nav.Get("dataset").Get("groups"); raw.Truthy() {
		_ = json.Unmarshal([]byte(raw.String()), &labels)
	}
	settle, err := strconv.Atoi(nav.Get("dataset").Get("settleMs").String())
	if err != nil {
		settle = 100
	}

	d := &driver{
		window:  js.Global(),
		doc:     doc,
		nav:     nav,
		list:    nav.Call("querySelector", "ul"),
		top:     doc.Call("querySelector", ".back-to-top"),
		settle:  settle,
		tracker: scrollspy.NewTracker(sections),
		model:   scrollspy.NewNav(sections, labels),
		pending: make(map[int]timer),
	}
	d.start()

	// pagehide tears everything down; a page restored from the back/forward
	// cache gets a fresh start.
	pageshow := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() && !d.running {
			d.start()
		}
		return nil
	})
	d.window.Call("addEventListener", "pageshow", pageshow)

	select {}
}

func (d *driver) start() {
	d.running = true
	d.tracker.Subscribe(d.render)

	if d.tracker.Ready() {
		d.render(d.tracker.Active())
	} else {
		// Layout may still be moving, so the first pick comes from document
		// offsets and is replaced once visibility measurement takes over.
		d.render(d.tracker.Estimate(d.offsets(), d.scrollY(), d.viewportHeight()))
	}

	d.on(d.nav, "click", d.onClick)
	d.on(d.nav, "keydown", d.onNavKey)
	d.on(d.doc, "keydown", d.onDocKey)
	d.on(d.window, "pagehide", func(js.Value) { d.stop() })

	d.after("setTimeout", "clearTimeout", func() {
		d.measure()
		d.on(d.window, "scroll", func(js.Value) { d.schedule() })
		d.on(d.window, "resize", func(js.Value) { d.schedule() })
	}, d.settle)
	d.updateBackToTop()
	d.focusDialog()
}

// schedule coalesces scroll and resize events into one measurement per
// animation frame.
func (d *driver) schedule() {
	d.updateBackToTop()
	if d.framed {
		return
	}
	d.framed = true
	d.after("requestAnimationFrame", "cancelAnimationFrame", func() {
		d.framed = false
		d.measure()
	})
}

func (d *driver) measure() {
	rects := make(map[string]scrollspy.Rect)
	for _, s := range d.tracker.Sections() {
		el := d.doc.Call("getElementById", s.ID)
		if el.IsNull() {
			continue
		}
		box := el.Call("getBoundingClientRect")
		rects[s.ID] = scrollspy.Rect{Top: box.Get("top").Float(), Height: box.Get("height").Float()}
	}
	d.tracker.Observe(scrollspy.Measure(rects, d.viewportHeight(), scrollspy.DefaultBand))
}

// offsets returns section positions relative to the document.
func (d *driver) offsets() map[string]scrollspy.Rect {
	scrollY := d.scrollY()
	out := make(map[string]scrollspy.Rect)
	for _, s := range d.tracker.Sections() {
		el := d.doc.Call("getElementById", s.ID)
		if el.IsNull() {
			continue
		}
		box := el.Call("getBoundingClientRect")
		out[s.ID] = scrollspy.Rect{Top: box.Get("top").Float() + scrollY, Height: box.Get("height").Float()}
	}
	return out
}

func (d *driver) render(active string) {
	next := d.model.Entries(active)
	d.focus.Follow(d.entries, next)
	d.entries = next

	d.list.Set("textContent", "")
	for i, e := range d.entries {
		li := d.doc.Call("createElement", "li")
		class := "spy-entry"
		if e.Nested {
			class += " nested"
		}
		if e.Active {
			class += " active"
		}
		li.Set("className", class)

		a := d.doc.Call("createElement", "a")
		a.Set("href", "#"+e.Target)
		a.Set("textContent", e.Label)
		a.Get("dataset").Set("target", e.Target)
		a.Get("dataset").Set("index", i)
		if e.Kind == scrollspy.GroupEntry {
			a.Call("setAttribute", "aria-expanded", strconv.FormatBool(e.Expanded))
		}
		if e.Active && e.Kind == scrollspy.SectionEntry {
			a.Call("setAttribute", "aria-current", "true")
		}
		if i == d.focus.Index {
			a.Set("tabIndex", 0)
		} else {
			a.Set("tabIndex", -1)
		}
		li.Call("appendChild", a)
		d.list.Call("appendChild", li)
	}
}

func (d *driver) onClick(ev js.Value) {
	link := ev.Get("target").Call("closest", "a[data-target]")
	if link.IsNull() {
		return
	}
	ev.Call("preventDefault")
	if i, err := strconv.Atoi(link.Get("dataset").Get("index").String()); err == nil {
		d.focus.Index = i
	}
	d.scrollTo(link.Get("dataset").Get("target").String())
}

func (d *driver) scrollTo(id string) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() {
		return
	}
	reduced := d.window.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
	opts := map[string]any{"behavior": scrollspy.ScrollBehavior(reduced), "block": "start"}
	el.Call("scrollIntoView", opts)
	d.window.Get("history").Call("replaceState", nil, "", "#"+id)
}

func (d *driver) onNavKey(ev js.Value) {
	key := scrollspy.Key(ev.Get("key").String())
	switch key {
	case scrollspy.KeyDown, scrollspy.KeyUp, scrollspy.KeyHome, scrollspy.KeyEnd, scrollspy.KeyEnter, scrollspy.KeySpace:
	default:
		return
	}
	ev.Call("preventDefault")

	index, activate := d.focus.Handle(key, len(d.entries))
	if len(d.entries) == 0 {
		return
	}
	target := d.entries[index].Target
	d.render(d.tracker.Active())
	if link := d.list.Call("querySelector", `a[data-index="`+strconv.Itoa(d.focus.Index)+`"]`); !link.IsNull() {
		link.Call("focus")
	}
	if activate {
		d.scrollTo(target)
	}
}

// onDocKey opens dialogs from their triggers on Enter or Space and closes
// an open dialog on Escape by following its close link.
func (d *driver) onDocKey(ev js.Value) {
	key := ev.Get("key").String()

	if selection.ActivatesTrigger(key) {
		target := ev.Get("target")
		if target.Get("closest").Type() != js.TypeFunction {
			return
		}
		if trigger := target.Call("closest", "[data-dialog-trigger]"); !trigger.IsNull() {
			ev.Call("preventDefault")
			d.window.Get("location").Set("href", trigger.Get("href"))
		}
		return
	}

	backdrop := d.doc.Call("querySelector", "[data-dialog]")
	var dialog selection.Dialog[string]
	if !backdrop.IsNull() {
		dialog.Open("dialog")
	}
	if !dialog.HandleKey(key) {
		return
	}
	if link := backdrop.Call("querySelector", "[data-dialog-close]"); !link.IsNull() {
		d.window.Get("location").Set("href", link.Get("href"))
	}
}

// focusDialog moves focus into an open dialog.
func (d *driver) focusDialog() {
	if el := d.doc.Call("querySelector", "[data-dialog] [autofocus]"); !el.IsNull() {
		el.Call("focus")
	}
}

func (d *driver) updateBackToTop() {
	if d.top.IsNull() {
		return
	}
	d.top.Set("hidden", !scrollspy.ShowBackToTop(d.scrollY()))
}

func (d *driver) scrollY() float64        { return d.window.Get("scrollY").Float() }
func (d *driver) viewportHeight() float64 { return d.window.Get("innerHeight").Float() }

// on registers an event listener that stop removes again.
func (d *driver) on(target js.Value, event string, handler func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler(args[0])
		return nil
	})
	target.Call("addEventListener", event, fn)
	d.listeners = append(d.listeners, listener{target: target, event: event, fn: fn})
}

// after schedules handler through a one-shot browser timer such as
// setTimeout or requestAnimationFrame. The function is released after its
// single call, or cancelled and released by stop if it never runs.
func (d *driver) after(schedule, cancel string, handler func(), args ...any) {
	id := d.nextID
	d.nextID++
	var f js.Func
	f = js.FuncOf(func(this js.Value, _ []js.Value) any {
		delete(d.pending, id)
		f.Release()
		handler()
		return nil
	})
	handle := d.window.Call(schedule, append([]any{f}, args...)...)
	d.pending[id] = timer{fn: f, cancel: cancel, handle: handle}
}

func (d *driver) stop() {
	d.running = false
	d.framed = false
	d.tracker.Close()
	for _, l := range d.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	for id, t := range d.pending {
		d.window.Call(t.cancel, t.handle)
		t.fn.Release()
		delete(d.pending, id)
	}
	d.listeners = nil
}

func warn(args ...any) {
	js.Global().Get("console").Call("warn", args...)
}

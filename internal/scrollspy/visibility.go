// Package scrollspy decides which page section is the most visible one so a
// side navigation can highlight it.
//
// Measurement and decision are kept apart: Measure turns element geometry
// into a Snapshot of visible fractions, Reduce picks the active id from a
// Snapshot. Neither needs a browser, which is what the Tracker and the wasm
// driver build on.
package scrollspy

// Section is one navigable page section. Group is empty for standalone
// entries.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Rect is the vertical extent of an element. Top is relative to whatever
// origin the caller uses: the viewport for Measure, the document for
// Estimate.
type Rect struct {
	Top    float64
	Height float64
}

// FocusBand is the part of the viewport that counts when judging
// visibility, expressed as the fractions cut off at the top and bottom.
type FocusBand struct {
	Top    float64
	Bottom float64
}

// DefaultBand ignores the top 20% and the bottom 40% of the viewport.
var DefaultBand = FocusBand{Top: 0.20, Bottom: 0.40}

// Snapshot maps a section id to the fraction of its element inside the
// focus band.
type Snapshot map[string]float64

// Bounds returns the band edges in viewport pixels.
func (b FocusBand) Bounds(viewportHeight float64) (top, bottom float64) {
	return viewportHeight * b.Top, viewportHeight * (1 - b.Bottom)
}

// VisibleFraction reports how much of r lies inside the focus band of a
// viewport of the given height. Zero-height elements are never visible.
func VisibleFraction(r Rect, viewportHeight float64, band FocusBand) float64 {
	if r.Height <= 0 || viewportHeight <= 0 {
		return 0
	}
	top, bottom := band.Bounds(viewportHeight)
	overlap := min(r.Top+r.Height, bottom) - max(r.Top, top)
	if overlap <= 0 {
		return 0
	}
	return min(overlap/r.Height, 1)
}

// Measure builds a Snapshot from element rectangles given in viewport
// coordinates.
func Measure(rects map[string]Rect, viewportHeight float64, band FocusBand) Snapshot {
	snap := make(Snapshot, len(rects))
	for id, r := range rects {
		snap[id] = VisibleFraction(r, viewportHeight, band)
	}
	return snap
}

// Reduce returns the next active id given the previous one and a fresh
// snapshot. The section with the highest non-zero fraction wins. An exact tie
// keeps prev when prev is one of the tied sections, otherwise the first tied
// section in list order wins. With nothing visible prev is returned
// unchanged. Snapshot entries for unregistered ids are ignored and
// registered sections missing from the snapshot are skipped.
func Reduce(prev string, sections []Section, snap Snapshot) string {
	best := ""
	bestFrac := 0.0
	for _, s := range sections {
		frac, ok := snap[s.ID]
		if !ok || frac <= 0 {
			continue
		}
		switch {
		case frac > bestFrac:
			best, bestFrac = s.ID, frac
		case frac == bestFrac && s.ID == prev:
			best = prev
		}
	}
	if best == "" {
		return prev
	}
	return best
}

// Estimate is the synchronous fallback used before any visibility
// measurement exists. offsets are document coordinates. The probe line sits a
// third of the way down the viewport; the section containing it wins, then
// the closest section starting above it, then the first measured section.
// Sections without an offset are skipped.
func Estimate(sections []Section, offsets map[string]Rect, scrollY, viewportHeight float64) string {
	probe := scrollY + viewportHeight/3

	first, above := "", ""
	aboveTop := 0.0
	for _, s := range sections {
		r, ok := offsets[s.ID]
		if !ok {
			continue
		}
		if first == "" {
			first = s.ID
		}
		if probe >= r.Top && probe < r.Top+r.Height {
			return s.ID
		}
		if r.Top <= probe && (above == "" || r.Top >= aboveTop) {
			above, aboveTop = s.ID, r.Top
		}
	}
	if above != "" {
		return above
	}
	return first
}

// ScrollBehavior is the scrollIntoView behavior for a navigation click.
func ScrollBehavior(reducedMotion bool) string {
	if reducedMotion {
		return "auto"
	}
	return "smooth"
}

// BackToTopOffset is how far the page must scroll before the back-to-top
// control shows.
const BackToTopOffset = 400

// ShowBackToTop reports whether the back-to-top control is visible at
// scrollY.
func ShowBackToTop(scrollY float64) bool {
	return scrollY > BackToTopOffset
}

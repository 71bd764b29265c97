package form

import "github.com/phya/waitlist/internal/waitlist"

// TabView applies visual emphasis to the tab of a segment
type TabView interface {
	SetTabActive(segment waitlist.Segment, active bool)
}

// TabSelector switches between the client and provider forms.
// Exactly one tab is active at a time; the client tab starts active.
type TabSelector struct {
	view        TabView
	active      waitlist.Segment
	controllers map[waitlist.Segment]*Controller
}

// NewTabSelector creates a selector over view and binds each controller's
// activity to its tab. view may be nil when nothing is rendered.
func NewTabSelector(view TabView, controllers ...*Controller) *TabSelector {
	t := &TabSelector{
		view:        view,
		active:      waitlist.SegmentClient,
		controllers: make(map[waitlist.Segment]*Controller, len(controllers)),
	}

	for _, c := range controllers {
		segment := c.Segment()
		t.controllers[segment] = c
		c.isActive = func() bool { return t.IsActive(segment) }
	}

	t.apply(waitlist.SegmentServiceProvider, false)
	t.apply(waitlist.SegmentClient, true)
	return t
}

// Active returns the segment whose form is shown
func (t *TabSelector) Active() waitlist.Segment {
	return t.active
}

// IsActive reports whether segment's form is shown
func (t *TabSelector) IsActive(segment waitlist.Segment) bool {
	return t.active == segment
}

// Select shows the form of segment.
// Selecting the active tab, or an unknown segment, changes nothing and returns false.
func (t *TabSelector) Select(segment waitlist.Segment) bool {
	if segment == t.active || !segment.Valid() {
		return false
	}

	t.apply(t.active, false)
	t.apply(segment, true)
	t.active = segment

	if c, ok := t.controllers[segment]; ok {
		c.Activated()
	}
	return true
}

// Toggle selects whichever tab is not active
func (t *TabSelector) Toggle() {
	if t.active == waitlist.SegmentClient {
		t.Select(waitlist.SegmentServiceProvider)
		return
	}
	t.Select(waitlist.SegmentClient)
}

func (t *TabSelector) apply(segment waitlist.Segment, active bool) {
	if t.view != nil {
		t.view.SetTabActive(segment, active)
	}
}

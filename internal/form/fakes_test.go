package form

import (
	"context"
	"sync"

	"github.com/phya/waitlist/internal/submission"
	"github.com/phya/waitlist/internal/waitlist"
)

// fakeSurface is an in-memory form
type fakeSurface struct {
	values  map[waitlist.Field]string
	checked map[waitlist.Field]bool
	enabled bool
	label   string
	cleared int

	// labels records every label the control showed, in order
	labels []string
}

func newFakeSurface(d waitlist.Descriptor) *fakeSurface {
	return &fakeSurface{
		values:  make(map[waitlist.Field]string),
		checked: make(map[waitlist.Field]bool),
		enabled: true,
		label:   d.SubmitLabel,
	}
}

func (s *fakeSurface) Value(f waitlist.Field) string { return s.values[f] }
func (s *fakeSurface) Checked(f waitlist.Field) bool { return s.checked[f] }
func (s *fakeSurface) Enabled() bool                 { return s.enabled }
func (s *fakeSurface) SetEnabled(enabled bool)       { s.enabled = enabled }
func (s *fakeSurface) Label() string                 { return s.label }

func (s *fakeSurface) SetLabel(label string) {
	s.label = label
	s.labels = append(s.labels, label)
}

func (s *fakeSurface) Clear() {
	s.cleared++
	s.values = make(map[waitlist.Field]string)
	s.checked = make(map[waitlist.Field]bool)
}

func (s *fakeSurface) fillClient() *fakeSurface {
	s.values[waitlist.FieldName] = "Jane Doe"
	s.values[waitlist.FieldEmail] = "jane@example.com"
	return s
}

func (s *fakeSurface) fillProvider() *fakeSurface {
	s.values[waitlist.FieldName] = "Sipho Ndlovu"
	s.values[waitlist.FieldEmail] = "sipho@example.co.za"
	s.values[waitlist.FieldPSIRANumber] = "1234567"
	s.values[waitlist.FieldPSIRAGrade] = "B"
	s.values[waitlist.FieldYearsExperience] = "6"
	s.values[waitlist.FieldPrimaryRole] = "Patrol"
	s.values[waitlist.FieldArmedStatus] = "unarmed"
	return s
}

// fakeSubmitter returns a canned answer and records what it was sent
type fakeSubmitter struct {
	mu      sync.Mutex
	outcome submission.Outcome
	err     error
	calls   int
	entries []*waitlist.WaitlistEntry
}

func (f *fakeSubmitter) Submit(ctx context.Context, entry *waitlist.WaitlistEntry) (submission.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.entries = append(f.entries, entry)
	return f.outcome, f.err
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type notification struct {
	message string
	kind    NotificationKind
}

// recordingNotifier keeps every notification it was asked to show
type recordingNotifier struct {
	shown []notification
}

func (n *recordingNotifier) Notify(message string, kind NotificationKind) {
	n.shown = append(n.shown, notification{message: message, kind: kind})
}

func (n *recordingNotifier) last() notification {
	if len(n.shown) == 0 {
		return notification{}
	}
	return n.shown[len(n.shown)-1]
}

// fakeTabView records the emphasis applied to each tab
type fakeTabView struct {
	active map[waitlist.Segment]bool
	calls  int
}

func newFakeTabView() *fakeTabView {
	return &fakeTabView{active: make(map[waitlist.Segment]bool)}
}

func (v *fakeTabView) SetTabActive(segment waitlist.Segment, active bool) {
	v.calls++
	v.active[segment] = active
}

package form

import (
	"context"

	"github.com/phya/waitlist/internal/submission"
	"github.com/phya/waitlist/internal/waitlist"
)

// NotificationKind selects how a notification is presented
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// String returns a short name for the kind
func (k NotificationKind) String() string {
	if k == NotifySuccess {
		return "success"
	}
	return "error"
}

// Notifier shows transient feedback to the visitor.
// Delivery is best-effort and never fails from the caller's point of view.
type Notifier interface {
	Notify(message string, kind NotificationKind)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(message string, kind NotificationKind)

// Notify implements Notifier
func (f NotifierFunc) Notify(message string, kind NotificationKind) {
	f(message, kind)
}

// FieldClearer resets every field of a form to empty
type FieldClearer interface {
	Clear()
}

// Control is the submit button of a form
type Control interface {
	Enabled() bool
	SetEnabled(enabled bool)
	Label() string
	SetLabel(label string)
}

// Surface is everything a controller needs from one rendered form
type Surface interface {
	waitlist.FieldReader
	FieldClearer
	Control
}

// Submitter delivers a collected entry to the backend.
// *submission.Client satisfies it.
type Submitter interface {
	Submit(ctx context.Context, entry *waitlist.WaitlistEntry) (submission.Outcome, error)
}

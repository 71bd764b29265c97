// Package form drives the signup forms of the PHYA waitlist.
//
// A Controller owns the submit workflow of one form: it validates the fields,
// locks the submit control while a request is in flight, reports the outcome
// through a Notifier, and always hands the control back afterwards. The two
// audiences (clients and service providers) share one Controller type and
// differ only in the waitlist.Descriptor they are built with.
//
// Presentation layers implement Surface (field access, clearing, the submit
// control) and Notifier; the controller never touches a widget directly.
//
// # Workflow
//
//	Idle -> Validating -> Submitting -> Succeeded | Declined | Failed -> Idle
//
// An interactive UI splits a submission in three so that the network call can
// run off the event loop:
//
//	s, ok := ctrl.Begin()         // on the event loop
//	result := s.Do(ctx)           // anywhere
//	ctrl.Complete(result)         // back on the event loop
//
// Headless callers use Submit, which runs all three in sequence.
//
// # Tabs
//
// TabSelector keeps exactly one form visible. When a submission completes on
// a hidden form the notification is shown immediately, but the control
// restore and field clear wait until that form's tab is selected again.
package form

package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phya/waitlist/internal/submission"
	"github.com/phya/waitlist/internal/waitlist"
)

const contact = "hello@phya.co.za"

func newClientController(sub *fakeSubmitter, opts ...Option) (*Controller, *fakeSurface, *recordingNotifier) {
	desc := waitlist.ClientDescriptor()
	surface := newFakeSurface(desc)
	notifier := &recordingNotifier{}
	opts = append([]Option{WithContactAddress(contact)}, opts...)
	return NewController(desc, surface, sub, notifier, opts...), surface, notifier
}

func newProviderController(sub *fakeSubmitter, opts ...Option) (*Controller, *fakeSurface, *recordingNotifier) {
	desc := waitlist.ProviderDescriptor()
	surface := newFakeSurface(desc)
	notifier := &recordingNotifier{}
	opts = append([]Option{WithContactAddress(contact)}, opts...)
	return NewController(desc, surface, sub, notifier, opts...), surface, notifier
}

func TestController_ClientAccepted(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted, Message: "Welcome to PHYA!", EntryID: "e1"}}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()

	state := ctrl.Submit(context.Background())

	assert.Equal(t, Succeeded, state)
	assert.Equal(t, Idle, ctrl.State())
	assert.Equal(t, Succeeded, ctrl.LastOutcome())
	assert.Equal(t, 1, sub.callCount())

	require.Len(t, notifier.shown, 1)
	assert.Equal(t, notification{"Welcome to PHYA!", NotifySuccess}, notifier.last())

	assert.Equal(t, 1, surface.cleared, "fields are cleared after acceptance")
	assert.True(t, surface.enabled)
	assert.Equal(t, "Join Waiting List", surface.label)
	assert.Equal(t, []string{"Joining...", "Join Waiting List"}, surface.labels)

	entry := sub.entries[0]
	assert.Equal(t, waitlist.SegmentClient, entry.Segment)
	assert.False(t, entry.HasProviderFields())
}

func TestController_AcceptedDefaultMessage(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()

	ctrl.Submit(context.Background())

	assert.Equal(t, notification{DefaultSuccessMessage, NotifySuccess}, notifier.last())
}

func TestController_Declined(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Declined, Message: "Email already registered"}}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()

	state := ctrl.Submit(context.Background())

	assert.Equal(t, Declined, state)
	assert.Equal(t, Idle, ctrl.State())
	assert.Equal(t, notification{"Email already registered", NotifyError}, notifier.last())
	assert.Zero(t, surface.cleared, "fields are kept when declined")
	assert.Equal(t, "jane@example.com", surface.values[waitlist.FieldEmail])
	assert.True(t, surface.enabled)
	assert.Equal(t, "Join Waiting List", surface.label)
}

func TestController_DeclinedDefaultMessage(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Declined}}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()

	ctrl.Submit(context.Background())

	assert.Equal(t, notification{DefaultDeclinedMessage, NotifyError}, notifier.last())
}

func TestController_Failures(t *testing.T) {
	generic := "Something went wrong. Please try again or contact us at hello@phya.co.za."

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", submission.NewNetworkError("POST request failed", errors.New("connection reset")), generic},
		{"rejected without detail", submission.NewRejectedError(500, ""), generic},
		{"rejected with detail", submission.NewRejectedError(400, "Tenant not found"), "Tenant not found"},
		{"malformed", submission.NewMalformedError(200, "failed to parse JSON response", nil), generic},
		{"unclassified", errors.New("boom"), generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{err: tt.err}
			ctrl, surface, notifier := newProviderController(sub)
			surface.fillProvider()

			state := ctrl.Submit(context.Background())

			assert.Equal(t, Failed, state)
			assert.Equal(t, Idle, ctrl.State())
			assert.Equal(t, notification{tt.want, NotifyError}, notifier.last())
			assert.Zero(t, surface.cleared)
			assert.True(t, surface.enabled, "control is always restored")
			assert.Equal(t, "Apply as a Provider", surface.label)
		})
	}
}

func TestController_ValidationStopsBeforeNetwork(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	ctrl, surface, notifier := newProviderController(sub)
	surface.fillProvider()
	surface.values[waitlist.FieldPSIRAGrade] = ""

	s, ok := ctrl.Begin()

	assert.False(t, ok)
	assert.Nil(t, s)
	assert.Equal(t, Idle, ctrl.State())
	assert.Zero(t, sub.callCount(), "no network call on validation failure")
	assert.Equal(t, notification{"Please select your PSIRA grade", NotifyError}, notifier.last())
	assert.True(t, surface.enabled, "control untouched")
	assert.Empty(t, surface.labels, "label untouched")
}

func TestController_ValidationReportsFirstProblemOnly(t *testing.T) {
	sub := &fakeSubmitter{}
	ctrl, surface, notifier := newClientController(sub)
	surface.values[waitlist.FieldEmail] = "not-an-email"

	ctrl.Submit(context.Background())

	require.Len(t, notifier.shown, 1)
	assert.Equal(t, "Please enter your name", notifier.last().message)
	assert.Zero(t, sub.callCount())
}

func TestController_InvalidEmail(t *testing.T) {
	sub := &fakeSubmitter{}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()
	surface.values[waitlist.FieldEmail] = "a@b"

	ctrl.Submit(context.Background())

	assert.Equal(t, notification{"Please enter a valid email address", NotifyError}, notifier.last())
	assert.Zero(t, sub.callCount())
}

func TestController_DoubleSubmitGuard(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	ctrl, surface, notifier := newClientController(sub)
	surface.fillClient()

	first, ok := ctrl.Begin()
	require.True(t, ok)
	assert.Equal(t, Submitting, ctrl.State())
	assert.False(t, surface.enabled)
	assert.Equal(t, "Joining...", surface.label)

	// Second press while the first is in flight
	second, ok := ctrl.Begin()
	assert.False(t, ok)
	assert.Nil(t, second)
	assert.Equal(t, Submitting, ctrl.State())
	assert.Empty(t, notifier.shown, "ignored presses notify nothing")

	ctrl.Complete(first.Do(context.Background()))

	assert.Equal(t, 1, sub.callCount(), "exactly one request for two presses")
	assert.Len(t, notifier.shown, 1)
	assert.True(t, surface.enabled)
}

func TestController_CompleteWithoutBeginIsIgnored(t *testing.T) {
	sub := &fakeSubmitter{}
	ctrl, surface, notifier := newClientController(sub)

	state := ctrl.Complete(Result{Outcome: submission.Outcome{Kind: submission.Accepted}})

	assert.Equal(t, Idle, state)
	assert.Empty(t, notifier.shown)
	assert.Zero(t, surface.cleared)
}

func TestController_ResubmitAfterCompletion(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Declined}}
	ctrl, surface, _ := newClientController(sub)
	surface.fillClient()

	assert.Equal(t, Declined, ctrl.Submit(context.Background()))
	sub.outcome = submission.Outcome{Kind: submission.Accepted}
	assert.Equal(t, Succeeded, ctrl.Submit(context.Background()))
	assert.Equal(t, 2, sub.callCount())
}

func TestController_Attribution(t *testing.T) {
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	attribution := waitlist.ParseAttribution("utm_source=instagram&utm_campaign=launch")
	ctrl, surface, _ := newClientController(sub, WithAttribution(attribution))
	surface.fillClient()

	ctrl.Submit(context.Background())

	require.Len(t, sub.entries, 1)
	require.NotNil(t, sub.entries[0].UTMSource)
	assert.Equal(t, "instagram", *sub.entries[0].UTMSource)
	assert.Nil(t, sub.entries[0].UTMMedium)
}

func TestController_HiddenCompletionDefersRestore(t *testing.T) {
	visible := true
	sub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	ctrl, surface, notifier := newClientController(sub, WithActivity(func() bool { return visible }))
	surface.fillClient()

	s, ok := ctrl.Begin()
	require.True(t, ok)

	// Visitor switches tab while the request is in flight
	visible = false
	state := ctrl.Complete(s.Do(context.Background()))

	assert.Equal(t, Succeeded, state)
	assert.Equal(t, notification{DefaultSuccessMessage, NotifySuccess}, notifier.last(), "notification is not delayed")
	assert.Equal(t, Succeeded, ctrl.State())
	assert.False(t, surface.enabled, "restore waits for the form to be shown")
	assert.Zero(t, surface.cleared)

	visible = true
	ctrl.Activated()

	assert.Equal(t, Idle, ctrl.State())
	assert.True(t, surface.enabled)
	assert.Equal(t, "Join Waiting List", surface.label)
	assert.Equal(t, 1, surface.cleared)

	// Activating again is harmless
	ctrl.Activated()
	assert.Equal(t, 1, surface.cleared)
}

func TestController_IndependentForms(t *testing.T) {
	clientSub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}
	providerSub := &fakeSubmitter{outcome: submission.Outcome{Kind: submission.Accepted}}

	client, clientSurface, _ := newClientController(clientSub)
	provider, providerSurface, _ := newProviderController(providerSub)
	clientSurface.fillClient()
	providerSurface.fillProvider()

	inFlight, ok := provider.Begin()
	require.True(t, ok)

	// A provider submission in flight does not block the client form
	assert.Equal(t, Succeeded, client.Submit(context.Background()))
	assert.True(t, clientSurface.enabled)
	assert.False(t, providerSurface.enabled)

	assert.Equal(t, Succeeded, provider.Complete(inFlight.Do(context.Background())))
	assert.Equal(t, waitlist.SegmentServiceProvider, providerSub.entries[0].Segment)
	assert.True(t, providerSub.entries[0].PilotProgramApplicant)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Submitting", Submitting.String())
	assert.Equal(t, "State(42)", State(42).String())
}

package form

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/phya/waitlist/internal/logging"
	"github.com/phya/waitlist/internal/submission"
	"github.com/phya/waitlist/internal/waitlist"
)

const (
	// DefaultSuccessMessage is shown when the backend accepts an entry without a message
	DefaultSuccessMessage = "Success! You're on the waiting list. We'll be in touch soon!"

	// DefaultDeclinedMessage is shown when the backend declines an entry without a message
	DefaultDeclinedMessage = "This email is already on the waiting list!"
)

// State is the position of a controller in the submit workflow
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Succeeded
	Declined
	Failed
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Validating:
		return "Validating"
	case Submitting:
		return "Submitting"
	case Succeeded:
		return "Succeeded"
	case Declined:
		return "Declined"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Result is what the network leg of a submission produced
type Result struct {
	Outcome submission.Outcome
	Err     error
}

// Submission is an in-flight request started by Controller.Begin.
// Do touches no UI state, so it may run on another goroutine.
type Submission struct {
	submitter Submitter
	entry     *waitlist.WaitlistEntry
}

// Entry returns the entry being submitted
func (s *Submission) Entry() *waitlist.WaitlistEntry {
	return s.entry
}

// Do performs the single network call of the submission
func (s *Submission) Do(ctx context.Context) Result {
	outcome, err := s.submitter.Submit(ctx, s.entry)
	return Result{Outcome: outcome, Err: err}
}

// Option configures a Controller
type Option func(*Controller)

// WithAttribution sets the campaign parameters copied into every entry
func WithAttribution(a waitlist.Attribution) Option {
	return func(c *Controller) { c.attribution = a }
}

// WithLogger sets the diagnostic logger (default: the global logger)
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithContactAddress sets the address quoted in generic failure messages
func WithContactAddress(addr string) Option {
	return func(c *Controller) { c.contact = addr }
}

// WithActivity reports whether the controller's form is currently shown.
// Completions that arrive while it is hidden defer control restore and field
// clearing until Activated is called.
func WithActivity(isActive func() bool) Option {
	return func(c *Controller) { c.isActive = isActive }
}

// Controller runs the submit workflow of one signup form.
//
// A Controller is driven from a single goroutine (the UI event loop). The
// disabled submit control is the only guard against overlapping submissions;
// controllers for different forms share nothing.
type Controller struct {
	desc      waitlist.Descriptor
	surface   Surface
	submitter Submitter
	notifier  Notifier

	attribution waitlist.Attribution
	contact     string
	isActive    func() bool
	log         *zap.Logger

	state       State
	savedLabel  string
	lastOutcome State
	deferred    *restoreAction
}

// restoreAction is the cleanup owed to a hidden form
type restoreAction struct {
	clearFields bool
}

// NewController creates a controller for the form described by desc
func NewController(desc waitlist.Descriptor, surface Surface, submitter Submitter, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		desc:        desc,
		surface:     surface,
		submitter:   submitter,
		notifier:    notifier,
		state:       Idle,
		lastOutcome: Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.GetLogger()
	}
	c.log = c.log.With(zap.String("segment", desc.Segment.String()))
	return c
}

// Segment returns the audience of the controller's form
func (c *Controller) Segment() waitlist.Segment {
	return c.desc.Segment
}

// Descriptor returns the layout of the controller's form
func (c *Controller) Descriptor() waitlist.Descriptor {
	return c.desc
}

// State returns the current workflow state
func (c *Controller) State() State {
	return c.state
}

// LastOutcome returns the terminal state of the most recent completed submission
// (Succeeded, Declined or Failed), or Idle if none has completed.
func (c *Controller) LastOutcome() State {
	return c.lastOutcome
}

// Begin handles a submit event.
//
// While a submission is in flight the control is disabled and the event is
// ignored. Otherwise the form is validated: on failure the first problem is
// notified and nothing else changes. On success the control is disabled, its
// label switched to the in-progress text, and the returned Submission must be
// run and handed to Complete.
func (c *Controller) Begin() (*Submission, bool) {
	if !c.surface.Enabled() {
		c.log.Debug("Submit ignored while control is disabled", zap.Stringer("state", c.state))
		return nil, false
	}

	c.state = Validating
	entry, errs := waitlist.Collect(c.surface, c.desc, c.attribution)
	if len(errs) > 0 {
		c.log.Warn("Validation failed", zap.Error(errs[0]), zap.Int("problems", len(errs)))
		c.notifier.Notify(waitlist.UserMessage(errs[0]), NotifyError)
		c.state = Idle
		return nil, false
	}

	c.savedLabel = c.surface.Label()
	c.surface.SetEnabled(false)
	c.surface.SetLabel(c.desc.InProgressLabel)
	c.state = Submitting

	return &Submission{submitter: c.submitter, entry: entry}, true
}

// Complete applies the result of a submission started by Begin and returns the
// terminal state it reached. Whatever the result, the control is re-enabled
// and its label restored; fields are cleared only when the entry was accepted.
func (c *Controller) Complete(r Result) State {
	if c.state != Submitting {
		c.log.Debug("Completion ignored", zap.Stringer("state", c.state))
		return c.state
	}

	final, message, kind, clearFields := c.interpret(r)
	c.notifier.Notify(message, kind)
	c.lastOutcome = final

	if c.isActive != nil && !c.isActive() {
		c.log.Debug("Form hidden at completion, deferring restore", zap.Stringer("outcome", final))
		c.state = final
		c.deferred = &restoreAction{clearFields: clearFields}
		return final
	}

	c.restore(clearFields)
	return final
}

// Submit runs Begin, Do and Complete in sequence.
// It returns Idle when the event was ignored or validation failed.
func (c *Controller) Submit(ctx context.Context) State {
	s, ok := c.Begin()
	if !ok {
		return c.state
	}
	return c.Complete(s.Do(ctx))
}

// Activated tells the controller its form is visible again.
// Any cleanup deferred by Complete is applied now.
func (c *Controller) Activated() {
	if c.deferred == nil {
		return
	}
	action := *c.deferred
	c.deferred = nil
	c.restore(action.clearFields)
}

// interpret maps a result to the terminal state and the notification to show
func (c *Controller) interpret(r Result) (State, string, NotificationKind, bool) {
	if r.Err != nil {
		return Failed, submission.UserMessage(r.Err, c.contact), NotifyError, false
	}

	switch r.Outcome.Kind {
	case submission.Accepted:
		msg := r.Outcome.Message
		if msg == "" {
			msg = DefaultSuccessMessage
		}
		return Succeeded, msg, NotifySuccess, true

	default:
		msg := r.Outcome.Message
		if msg == "" {
			msg = DefaultDeclinedMessage
		}
		return Declined, msg, NotifyError, false
	}
}

func (c *Controller) restore(clearFields bool) {
	if clearFields {
		c.surface.Clear()
	}
	c.surface.SetEnabled(true)
	c.surface.SetLabel(c.savedLabel)
	c.state = Idle
}

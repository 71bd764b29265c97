package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/phya/waitlist/internal/form"
	"github.com/phya/waitlist/internal/waitlist"
)

// submitDoneMsg carries the result of a submission back into the event loop
type submitDoneMsg struct {
	segment waitlist.Segment
	result  form.Result
}

// Options configures the signup screen
type Options struct {
	// Submitter delivers entries, normally a *submission.Client
	Submitter form.Submitter

	// Target is shown in the header, e.g. "production (phya.co.za)"
	Target string

	ContactAddress string
	Attribution    waitlist.Attribution
	Logger         *zap.Logger

	// Context bounds every submission; defaults to context.Background()
	Context context.Context
}

// tabBar records which tab is emphasised; it is the form.TabView of the app
type tabBar struct {
	active map[waitlist.Segment]bool
}

// SetTabActive implements form.TabView
func (b *tabBar) SetTabActive(segment waitlist.Segment, active bool) {
	b.active[segment] = active
}

// AppModel is the top-level model: two signup forms behind a pair of tabs
type AppModel struct {
	ctx    context.Context
	target string

	views       map[waitlist.Segment]*formView
	controllers map[waitlist.Segment]*form.Controller
	tabs        *form.TabSelector
	bar         *tabBar
	toasts      *toastStack

	Spinner  spinner.Model
	spinning bool

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys appKeyMap
}

// NewAppModel creates the signup screen with the client tab active
func NewAppModel(opts Options) AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := AppModel{
		ctx:         ctx,
		target:      opts.Target,
		views:       make(map[waitlist.Segment]*formView, 2),
		controllers: make(map[waitlist.Segment]*form.Controller, 2),
		bar:         &tabBar{active: make(map[waitlist.Segment]bool, 2)},
		toasts:      newToastStack(),
		Spinner:     s,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Help:        help.New(),
		Keys:        newAppKeyMap(),
	}

	var ordered []*form.Controller
	for _, desc := range []waitlist.Descriptor{waitlist.ClientDescriptor(), waitlist.ProviderDescriptor()} {
		view := newFormView(desc)
		ctrl := form.NewController(desc, view, opts.Submitter, m.toasts,
			form.WithAttribution(opts.Attribution),
			form.WithContactAddress(opts.ContactAddress),
			form.WithLogger(opts.Logger),
		)
		m.views[desc.Segment] = view
		m.controllers[desc.Segment] = ctrl
		ordered = append(ordered, ctrl)
	}

	m.tabs = form.NewTabSelector(m.bar, ordered...)
	m.activeView().syncFocus()

	return m
}

// Init starts the cursor blinking in the first field
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// ActiveSegment returns the segment whose form is shown
func (m AppModel) ActiveSegment() waitlist.Segment {
	return m.tabs.Active()
}

// Controller returns the controller of segment's form
func (m AppModel) Controller(segment waitlist.Segment) *form.Controller {
	return m.controllers[segment]
}

func (m AppModel) activeView() *formView {
	return m.views[m.tabs.Active()]
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitDoneMsg:
		ctrl, ok := m.controllers[msg.segment]
		if !ok {
			return m, nil
		}
		ctrl.Complete(msg.result)
		return m, m.toasts.drain()

	case toastExpiredMsg:
		m.toasts.dismiss(msg.id)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input messages
	return m, m.activeView().update(msg)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.activeView()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.SwitchTab):
		view.blur()
		m.tabs.Toggle()
		return m, m.activeView().syncFocus()

	case key.Matches(msg, m.Keys.Submit):
		return m.submit(m.tabs.Active())

	case key.Matches(msg, m.Keys.Next):
		return m, view.moveFocus(1)

	case key.Matches(msg, m.Keys.Prev):
		return m, view.moveFocus(-1)

	case key.Matches(msg, m.Keys.Enter):
		if view.buttonFocused() {
			return m.submit(m.tabs.Active())
		}
		return m, view.moveFocus(1)
	}

	// Plain characters belong to a focused text input
	if !view.textFocused() {
		switch {
		case key.Matches(msg, m.Keys.Dismiss):
			m.toasts.dismissNewest()
			return m, nil
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
	}

	return m, view.update(msg)
}

// submit handles a submit event on segment's form
func (m AppModel) submit(segment waitlist.Segment) (tea.Model, tea.Cmd) {
	s, ok := m.controllers[segment].Begin()
	if !ok {
		return m, m.toasts.drain()
	}

	cmds := []tea.Cmd{runSubmission(m.ctx, segment, s), m.toasts.drain()}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.Spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// runSubmission performs the network leg of a submission off the event loop
func runSubmission(ctx context.Context, segment waitlist.Segment, s *form.Submission) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{segment: segment, result: s.Do(ctx)}
	}
}

func (m AppModel) submitting() bool {
	for _, c := range m.controllers {
		if c.State() == form.Submitting {
			return true
		}
	}
	return false
}

// View renders the application
func (m AppModel) View() string {
	client := waitlist.ClientDescriptor()
	provider := waitlist.ProviderDescriptor()

	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderTab(client.Title, m.bar.active[client.Segment]),
		" ",
		RenderTab(provider.Title, m.bar.active[provider.Segment]),
	)

	spin := ""
	if m.controllers[m.tabs.Active()].State() == form.Submitting {
		spin = m.Spinner.View()
	}

	content := tabs + "\n\n" + m.activeView().view(spin)
	if toasts := m.toasts.view(m.Width - 10); toasts != "" {
		content += "\n\n" + toasts
	}

	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.target, m.Width, m.Height)
}

// Run starts the interactive signup screen and blocks until the visitor quits
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("signup screen failed: %w", err)
	}
	return nil
}

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phya/waitlist/internal/form"
	"github.com/phya/waitlist/internal/ui"
)

const (
	// MaxVisibleToasts is how many notifications are drawn at once
	MaxVisibleToasts = 3
	// ToastLifetime is how long a notification stays before it is dismissed
	ToastLifetime = 5 * time.Second
)

type toast struct {
	id      int
	message string
	kind    form.NotificationKind
}

// toastExpiredMsg is sent when a toast's lifetime ends
type toastExpiredMsg struct {
	id int
}

// toastStack implements form.Notifier for the TUI.
//
// Notify is called from inside Update, so it cannot return a command itself.
// Each new toast queues its expiry tick, which the model collects with drain.
type toastStack struct {
	toasts   []toast
	nextID   int
	lifetime time.Duration
	pending  []tea.Cmd
}

func newToastStack() *toastStack {
	return &toastStack{lifetime: ToastLifetime}
}

// Notify implements form.Notifier
func (s *toastStack) Notify(message string, kind form.NotificationKind) {
	s.nextID++
	t := toast{id: s.nextID, message: ui.SanitizeMessage(message), kind: kind}
	s.toasts = append(s.toasts, t)

	id := t.id
	s.pending = append(s.pending, tea.Tick(s.lifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	}))
}

// drain returns the expiry ticks queued since the last call
func (s *toastStack) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// dismiss removes the toast with id; unknown ids are ignored
func (s *toastStack) dismiss(id int) {
	for i, t := range s.toasts {
		if t.id == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// dismissNewest removes the most recent toast
func (s *toastStack) dismissNewest() {
	if len(s.toasts) == 0 {
		return
	}
	s.toasts = s.toasts[:len(s.toasts)-1]
}

// visible returns the newest toasts, oldest first, capped at MaxVisibleToasts
func (s *toastStack) visible() []toast {
	if len(s.toasts) <= MaxVisibleToasts {
		return s.toasts
	}
	return s.toasts[len(s.toasts)-MaxVisibleToasts:]
}

func (s *toastStack) view(width int) string {
	shown := s.visible()
	if len(shown) == 0 {
		return ""
	}

	lines := make([]string, 0, len(shown))
	for _, t := range shown {
		style := ErrorToastStyle
		marker := "✗ "
		if t.kind == form.NotifySuccess {
			style = SuccessToastStyle
			marker = "✓ "
		}
		if width > 0 {
			style = style.Width(width)
		}
		lines = append(lines, style.Render(marker+t.message))
	}
	return strings.Join(lines, "\n")
}

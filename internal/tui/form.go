package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phya/waitlist/internal/waitlist"
)

// formInput is one row of a rendered form
type formInput struct {
	spec    waitlist.FieldSpec
	text    textinput.Model // KindText, KindEmail, KindInteger
	checked bool            // KindCheckbox
	choice  int             // KindChoice, -1 when nothing is picked
}

func newFormInput(spec waitlist.FieldSpec) *formInput {
	in := &formInput{spec: spec, choice: -1}

	switch spec.Kind {
	case waitlist.KindText, waitlist.KindEmail, waitlist.KindInteger:
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.Width = InputWidth
		ti.CharLimit = 200
		if spec.Kind == waitlist.KindEmail {
			ti.CharLimit = 254
		}
		if spec.Kind == waitlist.KindInteger {
			ti.CharLimit = 3
		}
		in.text = ti
	}
	return in
}

func (in *formInput) isText() bool {
	switch in.spec.Kind {
	case waitlist.KindText, waitlist.KindEmail, waitlist.KindInteger:
		return true
	}
	return false
}

func (in *formInput) value() string {
	switch in.spec.Kind {
	case waitlist.KindChoice:
		if in.choice < 0 || in.choice >= len(in.spec.Choices) {
			return ""
		}
		return in.spec.Choices[in.choice]
	case waitlist.KindCheckbox:
		return ""
	default:
		return in.text.Value()
	}
}

func (in *formInput) reset() {
	in.checked = false
	in.choice = -1
	if in.isText() {
		in.text.Reset()
	}
}

// cycle moves a choice field by delta, wrapping around the choices
func (in *formInput) cycle(delta int) {
	n := len(in.spec.Choices)
	if n == 0 {
		return
	}
	if in.choice < 0 {
		if delta > 0 {
			in.choice = 0
		} else {
			in.choice = n - 1
		}
		return
	}
	in.choice = ((in.choice+delta)%n + n) % n
}

// formView renders one segment's form and implements form.Surface.
//
// Focus moves over the inputs and then the submit button, which is the
// last focus position.
type formView struct {
	desc   waitlist.Descriptor
	inputs []*formInput
	focus  int

	enabled bool
	label   string
}

func newFormView(desc waitlist.Descriptor) *formView {
	v := &formView{
		desc:    desc,
		enabled: true,
		label:   desc.SubmitLabel,
	}
	for _, spec := range desc.Fields {
		v.inputs = append(v.inputs, newFormInput(spec))
	}
	return v
}

func (v *formView) input(f waitlist.Field) *formInput {
	for _, in := range v.inputs {
		if in.spec.Field == f {
			return in
		}
	}
	return nil
}

// Value implements waitlist.FieldReader
func (v *formView) Value(f waitlist.Field) string {
	if in := v.input(f); in != nil {
		return in.value()
	}
	return ""
}

// Checked implements waitlist.FieldReader
func (v *formView) Checked(f waitlist.Field) bool {
	if in := v.input(f); in != nil {
		return in.checked
	}
	return false
}

// Clear implements form.FieldClearer. Focus returns to the first field.
func (v *formView) Clear() {
	for _, in := range v.inputs {
		in.reset()
	}
	v.focus = 0
	v.syncFocus()
}

// Enabled implements form.Control
func (v *formView) Enabled() bool { return v.enabled }

// SetEnabled implements form.Control
func (v *formView) SetEnabled(enabled bool) { v.enabled = enabled }

// Label implements form.Control
func (v *formView) Label() string { return v.label }

// SetLabel implements form.Control
func (v *formView) SetLabel(label string) { v.label = label }

// buttonFocused reports whether focus is on the submit button
func (v *formView) buttonFocused() bool {
	return v.focus == len(v.inputs)
}

// focused returns the input with focus, or nil when the button has it
func (v *formView) focused() *formInput {
	if v.buttonFocused() {
		return nil
	}
	return v.inputs[v.focus]
}

// textFocused reports whether typed characters belong to a text input
func (v *formView) textFocused() bool {
	in := v.focused()
	return in != nil && in.isText()
}

// moveFocus shifts focus by delta, wrapping between the first input and the button
func (v *formView) moveFocus(delta int) tea.Cmd {
	n := len(v.inputs) + 1
	v.focus = ((v.focus+delta)%n + n) % n
	return v.syncFocus()
}

// syncFocus focuses the text input under the cursor and blurs the rest
func (v *formView) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for i, in := range v.inputs {
		if !in.isText() {
			continue
		}
		if i == v.focus {
			cmd = in.text.Focus()
		} else {
			in.text.Blur()
		}
	}
	return cmd
}

// blur removes keyboard focus from every input, used when the tab is hidden
func (v *formView) blur() {
	for _, in := range v.inputs {
		if in.isText() {
			in.text.Blur()
		}
	}
}

// update passes a message to the focused input
func (v *formView) update(msg tea.Msg) tea.Cmd {
	in := v.focused()
	if in == nil {
		return nil
	}

	k, isKey := msg.(tea.KeyMsg)
	if !isKey && !in.isText() {
		return nil
	}

	switch in.spec.Kind {
	case waitlist.KindCheckbox:
		if k.String() == " " {
			in.checked = !in.checked
		}
		return nil

	case waitlist.KindChoice:
		switch k.String() {
		case "left", "h":
			in.cycle(-1)
		case "right", "l", " ":
			in.cycle(1)
		}
		return nil
	}

	var cmd tea.Cmd
	in.text, cmd = in.text.Update(msg)
	return cmd
}

func (v *formView) view(spin string) string {
	var b strings.Builder

	b.WriteString(SubtitleStyle.Render(v.desc.Title))
	b.WriteString("\n\n")

	for i, in := range v.inputs {
		b.WriteString(v.renderInput(in, i == v.focus))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := v.label
	switch {
	case !v.enabled:
		b.WriteString(DisabledButtonStyle.Render(button))
		if spin != "" {
			b.WriteString(" " + spin)
		}
	case v.buttonFocused():
		b.WriteString(FocusedButtonStyle.Render("▶ " + button))
	default:
		b.WriteString(ButtonStyle.Render(button))
	}

	return b.String()
}

func (v *formView) renderInput(in *formInput, focused bool) string {
	label := capitalise(in.spec.Field.Label())
	if in.spec.Required {
		label += RequiredMarkStyle.Render(" *")
	}
	labelStyle := LabelStyle
	if focused {
		labelStyle = FocusedLabelStyle
	}

	var value string
	switch in.spec.Kind {
	case waitlist.KindCheckbox:
		box := "[ ]"
		if in.checked {
			box = "[x]"
		}
		value = ValueStyle.Render(box + " I'd like to join the pilot programme")

	case waitlist.KindChoice:
		if in.choice < 0 {
			value = PlaceholderStyle.Render("← choose →")
		} else {
			value = ValueStyle.Render("← " + in.value() + " →")
		}

	default:
		value = in.text.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

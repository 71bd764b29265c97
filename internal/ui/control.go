package ui

// StatusControl is a submit control for console use.
// It has no button to draw, so label changes are printed as status lines.
type StatusControl struct {
	printer *Printer
	enabled bool
	label   string
}

// NewStatusControl creates an enabled control showing label
func NewStatusControl(p *Printer, label string) *StatusControl {
	return &StatusControl{printer: p, enabled: true, label: label}
}

// Enabled implements form.Control
func (c *StatusControl) Enabled() bool {
	return c.enabled
}

// SetEnabled implements form.Control
func (c *StatusControl) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Label implements form.Control
func (c *StatusControl) Label() string {
	return c.label
}

// SetLabel implements form.Control.
// A label set while disabled is the in-progress text and is printed.
func (c *StatusControl) SetLabel(label string) {
	c.label = label
	if !c.enabled {
		c.printer.Println(StepRunningStyle.Render(StepMarkerRunning + " " + label))
	}
}

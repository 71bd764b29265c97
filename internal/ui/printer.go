package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phya/waitlist/internal/form"
)

// Printer provides methods for printing UI components to a writer.
// It is the console Notifier used by headless submissions.
type Printer struct {
	out   io.Writer
	in    io.Reader
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		in:    os.Stdin,
		width: GetTerminalWidth(),
	}
}

// SetInput replaces the reader prompts are answered from
func (p *Printer) SetInput(r io.Reader) *Printer {
	p.in = r
	return p
}

// SetWidth sets the rendering width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title, message string, details ...Param) {
	r := NewSuccessResult(title, message).SetWidth(p.width)
	r.Details = details
	p.Println(r.Render())
}

// PrintError prints an error result box
func (p *Printer) PrintError(title, message string, details ...Param) {
	r := NewFailureResult(title, message).SetWidth(p.width)
	r.Details = details
	p.Println(r.Render())
}

// Notify implements form.Notifier
func (p *Printer) Notify(message string, kind form.NotificationKind) {
	message = SanitizeMessage(message)

	if kind == form.NotifySuccess {
		p.PrintSuccess("You're on the list", message)
		return
	}
	p.PrintError("Not submitted", message)
}

// Confirm prints question with lines above it and reads a yes/no answer.
// Anything other than "y" or "yes" counts as no.
func (p *Printer) Confirm(question string, lines ...string) bool {
	for _, line := range lines {
		p.Println("  " + line)
	}
	if len(lines) > 0 {
		p.Newline()
	}
	p.Print(PromptStyle.Render(question + " [y/N]: "))

	reader := bufio.NewReader(p.in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		p.Newline()
		return true
	default:
		p.Newline()
		p.Println(CancelStyle.Render("  Submission cancelled."))
		return false
	}
}

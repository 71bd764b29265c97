package ui

import (
	"strings"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box
type Result struct {
	Type    ResultType // Success or failure
	Title   string     // e.g., "You're on the waiting list"
	Message string     // Text shown to the visitor
	Details []Param    // Key-value details to display
	Width   int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title, message string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Message: message,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title, message string) *Result {
	return &Result{
		Type:    ResultFailure,
		Title:   title,
		Message: message,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	lines = append(lines, "")

	if r.Type == ResultFailure {
		lines = append(lines, ErrorTitleStyle.Render("   "+FailureMarker+"  FAILED  ─  "+r.Title))
	} else {
		lines = append(lines, SuccessTitleStyle.Render("   "+SuccessMarker+"  SUCCESS  ─  "+r.Title))
	}
	lines = append(lines, "")

	if r.Message != "" {
		messageStyle := ResultValueStyle
		if r.Type == ResultFailure {
			messageStyle = ErrorMessageStyle
		}
		lines = append(lines, messageStyle.Width(width-10).PaddingLeft(3).Render(r.Message))
		lines = append(lines, "")
	}

	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render("   " + d.Key + ":")
		valueStyled := ResultValueStyle.Render(d.Value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	if r.Type == ResultFailure {
		return ErrorBoxStyle(width).Render(content)
	}
	return SuccessBoxStyle(width).Render(content)
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/phya/waitlist/internal/version"
)

// Application branding constants
const (
	AppName = "PHYA WAITLIST"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72
	DefaultWidth     = 80
	DefaultHeight    = 24
	InputWidth       = 48
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")
)

var (
	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	// Field label styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(22)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(22)

	RequiredMarkStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	// Choice and checkbox values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	// Submit button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SubtleColor).
			Padding(0, 3)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(SecondaryColor).
				Bold(true).
				Padding(0, 3)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Background(lipgloss.Color("236")).
				Padding(0, 3)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Toasts
	SuccessToastStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SecondaryColor).
				Padding(0, 1)

	ErrorToastStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// RenderTab renders a tab title with active or inactive emphasis
func RenderTab(title string, active bool) string {
	if active {
		return ActiveTabStyle.Render(title)
	}
	return InactiveTabStyle.Render(title)
}

// BuildHeaderContent creates header content with app name and the target being submitted to
func BuildHeaderContent(target string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(target)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal panel:
// header on top, footer pinned to the bottom, bordered outer container.
func RenderApplicationContainer(content, footerText, target string, terminalWidth, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(target)),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

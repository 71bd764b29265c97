// Package tui implements the interactive signup screen of phya-waitlist.
//
// The screen is a Bubble Tea program with two tabs, one per audience
// ("I need security" and "I'm a security provider"). Each tab holds a form
// built from a waitlist.Descriptor and driven by its own form.Controller;
// a form.TabSelector decides which one is shown.
//
// # Submitting
//
// A submit key press calls Controller.Begin inside Update. The network call
// runs as a tea.Cmd and comes back as a message, at which point Update calls
// Controller.Complete. While a request is in flight the submit button is
// disabled and a spinner is drawn beside it, so repeated presses do nothing.
//
// # Notifications
//
// Outcomes are shown as toasts below the form. At most three are visible,
// each disappears after five seconds, and x dismisses the newest one.
// Text received from the server is stripped of markup before it is drawn.
//
// # Key Bindings
//
//   - ctrl+t / shift+tab: switch between the two forms
//   - tab / ↓, ↑: move between fields
//   - space: toggle the pilot programme checkbox
//   - ← / →: pick a PSIRA grade or armed status
//   - enter: next field, or submit when the button is focused
//   - ctrl+s: submit from anywhere
//   - esc / ctrl+c: quit
package tui

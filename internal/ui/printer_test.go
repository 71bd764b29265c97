package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phya/waitlist/internal/form"
)

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"You're on the list!", "You're on the list!"},
		{"<b>Welcome</b> aboard", "Welcome aboard"},
		{"<script>alert(1)</script>Done", "Done"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"red\x1b[31m alert", "red[31m alert"},
		{"  padded  ", "padded"},
		{"Contact <hello@phya.co.za> for help", "Contact <hello@phya.co.za> for help"},
		{"<b>Email</b> <hello@phya.co.za>", "Email <hello@phya.co.za>"},
		{"1 < 2 and 3 > 2", "1 < 2 and 3 > 2"},
		{"value <= 5", "value <= 5"},
		{"a<!-- note -->b", "ab"},
	}

	for _, tt := range tests {
		if got := SanitizeMessage(tt.in); got != tt.want {
			t.Errorf("SanitizeMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrinter_Notify(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.Notify("Success! You're on the waiting list.", form.NotifySuccess)
	out := buf.String()
	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "You're on the waiting list.") {
		t.Errorf("success output missing title or message:\n%s", out)
	}
	if strings.Contains(out, "FAILED") {
		t.Errorf("success output should not be marked FAILED:\n%s", out)
	}

	buf.Reset()
	p.Notify("<i>This email is already on the waiting list!</i>", form.NotifyError)
	out = buf.String()
	if !strings.Contains(out, "FAILED") {
		t.Errorf("error output missing FAILED marker:\n%s", out)
	}
	if strings.Contains(out, "<i>") {
		t.Errorf("markup should be stripped:\n%s", out)
	}

	buf.Reset()
	p.Notify("Contact <hello@phya.co.za> for help", form.NotifyError)
	if out = buf.String(); !strings.Contains(out, "<hello@phya.co.za>") {
		t.Errorf("bracketed address should be printed as sent:\n%s", out)
	}
}

func TestPrinter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		p := NewPrinter(&buf).SetInput(strings.NewReader(tt.input))

		if got := p.Confirm("Submit this entry?", "Name: Jane"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(buf.String(), "Name: Jane") {
			t.Errorf("Confirm should print the summary lines, got:\n%s", buf.String())
		}
	}
}

func TestStatusControl(t *testing.T) {
	var buf bytes.Buffer
	c := NewStatusControl(NewPrinter(&buf), "Join Waiting List")

	if !c.Enabled() || c.Label() != "Join Waiting List" {
		t.Fatalf("new control = %v/%q, want enabled with submit label", c.Enabled(), c.Label())
	}

	c.SetEnabled(false)
	c.SetLabel("Joining...")
	if !strings.Contains(buf.String(), "Joining...") {
		t.Errorf("in-progress label should be printed, got %q", buf.String())
	}

	buf.Reset()
	c.SetEnabled(true)
	c.SetLabel("Join Waiting List")
	if buf.Len() != 0 {
		t.Errorf("restoring the label should print nothing, got %q", buf.String())
	}
}

func TestHeader_Render(t *testing.T) {
	h := NewHeader("Join Waiting List", "phya-waitlist join client",
		Param{Key: "Target", Value: "production"},
		Param{Key: "Segment", Value: "client"},
	).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"JOIN WAITING LIST", "phya-waitlist join client", "production", "client"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "Target") > strings.Index(out, "Segment") {
		t.Error("params should render in insertion order")
	}
}

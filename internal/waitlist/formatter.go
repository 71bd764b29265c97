package waitlist

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the entry
func (e *WaitlistEntry) Summary() string {
	return fmt.Sprintf("%s <%s> (%s)", e.Name, e.Email, e.Segment)
}

// FormatDetailed returns a multi-line description of every field that carries a value
func (e *WaitlistEntry) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Waitlist Entry ===\n")
	writeLine(&b, "Segment", e.Segment.String())
	writeLine(&b, "Name", e.Name)
	writeLine(&b, "Email", e.Email)
	writeOptional(&b, "Phone", e.Phone)
	writeOptional(&b, "Location", e.Location)
	writeOptional(&b, "Message", e.Message)

	if e.Segment == SegmentServiceProvider {
		b.WriteString("\n=== Provider Details ===\n")
		writeOptional(&b, "PSIRA Number", e.PSIRANumber)
		writeOptional(&b, "PSIRA Grade", e.PSIRAGrade)
		if e.YearsExperience != nil {
			writeLine(&b, "Experience", fmt.Sprintf("%d year(s)", *e.YearsExperience))
		}
		writeOptional(&b, "Primary Role", e.PrimaryRole)
		if e.ArmedStatus != nil {
			writeLine(&b, "Armed Status", string(*e.ArmedStatus))
		}
	}

	b.WriteString("\n=== Pilot Programme ===\n")
	writeLine(&b, "Applicant", formatYesNo(e.PilotProgramApplicant))
	writeOptional(&b, "Region", e.PilotRegion)
	writeOptional(&b, "City", e.PilotCity)

	if e.UTMSource != nil || e.UTMMedium != nil || e.UTMCampaign != nil {
		b.WriteString("\n=== Attribution ===\n")
		writeOptional(&b, "utm_source", e.UTMSource)
		writeOptional(&b, "utm_medium", e.UTMMedium)
		writeOptional(&b, "utm_campaign", e.UTMCampaign)
	}

	return b.String()
}

// MaskEmail hides most of the local part of an address for diagnostic output,
// e.g. "jane@example.com" becomes "j***@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

func writeLine(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%-14s %s\n", label+":", value))
}

func writeOptional(b *strings.Builder, label string, value *string) {
	if value == nil {
		return
	}
	writeLine(b, label, *value)
}

func formatYesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

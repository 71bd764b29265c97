package waitlist

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// ReferralSource identifies the landing page in every submitted entry
	ReferralSource = "phya-landing-page"

	// PilotRegion is the fixed region recorded for pilot programme applicants
	PilotRegion = "Gauteng"
)

// Segment identifies which signup audience a form serves
type Segment string

const (
	// SegmentClient is a prospective client looking for security services
	SegmentClient Segment = "client"
	// SegmentServiceProvider is a PSIRA-registered security officer applying to provide services
	SegmentServiceProvider Segment = "service_provider"
)

// String returns the wire value of the segment
func (s Segment) String() string {
	return string(s)
}

// Valid reports whether s is one of the known segments
func (s Segment) Valid() bool {
	return s == SegmentClient || s == SegmentServiceProvider
}

// ParseSegment converts user input into a Segment.
// "provider" is accepted as a shorthand for service_provider.
func ParseSegment(s string) (Segment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return SegmentClient, nil
	case "service_provider", "service-provider", "provider":
		return SegmentServiceProvider, nil
	default:
		return "", fmt.Errorf("unknown segment %q (expected client or provider)", s)
	}
}

// ArmedStatus records whether a provider applicant works armed or unarmed
type ArmedStatus string

const (
	ArmedStatusArmed   ArmedStatus = "armed"
	ArmedStatusUnarmed ArmedStatus = "unarmed"
)

// ArmedStatuses lists the accepted armed_status values in display order
var ArmedStatuses = []string{string(ArmedStatusArmed), string(ArmedStatusUnarmed)}

// PSIRAGrades lists the PSIRA registration grades, most senior first
var PSIRAGrades = []string{"A", "B", "C", "D", "E"}

// WaitlistEntry is the payload sent to the backend for a single signup.
//
// Optional values are pointers so that an absent value serialises as JSON null
// rather than an empty string. Provider-only fields are nil for client entries.
type WaitlistEntry struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Segment Segment `json:"segment"`

	Location *string `json:"location"`
	Message  *string `json:"message"`

	PilotProgramApplicant bool    `json:"pilot_program_applicant"`
	PilotRegion           *string `json:"pilot_region"`
	PilotCity             *string `json:"pilot_city"`

	ReferralSource string  `json:"referral_source"`
	UTMSource      *string `json:"utm_source"`
	UTMMedium      *string `json:"utm_medium"`
	UTMCampaign    *string `json:"utm_campaign"`

	// Service provider fields
	PSIRANumber     *string      `json:"psira_number"`
	PSIRAGrade      *string      `json:"psira_grade"`
	YearsExperience *int         `json:"years_experience"`
	PrimaryRole     *string      `json:"primary_role"`
	ArmedStatus     *ArmedStatus `json:"armed_status"`
}

// HasProviderFields reports whether any provider-only field carries a value
func (e *WaitlistEntry) HasProviderFields() bool {
	return e.PSIRANumber != nil ||
		e.PSIRAGrade != nil ||
		e.YearsExperience != nil ||
		e.PrimaryRole != nil ||
		e.ArmedStatus != nil
}

// Attribution carries the campaign parameters of the page the visitor arrived on.
// Values are passed through to the backend without validation.
type Attribution struct {
	Source   string
	Medium   string
	Campaign string
}

// ParseAttribution extracts utm_source, utm_medium and utm_campaign from a raw
// query string. A full landing URL is accepted as well.
func ParseAttribution(raw string) Attribution {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Attribution{}
	}

	query := raw
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			query = u.RawQuery
		}
	}
	query = strings.TrimPrefix(query, "?")

	// ParseQuery keeps the pairs it could decode even when it reports an error
	values, _ := url.ParseQuery(query)

	return Attribution{
		Source:   strings.TrimSpace(values.Get("utm_source")),
		Medium:   strings.TrimSpace(values.Get("utm_medium")),
		Campaign: strings.TrimSpace(values.Get("utm_campaign")),
	}
}

// optional maps an empty string to nil
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

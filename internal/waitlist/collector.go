package waitlist

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emailPart is one run of characters that are neither whitespace nor '@'.
// Whitespace includes the vertical tab, Unicode separators and the byte
// order mark, not only ASCII spaces.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

// emailPattern accepts local@domain.tld
var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// FieldReader is the read side of a form surface.
// Implementations return the raw value of a field as the visitor left it.
type FieldReader interface {
	// Value returns the raw text of a field ("" when the form has no such field)
	Value(f Field) string
	// Checked returns the state of a checkbox field
	Checked(f Field) bool
}

// IsValidEmail reports whether s has the local@domain.tld shape accepted by the forms
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Collect reads the fields of form d from r, trims them and builds a WaitlistEntry.
//
// Fields are checked in the descriptor's collection order and every failure is
// returned; callers show only the first one. When any field fails the returned
// entry is nil. Collect never has side effects beyond reading r.
func Collect(r FieldReader, d Descriptor, a Attribution) (*WaitlistEntry, []error) {
	var errs []error
	values := make(map[Field]string, len(d.Fields))
	pilotChecked := false

	for _, spec := range d.Fields {
		if spec.Kind == KindCheckbox {
			if spec.Field == FieldPilotProgramApplicant {
				pilotChecked = r.Checked(spec.Field)
			}
			continue
		}

		value, err := validateField(spec, strings.TrimSpace(r.Value(spec.Field)))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values[spec.Field] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}

	entry := &WaitlistEntry{
		Name:           values[FieldName],
		Email:          values[FieldEmail],
		Phone:          optional(values[FieldPhone]),
		Segment:        d.Segment,
		Location:       optional(values[FieldLocation]),
		Message:        optional(values[FieldMessage]),
		ReferralSource: ReferralSource,
		UTMSource:      optional(a.Source),
		UTMMedium:      optional(a.Medium),
		UTMCampaign:    optional(a.Campaign),
	}

	switch d.Segment {
	case SegmentServiceProvider:
		// Providers are always part of the pilot; there is no opt-out on this form
		entry.PilotProgramApplicant = true
		entry.PilotRegion = optional(PilotRegion)
		entry.PilotCity = optional(values[FieldPilotCity])

		entry.PSIRANumber = optional(values[FieldPSIRANumber])
		entry.PSIRAGrade = optional(values[FieldPSIRAGrade])
		entry.PrimaryRole = optional(values[FieldPrimaryRole])
		if raw, ok := values[FieldYearsExperience]; ok && raw != "" {
			years, _ := strconv.Atoi(raw) // already validated
			entry.YearsExperience = &years
		}
		if raw := values[FieldArmedStatus]; raw != "" {
			status := ArmedStatus(raw)
			entry.ArmedStatus = &status
		}

	default:
		entry.PilotProgramApplicant = pilotChecked
		if pilotChecked {
			entry.PilotRegion = optional(PilotRegion)
			entry.PilotCity = optional(values[FieldPilotCity])
		}
	}

	return entry, nil
}

// validateField applies the presence and shape rules of spec to a trimmed value.
// It returns the value normalised for the wire.
func validateField(spec FieldSpec, value string) (string, error) {
	if value == "" {
		if spec.Required {
			return "", NewMissingError(spec.Field)
		}
		return "", nil
	}

	switch spec.Kind {
	case KindEmail:
		if !IsValidEmail(value) {
			return "", NewInvalidFormatError(spec.Field)
		}

	case KindInteger:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return "", NewInvalidFormatError(spec.Field)
		}
		return strconv.Itoa(n), nil

	case KindChoice:
		normalised := normaliseChoice(spec.Field, value)
		if !slices.Contains(spec.Choices, normalised) {
			return "", NewInvalidFormatError(spec.Field)
		}
		return normalised, nil
	}

	return value, nil
}

// normaliseChoice folds case the way each enumeration is spelled on the wire:
// PSIRA grades are upper case letters, everything else is lower case.
func normaliseChoice(f Field, value string) string {
	if f == FieldPSIRAGrade {
		return cases.Upper(language.Und).String(value)
	}
	return cases.Lower(language.Und).String(value)
}

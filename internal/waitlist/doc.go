// Package waitlist defines the PHYA waitlist entry and the field collector that
// builds it from a signup form.
//
// Two audiences sign up through separate forms: prospective clients and
// service providers (PSIRA-registered security officers). The difference
// between the forms is expressed as data: a Descriptor lists each form's
// fields in collection order together with presence and shape rules, and a
// single Collect function serves both.
//
// # Collecting an Entry
//
// Presentation layers implement FieldReader over whatever holds the input
// (terminal widgets, command-line flags, test fakes):
//
//	entry, errs := waitlist.Collect(reader, waitlist.ProviderDescriptor(), attribution)
//	if len(errs) > 0 {
//	    fmt.Println(waitlist.UserMessage(errs[0]))
//	    return
//	}
//
// Values are trimmed; required fields that end up empty fail with a Missing
// error, malformed values with InvalidFormat. Optional fields that are empty
// are left nil so that they serialise as JSON null.
//
// # Segment Rules
//
// Provider entries always apply to the pilot programme in PilotRegion. Client
// entries apply only when the pilot checkbox is ticked, and never carry
// provider-only fields.
package waitlist

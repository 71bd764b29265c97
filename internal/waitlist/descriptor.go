package waitlist

// Field identifies one input of a signup form
type Field string

const (
	FieldName                  Field = "name"
	FieldEmail                 Field = "email"
	FieldPhone                 Field = "phone"
	FieldLocation              Field = "location"
	FieldMessage               Field = "message"
	FieldPilotProgramApplicant Field = "pilot_program_applicant"
	FieldPilotCity             Field = "pilot_city"
	FieldPSIRANumber           Field = "psira_number"
	FieldPSIRAGrade            Field = "psira_grade"
	FieldYearsExperience       Field = "years_experience"
	FieldPrimaryRole           Field = "primary_role"
	FieldArmedStatus           Field = "armed_status"
)

var fieldLabels = map[Field]string{
	FieldName:                  "name",
	FieldEmail:                 "email address",
	FieldPhone:                 "phone number",
	FieldLocation:              "location",
	FieldMessage:               "message",
	FieldPilotProgramApplicant: "pilot programme",
	FieldPilotCity:             "pilot city",
	FieldPSIRANumber:           "PSIRA number",
	FieldPSIRAGrade:            "PSIRA grade",
	FieldYearsExperience:       "years of experience",
	FieldPrimaryRole:           "primary role",
	FieldArmedStatus:           "armed status",
}

// Label returns the human-readable name of the field
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// FieldKind controls how a field is read and validated
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindInteger
	KindChoice
	KindCheckbox
)

// FieldSpec describes one field of a segment form
type FieldSpec struct {
	Field       Field
	Kind        FieldKind
	Required    bool
	Choices     []string // KindChoice only
	Placeholder string
}

// Descriptor is everything that distinguishes one segment's form from the other:
// its fields in collection order and the labels of its submit control.
type Descriptor struct {
	Segment         Segment
	Title           string
	SubmitLabel     string
	InProgressLabel string
	Fields          []FieldSpec
}

// Spec returns the spec for field f and whether the form has it
func (d Descriptor) Spec(f Field) (FieldSpec, bool) {
	for _, spec := range d.Fields {
		if spec.Field == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// ClientDescriptor returns the form layout for prospective clients
func ClientDescriptor() Descriptor {
	return Descriptor{
		Segment:         SegmentClient,
		Title:           "I need security",
		SubmitLabel:     "Join Waiting List",
		InProgressLabel: "Joining...",
		Fields: []FieldSpec{
			{Field: FieldName, Kind: KindText, Required: true, Placeholder: "Full name"},
			{Field: FieldEmail, Kind: KindEmail, Required: true, Placeholder: "you@example.com"},
			{Field: FieldPhone, Kind: KindText, Placeholder: "+27 82 123 4567"},
			{Field: FieldLocation, Kind: KindText, Placeholder: "Suburb or city"},
			{Field: FieldMessage, Kind: KindText, Placeholder: "What do you need protected?"},
			{Field: FieldPilotProgramApplicant, Kind: KindCheckbox},
			{Field: FieldPilotCity, Kind: KindText, Placeholder: "Johannesburg, Pretoria, ..."},
		},
	}
}

// ProviderDescriptor returns the form layout for service provider applicants
func ProviderDescriptor() Descriptor {
	return Descriptor{
		Segment:         SegmentServiceProvider,
		Title:           "I'm a security provider",
		SubmitLabel:     "Apply as a Provider",
		InProgressLabel: "Submitting application...",
		Fields: []FieldSpec{
			{Field: FieldName, Kind: KindText, Required: true, Placeholder: "Full name"},
			{Field: FieldEmail, Kind: KindEmail, Required: true, Placeholder: "you@example.com"},
			{Field: FieldPhone, Kind: KindText, Placeholder: "+27 82 123 4567"},
			{Field: FieldPSIRANumber, Kind: KindText, Required: true, Placeholder: "PSIRA registration number"},
			{Field: FieldPSIRAGrade, Kind: KindChoice, Required: true, Choices: PSIRAGrades},
			{Field: FieldYearsExperience, Kind: KindInteger, Required: true, Placeholder: "0"},
			{Field: FieldPrimaryRole, Kind: KindText, Required: true, Placeholder: "Close protection, patrol, ..."},
			{Field: FieldArmedStatus, Kind: KindChoice, Required: true, Choices: ArmedStatuses},
			{Field: FieldLocation, Kind: KindText, Placeholder: "Where are you based?"},
			{Field: FieldMessage, Kind: KindText, Placeholder: "Anything else we should know?"},
			{Field: FieldPilotCity, Kind: KindText, Placeholder: "Preferred pilot city"},
		},
	}
}

// DescriptorFor returns the descriptor of segment s.
// Unknown segments fall back to the client form.
func DescriptorFor(s Segment) Descriptor {
	if s == SegmentServiceProvider {
		return ProviderDescriptor()
	}
	return ClientDescriptor()
}

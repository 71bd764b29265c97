package waitlist

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegment(t *testing.T) {
	tests := []struct {
		input   string
		want    Segment
		wantErr bool
	}{
		{"client", SegmentClient, false},
		{"Client", SegmentClient, false},
		{"provider", SegmentServiceProvider, false},
		{"service_provider", SegmentServiceProvider, false},
		{"service-provider", SegmentServiceProvider, false},
		{"guard", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSegment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttribution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Attribution
	}{
		{"empty", "", Attribution{}},
		{"query", "utm_source=google&utm_medium=cpc&utm_campaign=launch", Attribution{"google", "cpc", "launch"}},
		{"leading question mark", "?utm_source=x", Attribution{Source: "x"}},
		{"full url", "https://phya.co.za/?utm_source=newsletter&ref=abc#waitlist", Attribution{Source: "newsletter"}},
		{"encoded", "utm_campaign=winter%20drive", Attribution{Campaign: "winter drive"}},
		{"partially malformed", "utm_source=ok&bad=%zz", Attribution{Source: "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAttribution(tt.raw))
		})
	}
}

func TestWaitlistEntry_JSONAbsentFieldsAreNull(t *testing.T) {
	entry, errs := Collect(validClient(), ClientDescriptor(), Attribution{})
	require.Empty(t, errs)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"phone", "location", "message", "pilot_region", "pilot_city",
		"utm_source", "psira_number", "psira_grade", "years_experience",
		"primary_role", "armed_status",
	} {
		value, present := decoded[key]
		assert.True(t, present, "%s should be serialised", key)
		assert.Nil(t, value, "%s should be null", key)
	}

	assert.Equal(t, "client", decoded["segment"])
	assert.Equal(t, false, decoded["pilot_program_applicant"])
	assert.NotContains(t, string(data), `""`, "no field may serialise as an empty string")
}

func TestDescriptors(t *testing.T) {
	client := ClientDescriptor()
	provider := ProviderDescriptor()

	assert.Equal(t, SegmentClient, client.Segment)
	assert.Equal(t, SegmentServiceProvider, provider.Segment)
	assert.Equal(t, client, DescriptorFor(SegmentClient))
	assert.Equal(t, provider, DescriptorFor(SegmentServiceProvider))

	// name and email lead both forms
	for _, d := range []Descriptor{client, provider} {
		require.GreaterOrEqual(t, len(d.Fields), 2)
		assert.Equal(t, FieldName, d.Fields[0].Field)
		assert.Equal(t, FieldEmail, d.Fields[1].Field)
		assert.True(t, d.Fields[0].Required)
		assert.True(t, d.Fields[1].Required)
		assert.NotEmpty(t, d.SubmitLabel)
		assert.NotEmpty(t, d.InProgressLabel)
	}

	_, ok := client.Spec(FieldPSIRAGrade)
	assert.False(t, ok, "client form has no provider fields")

	grade, ok := provider.Spec(FieldPSIRAGrade)
	require.True(t, ok)
	assert.Equal(t, KindChoice, grade.Kind)
	assert.Equal(t, PSIRAGrades, grade.Choices)
}

func TestValidationError_UserMessage(t *testing.T) {
	assert.Equal(t, "Please enter your name", NewMissingError(FieldName).UserMessage())
	assert.Equal(t, "Please enter a valid email address", NewInvalidFormatError(FieldEmail).UserMessage())
	assert.Equal(t, "Please select your PSIRA grade", NewMissingError(FieldPSIRAGrade).UserMessage())
	assert.True(t, strings.Contains(NewInvalidFormatError(FieldYearsExperience).UserMessage(), "years of experience"))
	assert.Equal(t, "Missing(psira_grade)", NewMissingError(FieldPSIRAGrade).Error())
}

func TestFormatDetailed(t *testing.T) {
	entry, errs := Collect(validProvider(), ProviderDescriptor(), Attribution{Source: "flyer"})
	require.Empty(t, errs)

	out := entry.FormatDetailed()
	assert.Contains(t, out, "Sipho Ndlovu")
	assert.Contains(t, out, "Provider Details")
	assert.Contains(t, out, "6 year(s)")
	assert.Contains(t, out, "Gauteng")
	assert.Contains(t, out, "flyer")

	assert.Equal(t, "Sipho Ndlovu <sipho@example.co.za> (service_provider)", entry.Summary())
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("nope"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
}

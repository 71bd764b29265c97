package submission

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// OutcomeKind is the result of a submission the backend answered with 2xx
type OutcomeKind int

const (
	// Accepted means the entry was stored
	Accepted OutcomeKind = iota
	// Declined means the backend understood the request but refused it (e.g. duplicate email)
	Declined
)

// String returns a short name for the outcome
func (k OutcomeKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case Declined:
		return "declined"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", k)
	}
}

// Outcome is what the backend said about a submitted entry
type Outcome struct {
	Kind    OutcomeKind
	Message string // Server message, may be empty
	EntryID string // Identifier of the stored entry (Accepted only)
}

// waitlistResponse is the 2xx body of POST /public/waitlist
type waitlistResponse struct {
	Success *bool   `json:"success"`
	Message string  `json:"message"`
	EntryID entryID `json:"entry_id"`
}

// errorResponse is the body of a non-2xx answer.
// detail is either a string or a list of {msg} objects.
type errorResponse struct {
	Detail jsoniter.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// entryID accepts the identifier as either a JSON string or a number
type entryID string

// UnmarshalJSON implements json.Unmarshaler
func (id *entryID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = entryID(s)
		return nil
	}

	raw := string(bytes.TrimSpace(data))
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("entry_id: expected string or number, got %s", raw)
	}
	*id = entryID(raw)
	return nil
}

// parseDetail extracts the explanation from a non-2xx body.
// It returns "" when the body carries none.
func parseDetail(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(resp.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(resp.Detail, &issues); err == nil {
		for _, issue := range issues {
			if issue.Msg != "" {
				return issue.Msg
			}
		}
	}

	return ""
}

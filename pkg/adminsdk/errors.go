package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Message, strings.Join(fields, "; "))
}

// FieldMessage returns the message reported for field, if any.
func (e *APIError) FieldMessage(field string) (string, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// parseErrorResponse turns an error envelope into an *APIError. Bodies
// that are not envelopes fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}

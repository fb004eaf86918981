package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

// MaskedMessage replaces the message of every unexpected failure.
const MaskedMessage = "Something went wrong. Please try again later."

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

var verboseErrors atomic.Bool

// SetVerboseErrors makes masked 500 responses include the underlying error
// text. Only meant for development.
func SetVerboseErrors(on bool) { verboseErrors.Store(on) }

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteSuccess writes a successful envelope.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{Success: true, Message: message, Data: data})
}

// WriteError writes err as a failed envelope. StatusErrors keep their status
// and message; anything else is logged and answered with a masked 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var se StatusError
	if errors.As(err, &se) {
		env := Envelope{Message: se.Error()}
		var fe FieldErrorer
		if errors.As(err, &fe) {
			env.Errors = fe.FieldErrors()
		}
		WriteJSON(w, se.StatusCode(), env)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))

	env := Envelope{Message: MaskedMessage}
	if verboseErrors.Load() {
		env.Errors = []FieldError{{Message: err.Error()}}
	}
	WriteJSON(w, http.StatusInternalServerError, env)
}

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. A malformed body yields a
// 400 Error.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequest("Request body is required")
		}
		return BadRequest(fmt.Sprintf("Invalid request body: %v", err))
	}
	return nil
}

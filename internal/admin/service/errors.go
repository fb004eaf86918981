package service

import (
	"net/http"

	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
)

// Kind classifies an operational failure.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is an expected failure whose message is safe to show the caller.
// Anything that is not an *Error is treated as an internal fault.
type Error struct {
	Kind    Kind
	Message string
	Fields  []httpx.FieldError
}

func (e *Error) Error() string                   { return e.Message }
func (e *Error) FieldErrors() []httpx.FieldError { return e.Fields }

// StatusCode maps the error kind onto an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func badRequest(msg string) *Error   { return &Error{Kind: KindBadRequest, Message: msg} }
func unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func notFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }

// invalidField reports a single rejected input the way request validation does.
func invalidField(field, msg string) *Error {
	return &Error{
		Kind:    KindBadRequest,
		Message: httpx.ErrValidation,
		Fields:  []httpx.FieldError{{Field: field, Message: msg}},
	}
}

var (
	ErrInvalidCredentials = unauthorized("Invalid email or password")
	ErrAccountDeactivated = unauthorized("Your account has been deactivated. Please contact an administrator.")
	ErrUserGone           = unauthorized("User no longer exists.")

	ErrEmailTaken    = conflict("A user with this email already exists")
	ErrInvitePending = conflict("A pending invitation already exists for this email")

	ErrInviteNotFound = notFound("Invalid invitation token")
	ErrInviteUsed     = badRequest("This invitation has already been used")
	ErrInviteExpired  = badRequest("This invitation has expired. Please request a new one.")

	ErrUserNotFound    = notFound("User not found")
	ErrProjectNotFound = notFound("Project not found")

	ErrSelfRoleChange = badRequest("You cannot change your own role")
	ErrSelfDeactivate = badRequest("You cannot deactivate your own account")
)

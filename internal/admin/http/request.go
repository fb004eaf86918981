package http

import (
	"net/http"

	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
)

type validatable interface {
	Validate() error
}

// decodeRequest decodes a JSON body into dst and runs its validation rules.
func decodeRequest(r *http.Request, dst validatable) error {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		return err
	}
	return httpx.ValidationFailed(dst.Validate())
}

// pathID reads the {id} path segment and checks that it is a well formed id.
func pathID(r *http.Request, invalidMsg string) (string, error) {
	id := r.PathValue("id")
	if !idx.Valid(id) {
		return "", &httpx.Error{
			Status:  http.StatusBadRequest,
			Message: httpx.ErrValidation,
			Fields:  []httpx.FieldError{{Field: "id", Message: invalidMsg}},
		}
	}
	return id, nil
}

// identity returns the authenticated caller. Routes using it are always
// behind httpx.Authenticate.
func identity(r *http.Request) (httpx.Identity, error) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		return httpx.Identity{}, httpx.ErrAuthRequired
	}
	return id, nil
}

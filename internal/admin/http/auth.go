package http

import (
	"net/http"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchange email and password for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.LoginRequest						true	"Credentials"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.AuthData]		"user, token"
//	@Failure		400		{object}	adminsdk.Envelope[any]						"validation failed"
//	@Failure		401		{object}	adminsdk.Envelope[any]						"invalid credentials or deactivated"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Login successful", adminsdk.AuthData{
		User:  toUser(sess.User),
		Token: sess.Token,
	})
}

// HandleInvite godoc
//
//	@Summary		Invite a user
//	@Description	Create a single-use invite and email the registration link. Admin only.
//	@Description	The raw invite token is only ever returned by this call.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.InviteRequest					true	"Invitee"
//	@Success		201		{object}	adminsdk.Envelope[adminsdk.InviteData]	"invite, inviteToken, inviteLink"
//	@Failure		400		{object}	adminsdk.Envelope[any]					"validation failed"
//	@Failure		401		{object}	adminsdk.Envelope[any]					"not authenticated"
//	@Failure		403		{object}	adminsdk.Envelope[any]					"not an admin"
//	@Failure		409		{object}	adminsdk.Envelope[any]					"user or pending invite exists"
//	@Security		BearerAuth
//	@Router			/api/auth/invite [post].
func (h *AuthHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req adminsdk.InviteRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	created, err := h.AuthService.CreateInvite(r.Context(), req.Email, domain.Role(req.Role), caller.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Invitation created successfully", adminsdk.InviteData{
		Invite:      toInvite(created.Invite),
		InviteToken: created.Token,
		InviteLink:  created.Link,
	})
}

// HandleVerifyInvite godoc
//
//	@Summary		Verify an invite
//	@Description	Report the email and role of a pending invite.
//	@Tags			Auth
//	@Produce		json
//	@Param			token	path		string									true	"Invite token"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.InviteStatus]	"email, role, expiresAt"
//	@Failure		400		{object}	adminsdk.Envelope[any]					"malformed, used or expired"
//	@Failure		404		{object}	adminsdk.Envelope[any]					"unknown token"
//	@Router			/api/auth/verify-invite/{token} [get].
func (h *AuthHandler) HandleVerifyInvite(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if err := adminsdk.ValidateInviteToken(token); err != nil {
		httpx.WriteError(w, r, &httpx.Error{
			Status:  http.StatusBadRequest,
			Message: httpx.ErrValidation,
			Fields:  []httpx.FieldError{{Field: "token", Message: err.Error()}},
		})
		return
	}

	inv, err := h.AuthService.VerifyInvite(r.Context(), token)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Invitation is valid", adminsdk.InviteStatus{
		Email:     inv.Email,
		Role:      inv.Role.String(),
		ExpiresAt: inv.ExpiresAt,
	})
}

// HandleRegister godoc
//
//	@Summary		Register through an invite
//	@Description	Create the invited account and consume the invite.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.RegisterRequest				true	"Registration"
//	@Success		201		{object}	adminsdk.Envelope[adminsdk.AuthData]	"user, token"
//	@Failure		400		{object}	adminsdk.Envelope[any]					"validation failed, invite used or expired"
//	@Failure		404		{object}	adminsdk.Envelope[any]					"unknown token"
//	@Failure		409		{object}	adminsdk.Envelope[any]					"email already registered"
//	@Router			/api/auth/register-via-invite [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req adminsdk.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	sess, err := h.AuthService.RegisterViaInvite(r.Context(), req.Token, req.Name, req.Password)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Registration successful", adminsdk.AuthData{
		User:  toUser(sess.User),
		Token: sess.Token,
	})
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	adminsdk.Envelope[adminsdk.UserData]	"user"
//	@Failure		401	{object}	adminsdk.Envelope[any]					"not authenticated"
//	@Failure		404	{object}	adminsdk.Envelope[any]					"user not found"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	u, err := h.AuthService.GetCurrentUser(r.Context(), caller.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "User retrieved successfully", adminsdk.UserData{User: toUser(u)})
}

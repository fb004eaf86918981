/*
Package adminsdk is a Go client for the NexusAdmin API. It also defines the
wire types and request validation rules shared with the server.

# Client vs Session

  - Client: unauthenticated operations (login, invite verification,
    registration, health checks)
  - Session: operations that need a session token

Typical use:

	client := adminsdk.NewClient("http://localhost:5000")

	session, err := client.Login(ctx, adminsdk.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})

	invite, err := session.CreateInvite(ctx, adminsdk.InviteRequest{
		Email: "new.hire@example.com",
		Role:  adminsdk.RoleStaff,
	})

Registration through an invite returns a Session for the new user:

	session, err := client.RegisterViaInvite(ctx, adminsdk.RegisterRequest{
		Token:    invite.InviteToken,
		Name:     "New Hire",
		Password: "Secret123",
	})

# Errors

Every non-2xx response is returned as an *APIError carrying the status code,
the envelope message and any field errors:

	var apiErr *adminsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// already invited
	}

# Thread Safety

Client and Session hold no mutable state after construction and are safe for
concurrent use.
*/
package adminsdk

/*
Package lmsapi holds the wire types of the LMS REST API together with a small
Go client for it.

# Client vs Session

Public endpoints hang off Client; anything that needs a bearer token hangs off
Session, which is what Login returns:

	client := lmsapi.NewClient("http://localhost:8080")

	_, err := client.Signup(ctx, lmsapi.SignupRequest{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Password: "secret1",
	})

	session, login, err := client.Login(ctx, lmsapi.LoginRequest{
		Email: "ada@example.com", Password: "secret1",
	})

	profile, err := session.Profile(ctx)

Errors returned by the server decode into *APIError, so callers can branch on
the HTTP status or Code:

	var apiErr *lmsapi.APIError
	if errors.As(err, &apiErr) && apiErr.Code == lmsapi.ErrorCodeConflict {
		// email already registered
	}
*/
package lmsapi

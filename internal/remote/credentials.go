package remote

import (
	"context"
	"net/http"
)

// Credentials are the caller's proof of identity, forwarded verbatim to every
// service request. The services authenticate via a session cookie; a bearer
// token is carried through as well when present.
type Credentials struct {
	Cookie        string
	Authorization string
}

type credentialsKey struct{}

// WithCredentials returns a context carrying creds for outgoing requests.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext extracts the credentials stored by WithCredentials,
// or the zero value when none are set.
func CredentialsFromContext(ctx context.Context) Credentials {
	creds, _ := ctx.Value(credentialsKey{}).(Credentials)
	return creds
}

func (c Credentials) apply(req *http.Request) {
	if c.Cookie != "" {
		req.Header.Set("Cookie", c.Cookie)
	}
	if c.Authorization != "" {
		req.Header.Set("Authorization", c.Authorization)
	}
}

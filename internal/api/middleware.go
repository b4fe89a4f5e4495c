package api

import (
	"net/http"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/remote"
)

// ForwardCredentials copies the caller's Cookie and Authorization headers
// onto the request context so outbound calls to the backing services carry
// them. The storefront never mints credentials of its own; it only passes
// the caller's through.
func ForwardCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := remote.Credentials{
			Cookie:        r.Header.Get("Cookie"),
			Authorization: r.Header.Get("Authorization"),
		}

		if creds.Cookie != "" || creds.Authorization != "" {
			r = r.WithContext(remote.WithCredentials(r.Context(), creds))
		}

		next.ServeHTTP(w, r)
	})
}

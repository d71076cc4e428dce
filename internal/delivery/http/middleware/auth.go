package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	h "notifier/internal/delivery/http/helpers"
)

// AuthStrategy describes how the shared-secret credential is extracted from a
// request and how a rejection is reported. Exactly one strategy is active per
// deployment, selected at configuration time.
type AuthStrategy struct {
	// Name identifies the strategy in logs.
	Name string
	// Extract pulls the presented credential out of the request. ok is false
	// when the credential is missing or the scheme is wrong.
	Extract func(r *http.Request) (credential string, ok bool)
	// Detail is the 401 response body detail.
	Detail string
	// Challenge, when non-empty, is sent as the WWW-Authenticate header on 401.
	Challenge string
}

// BearerAuth expects "Authorization: Bearer <token>". Default deployment mode.
func BearerAuth() AuthStrategy {
	return AuthStrategy{
		Name: "bearer",
		Extract: func(r *http.Request) (string, bool) {
			auth := r.Header.Get("Authorization")
			scheme, param, found := strings.Cut(auth, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				return "", false
			}
			return strings.TrimSpace(param), true
		},
		Detail:    "Invalid Credentials",
		Challenge: "Bearer",
	}
}

// HeaderAuth expects the raw secret in the X-API-Key header.
func HeaderAuth() AuthStrategy {
	return AuthStrategy{
		Name: "api-key",
		Extract: func(r *http.Request) (string, bool) {
			key := r.Header.Get("X-API-Key")
			return key, key != ""
		},
		Detail: "Invalid Authentication Credentials",
	}
}

// RequireAPIKey returns a wrapper that validates the request credential
// against the configured shared secret using the given strategy. The
// comparison is constant-time. On rejection it responds 401 with the
// strategy's detail message and logs a warning; the presented value is never
// logged. There is a single permission level, so nothing is added to the
// request context on success.
func RequireAPIKey(strategy AuthStrategy, secret string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			credential, ok := strategy.Extract(r)
			if !ok || subtle.ConstantTimeCompare([]byte(credential), []byte(secret)) != 1 {
				logger.Warn("unauthorized access attempt: invalid key or scheme", "strategy", strategy.Name, "path", r.URL.Path)
				if strategy.Challenge != "" {
					w.Header().Set("WWW-Authenticate", strategy.Challenge)
				}
				h.WriteError(w, http.StatusUnauthorized, strategy.Detail)
				return
			}
			next(w, r)
		}
	}
}

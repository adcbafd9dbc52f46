// Package identity resolves the signed-in user from a provider-issued session token.
// Tokens arrive as a bearer Authorization header or in the provider's session cookie;
// the verified token's subject is the user identifier.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

var (
	// ErrAnonymous indicates the request carries no session token.
	ErrAnonymous = errors.New("no session token")
	// ErrInvalidToken indicates the session token failed verification.
	ErrInvalidToken = errors.New("invalid session token")
)

// Verifier validates a raw session token and returns its subject.
type Verifier interface {
	Verify(ctx context.Context, raw string) (string, error)
}

// Links are the provider-hosted account pages rendered in navigation.
type Links struct {
	SignIn  string
	SignUp  string
	SignOut string
}

// System resolves request sessions to user identifiers.
type System interface {
	// Resolve returns the user id of the request's session, ErrAnonymous when the
	// request has no token, or an error wrapping ErrInvalidToken.
	Resolve(r *http.Request) (string, error)
	// Middleware stores the resolved user id in the request context.
	// Requests with missing or invalid tokens continue anonymously.
	Middleware() func(http.Handler) http.Handler
	// Links returns the configured account page URLs.
	Links() Links
}

type identity struct {
	verifier   Verifier
	cookieName string
	links      Links
	logger     *slog.Logger
}

// New creates the identity system for the configured provider.
// The context bounds background JWKS refreshes for the oidc provider.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	var v Verifier
	switch cfg.Provider {
	case ProviderOIDC:
		v = NewOIDCVerifier(ctx, cfg, nil)
	case ProviderHMAC:
		v = NewHMACVerifier(cfg)
	default:
		return nil, fmt.Errorf("unsupported identity provider: %q", cfg.Provider)
	}
	return NewWithVerifier(cfg, v, logger), nil
}

// NewWithVerifier creates an identity system around an existing verifier.
func NewWithVerifier(cfg *Config, v Verifier, logger *slog.Logger) System {
	cookie := cfg.CookieName
	if cookie == "" {
		cookie = DefaultCookieName
	}
	return &identity{
		verifier:   v,
		cookieName: cookie,
		links: Links{
			SignIn:  cfg.SignInURL,
			SignUp:  cfg.SignUpURL,
			SignOut: cfg.SignOutURL,
		},
		logger: logger.With("system", "identity", "provider", cfg.Provider),
	}
}

func (i *identity) Resolve(r *http.Request) (string, error) {
	raw := i.token(r)
	if raw == "" {
		return "", ErrAnonymous
	}

	sub, err := i.verifier.Verify(r.Context(), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if sub == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return sub, nil
}

func (i *identity) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := i.Resolve(r)
			switch {
			case err == nil:
				r = r.WithContext(WithUserID(r.Context(), userID))
			case errors.Is(err, ErrInvalidToken):
				i.logger.Debug("session rejected", "error", err)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (i *identity) Links() Links {
	return i.links
}

func (i *identity) token(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, raw, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(raw)
		}
	}
	if c, err := r.Cookie(i.cookieName); err == nil {
		return c.Value
	}
	return ""
}

type contextKey struct{}

// WithUserID returns a copy of ctx carrying the signed-in user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the signed-in user id stored by Middleware.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

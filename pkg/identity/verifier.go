package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

type oidcVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier verifies RS256 tokens signed by the configured issuer.
// A nil keySet fetches signing keys from the issuer's JWKS endpoint.
func NewOIDCVerifier(ctx context.Context, cfg *Config, keySet oidc.KeySet) Verifier {
	if keySet == nil {
		keySet = oidc.NewRemoteKeySet(ctx, cfg.KeySetURL())
	}
	return &oidcVerifier{
		verifier: oidc.NewVerifier(cfg.Issuer, keySet, &oidc.Config{
			ClientID:          cfg.ClientID,
			SkipClientIDCheck: cfg.SkipClientIDCheck,
		}),
	}
}

func (v *oidcVerifier) Verify(ctx context.Context, raw string) (string, error) {
	token, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return "", err
	}
	return token.Subject, nil
}

type hmacVerifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

// NewHMACVerifier verifies HS256 tokens signed with the configured shared secret.
func NewHMACVerifier(cfg *Config) Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.ClientID != "" && !cfg.SkipClientIDCheck {
		opts = append(opts, jwt.WithAudience(cfg.ClientID))
	}
	return &hmacVerifier{secret: []byte(cfg.Secret), opts: opts}
}

func (v *hmacVerifier) Verify(_ context.Context, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("read subject: %w", err)
	}
	return sub, nil
}

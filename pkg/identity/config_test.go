package identity_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/promptcraft/pkg/identity"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := identity.Config{Issuer: "https://clerk.example.test/", SkipClientIDCheck: true}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Provider != identity.ProviderOIDC {
		t.Errorf("provider = %q, want oidc", cfg.Provider)
	}
	if cfg.CookieName != "__session" {
		t.Errorf("cookie_name = %q, want __session", cfg.CookieName)
	}
	if got := cfg.KeySetURL(); got != "https://clerk.example.test/.well-known/jwks.json" {
		t.Errorf("jwks url = %q", got)
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_ID_PROVIDER", "hmac")
	t.Setenv("TEST_ID_SECRET", "env-secret")
	t.Setenv("TEST_ID_SIGN_IN", "/sign-in")

	env := &identity.Env{
		Provider:  "TEST_ID_PROVIDER",
		Secret:    "TEST_ID_SECRET",
		SignInURL: "TEST_ID_SIGN_IN",
	}

	cfg := identity.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Provider != identity.ProviderHMAC {
		t.Errorf("provider = %q, want hmac", cfg.Provider)
	}
	if cfg.Secret != "env-secret" {
		t.Errorf("secret = %q, want env-secret", cfg.Secret)
	}
	if cfg.SignInURL != "/sign-in" {
		t.Errorf("sign_in_url = %q, want /sign-in", cfg.SignInURL)
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  identity.Config
		want string
	}{
		{"oidc missing issuer", identity.Config{}, "issuer required"},
		{"oidc missing client id", identity.Config{Issuer: "https://clerk.example.test"}, "client_id required"},
		{"hmac missing secret", identity.Config{Provider: identity.ProviderHMAC}, "secret required"},
		{"unsupported provider", identity.Config{Provider: "saml"}, "unsupported provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want containing %q", err, tt.want)
			}
		})
	}
}

package identity

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Supported identity providers.
const (
	ProviderOIDC = "oidc"
	ProviderHMAC = "hmac"
)

// DefaultCookieName is the session cookie set by the hosted identity provider.
const DefaultCookieName = "__session"

// Config selects the session token verifier and the provider-hosted account pages.
type Config struct {
	Provider          string `toml:"provider"`
	Issuer            string `toml:"issuer"`
	ClientID          string `toml:"client_id"`
	JWKSURL           string `toml:"jwks_url"`
	SkipClientIDCheck bool   `toml:"skip_client_id_check"`
	Secret            string `toml:"secret"`
	CookieName        string `toml:"cookie_name"`
	SignInURL         string `toml:"sign_in_url"`
	SignUpURL         string `toml:"sign_up_url"`
	SignOutURL        string `toml:"sign_out_url"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider          string
	Issuer            string
	ClientID          string
	JWKSURL           string
	SkipClientIDCheck string
	Secret            string
	CookieName        string
	SignInURL         string
	SignUpURL         string
	SignOutURL        string
}

// KeySetURL returns the JWKS location, derived from the issuer when unset.
func (c *Config) KeySetURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return strings.TrimSuffix(c.Issuer, "/") + "/.well-known/jwks.json"
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.ClientID != "" {
		c.ClientID = overlay.ClientID
	}
	if overlay.JWKSURL != "" {
		c.JWKSURL = overlay.JWKSURL
	}
	if overlay.SkipClientIDCheck {
		c.SkipClientIDCheck = true
	}
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.SignInURL != "" {
		c.SignInURL = overlay.SignInURL
	}
	if overlay.SignUpURL != "" {
		c.SignUpURL = overlay.SignUpURL
	}
	if overlay.SignOutURL != "" {
		c.SignOutURL = overlay.SignOutURL
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderOIDC
	}
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
}

func (c *Config) loadEnv(env *Env) {
	setString := func(name string, target *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}

	setString(env.Provider, &c.Provider)
	setString(env.Issuer, &c.Issuer)
	setString(env.ClientID, &c.ClientID)
	setString(env.JWKSURL, &c.JWKSURL)
	setString(env.Secret, &c.Secret)
	setString(env.CookieName, &c.CookieName)
	setString(env.SignInURL, &c.SignInURL)
	setString(env.SignUpURL, &c.SignUpURL)
	setString(env.SignOutURL, &c.SignOutURL)

	if env.SkipClientIDCheck != "" {
		if v := os.Getenv(env.SkipClientIDCheck); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.SkipClientIDCheck = b
			}
		}
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOIDC:
		if c.Issuer == "" {
			return fmt.Errorf("issuer required")
		}
		if c.ClientID == "" && !c.SkipClientIDCheck {
			return fmt.Errorf("client_id required unless skip_client_id_check is set")
		}
		if u, err := url.Parse(c.KeySetURL()); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid jwks_url: %q", c.KeySetURL())
		}
	case ProviderHMAC:
		if c.Secret == "" {
			return fmt.Errorf("secret required")
		}
	default:
		return fmt.Errorf("unsupported provider: %q", c.Provider)
	}
	return nil
}

package surveygizmo

import (
	"fmt"
	"time"
)

// DefaultAPIEndpoint is the public SurveyGizmo REST endpoint. The EU instance
// lives at https://restapi.surveygizmo.eu/ and can be selected via
// Config.APIEndpoint.
const DefaultAPIEndpoint = "https://restapi.surveygizmo.com/"

// DefaultAPIVersion is used when Config.APIVersion is left empty.
const DefaultAPIVersion = "head"

// AuthMethod selects how requests are authenticated.
type AuthMethod string

// Supported authentication methods. The user:pass and user:md5 values double
// as the literal query-parameter key carrying the credentials, which is why
// they keep the colon-separated spelling of the remote API.
const (
	AuthUserPass AuthMethod = "user:pass"
	AuthUserMD5  AuthMethod = "user:md5"
	AuthOAuth    AuthMethod = "oauth"
)

// ResponseType selects the wire format requested from the API. When set it is
// appended to the resource tail as a file-extension-like suffix; when empty
// the API returns JSON and responses are decoded before being returned.
type ResponseType string

// Supported response types. The zero value requests JSON and enables
// client-side decoding.
const (
	ResponseJSON  ResponseType = "json"
	ResponsePSON  ResponseType = "pson"
	ResponseXML   ResponseType = "xml"
	ResponseDebug ResponseType = "debug"
)

// Config holds credentials and request preferences for a SurveyGizmo client.
//
// # Authentication
//
// Exactly one AuthMethod must be selected:
//   - AuthUserPass requires Username and Password; they are sent as a
//     "user:pass" query parameter valued "username:password".
//   - AuthUserMD5 requires Username and either MD5Hash or Password. When only
//     Password is given, its MD5 hex digest (of the UTF-8 bytes) is computed
//     on the first prepared request and memoized into MD5Hash.
//   - AuthOAuth requires ConsumerKey, ConsumerSecret, AccessToken, and
//     AccessTokenSecret. Requests are OAuth1-signed through a session that is
//     created lazily on the first call and reused for the client's lifetime.
//
// Validate is invoked before every prepared request; a Config that fails
// validation never reaches the network.
type Config struct {
	// APIEndpoint is the base URL for the REST API. Defaults to
	// DefaultAPIEndpoint when empty. Must end with a slash.
	APIEndpoint string

	// APIVersion is the version segment prefixed to every resource tail,
	// e.g. "v5" or "head". Defaults to DefaultAPIVersion when empty.
	APIVersion string

	// AuthMethod selects the authentication scheme. Required.
	AuthMethod AuthMethod

	// Username and Password authenticate the user:pass and user:md5 methods.
	Username string
	Password string

	// MD5Hash is the MD5 hex digest of Password. Optional for user:md5; when
	// empty it is computed from Password on first use and stored here.
	MD5Hash string

	// OAuth1 credentials, required for AuthOAuth.
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string

	// ResponseType requests a specific wire format. Leave empty for decoded
	// JSON results.
	ResponseType ResponseType

	// Transport holds options forwarded to the HTTP layer.
	Transport TransportOptions

	// Logger receives debug/error events from the HTTP layer. Optional.
	Logger Logger
}

// TransportOptions tunes the underlying HTTP transport. The zero value means
// a default timeout, no retries, and the default user agent.
type TransportOptions struct {
	// Timeout bounds each HTTP request. Zero selects the package default.
	Timeout time.Duration

	// RetryMax enables retries for transient failures when greater than zero.
	// Transient failures propagate immediately by default.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the retry backoff when RetryMax > 0.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
}

// Validate checks that the configured authentication method and its required
// fields are consistent. It has no side effects; all failures wrap
// ErrImproperlyConfigured.
func (c *Config) Validate() error {
	switch c.AuthMethod {
	case AuthUserPass:
		if c.Username == "" || c.Password == "" {
			return fmt.Errorf("%w: username and password required for %q authentication", ErrImproperlyConfigured, AuthUserPass)
		}
	case AuthUserMD5:
		if c.Username == "" {
			return fmt.Errorf("%w: username required for %q authentication", ErrImproperlyConfigured, AuthUserMD5)
		}

		if c.Password == "" && c.MD5Hash == "" {
			return fmt.Errorf("%w: password or md5 hash of password required for %q authentication", ErrImproperlyConfigured, AuthUserMD5)
		}
	case AuthOAuth:
		if c.ConsumerKey == "" || c.ConsumerSecret == "" || c.AccessToken == "" || c.AccessTokenSecret == "" {
			return fmt.Errorf("%w: consumer key and secret, and access token and secret required for %q authentication", ErrImproperlyConfigured, AuthOAuth)
		}
	default:
		return fmt.Errorf("%w: no authentication method provided", ErrImproperlyConfigured)
	}

	switch c.ResponseType {
	case ResponseJSON, ResponsePSON, ResponseXML, ResponseDebug, "":
	default:
		return fmt.Errorf("%w: unknown response type %q", ErrImproperlyConfigured, c.ResponseType)
	}

	return nil
}

// Endpoint returns the configured API endpoint or the package default.
func (c *Config) Endpoint() string {
	if c.APIEndpoint != "" {
		return c.APIEndpoint
	}

	return DefaultAPIEndpoint
}

// Version returns the configured API version or the package default.
func (c *Config) Version() string {
	if c.APIVersion != "" {
		return c.APIVersion
	}

	return DefaultAPIVersion
}

// Package sgclient provides the main entry point for creating SurveyGizmo
// API clients.
package sgclient

import (
	"strings"

	internalclient "github.com/fivetwenty-io/surveygizmo/internal/client"
	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// gizmoClient implements surveygizmo.Client: one Config and one dispatcher
// bound to it. No behavior beyond composition.
type gizmoClient struct {
	config *surveygizmo.Config
	api    surveygizmo.API
}

// Config implements surveygizmo.Client.Config.
func (c *gizmoClient) Config() *surveygizmo.Config {
	return c.config
}

// API implements surveygizmo.Client.API.
func (c *gizmoClient) API() surveygizmo.API {
	return c.api
}

// New creates a SurveyGizmo client from config. The config is not validated
// here; validation runs before every prepared request so that configuration
// errors always surface before network I/O.
func New(config *surveygizmo.Config) (surveygizmo.Client, error) {
	if config == nil {
		return nil, surveygizmo.ErrConfigRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	return &gizmoClient{
		config: config,
		api:    internalclient.New(config),
	}, nil
}

// normalizeEndpoint adds a scheme when missing and guarantees the trailing
// slash the tail concatenation relies on.
func normalizeEndpoint(endpoint string) string {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	return endpoint
}

// NewWithPassword creates a client using user:pass authentication.
func NewWithPassword(username, password string) (surveygizmo.Client, error) {
	return New(&surveygizmo.Config{
		AuthMethod: surveygizmo.AuthUserPass,
		Username:   username,
		Password:   password,
	})
}

// NewWithMD5Hash creates a client using user:md5 authentication with a
// precomputed password digest.
func NewWithMD5Hash(username, md5Hash string) (surveygizmo.Client, error) {
	return New(&surveygizmo.Config{
		AuthMethod: surveygizmo.AuthUserMD5,
		Username:   username,
		MD5Hash:    md5Hash,
	})
}

// NewWithOAuth creates a client using OAuth1 authentication.
func NewWithOAuth(consumerKey, consumerSecret, accessToken, accessTokenSecret string) (surveygizmo.Client, error) {
	return New(&surveygizmo.Config{
		AuthMethod:        surveygizmo.AuthOAuth,
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
	})
}

// Package auth builds the OAuth1-signed HTTP session used for requests when
// the oauth authentication method is selected. Token exchange and request
// signing are delegated wholesale to dghubble/oauth1; this package only
// assembles a reusable session from the four credential strings.
package auth

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// SessionFactory produces a signed *http.Client from OAuth1 credentials. The
// dispatcher accepts one so tests can substitute an unsigned stub.
type SessionFactory func(consumerKey, consumerSecret, accessToken, accessTokenSecret string) *http.Client

// NewSession returns an *http.Client that signs every request with the given
// OAuth1 credentials. The session is safe to reuse for the lifetime of the
// client that created it.
func NewSession(consumerKey, consumerSecret, accessToken, accessTokenSecret string) *http.Client {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	token := oauth1.NewToken(accessToken, accessTokenSecret)

	return config.Client(context.Background(), token)
}

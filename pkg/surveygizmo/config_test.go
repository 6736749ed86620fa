package surveygizmo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  surveygizmo.Config
		wantErr bool
	}{
		{
			name:    "no auth method",
			config:  surveygizmo.Config{},
			wantErr: true,
		},
		{
			name:    "unknown auth method",
			config:  surveygizmo.Config{AuthMethod: "token"},
			wantErr: true,
		},
		{
			name: "user:pass valid",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserPass,
				Username:   "bob",
				Password:   "secret",
			},
		},
		{
			name: "user:pass missing username",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserPass,
				Password:   "secret",
			},
			wantErr: true,
		},
		{
			name: "user:pass missing password",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserPass,
				Username:   "bob",
			},
			wantErr: true,
		},
		{
			name: "user:md5 with password",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserMD5,
				Username:   "bob",
				Password:   "secret",
			},
		},
		{
			name: "user:md5 with precomputed hash",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserMD5,
				Username:   "bob",
				MD5Hash:    "5ebe2294ecd0e0f08eaf25572d5d12dd",
			},
		},
		{
			name: "user:md5 missing username",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserMD5,
				Password:   "secret",
			},
			wantErr: true,
		},
		{
			name: "user:md5 missing password and hash",
			config: surveygizmo.Config{
				AuthMethod: surveygizmo.AuthUserMD5,
				Username:   "bob",
			},
			wantErr: true,
		},
		{
			name: "oauth valid",
			config: surveygizmo.Config{
				AuthMethod:        surveygizmo.AuthOAuth,
				ConsumerKey:       "ck",
				ConsumerSecret:    "cs",
				AccessToken:       "at",
				AccessTokenSecret: "ats",
			},
		},
		{
			name: "oauth missing consumer secret",
			config: surveygizmo.Config{
				AuthMethod:        surveygizmo.AuthOAuth,
				ConsumerKey:       "ck",
				AccessToken:       "at",
				AccessTokenSecret: "ats",
			},
			wantErr: true,
		},
		{
			name: "oauth missing access token",
			config: surveygizmo.Config{
				AuthMethod:        surveygizmo.AuthOAuth,
				ConsumerKey:       "ck",
				ConsumerSecret:    "cs",
				AccessTokenSecret: "ats",
			},
			wantErr: true,
		},
		{
			name: "valid response type",
			config: surveygizmo.Config{
				AuthMethod:   surveygizmo.AuthUserPass,
				Username:     "bob",
				Password:     "secret",
				ResponseType: surveygizmo.ResponseXML,
			},
		},
		{
			name: "unknown response type",
			config: surveygizmo.Config{
				AuthMethod:   surveygizmo.AuthUserPass,
				Username:     "bob",
				Password:     "secret",
				ResponseType: "csv",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, surveygizmo.IsImproperlyConfigured(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateHasNoSideEffects(t *testing.T) {
	t.Parallel()

	config := surveygizmo.Config{
		AuthMethod: surveygizmo.AuthUserMD5,
		Username:   "bob",
		Password:   "secret",
	}

	require.NoError(t, config.Validate())
	assert.Empty(t, config.MD5Hash, "Validate must not compute the digest")
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	config := surveygizmo.Config{}
	assert.Equal(t, "https://restapi.surveygizmo.com/", config.Endpoint())
	assert.Equal(t, "head", config.Version())

	config.APIEndpoint = "https://restapi.surveygizmo.eu/"
	config.APIVersion = "v5"
	assert.Equal(t, "https://restapi.surveygizmo.eu/", config.Endpoint())
	assert.Equal(t, "v5", config.Version())
}

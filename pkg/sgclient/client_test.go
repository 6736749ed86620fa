package sgclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/surveygizmo/pkg/sgclient"
	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := sgclient.New(nil)
		require.ErrorIs(t, err, surveygizmo.ErrConfigRequired)
	})

	t.Run("exposes config and api", func(t *testing.T) {
		t.Parallel()

		config := &surveygizmo.Config{
			AuthMethod: surveygizmo.AuthUserPass,
			Username:   "bob",
			Password:   "secret",
		}

		cli, err := sgclient.New(config)
		require.NoError(t, err)
		assert.Same(t, config, cli.Config())
		require.NotNil(t, cli.API())
	})

	t.Run("normalizes the endpoint", func(t *testing.T) {
		t.Parallel()

		config := &surveygizmo.Config{
			APIEndpoint: "restapi.surveygizmo.eu",
			AuthMethod:  surveygizmo.AuthUserPass,
			Username:    "bob",
			Password:    "secret",
		}

		_, err := sgclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://restapi.surveygizmo.eu/", config.APIEndpoint)
	})

	t.Run("does not validate eagerly", func(t *testing.T) {
		t.Parallel()

		cli, err := sgclient.New(&surveygizmo.Config{})
		require.NoError(t, err)

		_, _, err = cli.API().Prepare("head/survey", nil, false)
		require.Error(t, err)
		assert.True(t, surveygizmo.IsImproperlyConfigured(err))
	})
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	t.Run("password", func(t *testing.T) {
		t.Parallel()

		cli, err := sgclient.NewWithPassword("bob", "secret")
		require.NoError(t, err)
		assert.Equal(t, surveygizmo.AuthUserPass, cli.Config().AuthMethod)
		require.NoError(t, cli.Config().Validate())
	})

	t.Run("md5 hash", func(t *testing.T) {
		t.Parallel()

		cli, err := sgclient.NewWithMD5Hash("bob", "5ebe2294ecd0e0f08eaf25572d5d12dd")
		require.NoError(t, err)
		assert.Equal(t, surveygizmo.AuthUserMD5, cli.Config().AuthMethod)
		require.NoError(t, cli.Config().Validate())
	})

	t.Run("oauth", func(t *testing.T) {
		t.Parallel()

		cli, err := sgclient.NewWithOAuth("ck", "cs", "at", "ats")
		require.NoError(t, err)
		assert.Equal(t, surveygizmo.AuthOAuth, cli.Config().AuthMethod)
		require.NoError(t, cli.Config().Validate())
	})
}

func TestClient_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/head/survey", r.URL.Path)
		assert.Equal(t, "bob:secret", r.URL.Query().Get("user:pass"))
		_, _ = w.Write([]byte(`{"result_ok":true,"data":[]}`))
	}))
	defer server.Close()

	cli, err := sgclient.New(&surveygizmo.Config{
		APIEndpoint: server.URL,
		AuthMethod:  surveygizmo.AuthUserPass,
		Username:    "bob",
		Password:    "secret",
	})
	require.NoError(t, err)

	result, err := cli.API().Call(context.Background(), "survey", "list", nil)
	require.NoError(t, err)

	decoded, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, decoded["result_ok"])
}

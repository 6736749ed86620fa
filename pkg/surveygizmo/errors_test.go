package surveygizmo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("numeric code", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"result_ok":false,"code":401,"message":"Login failed"}`)

		apiErr := surveygizmo.ParseAPIError(401, body)
		require.NotNil(t, apiErr)
		assert.Equal(t, 401, apiErr.StatusCode)
		assert.Equal(t, 401, apiErr.Code)
		assert.Equal(t, "Login failed", apiErr.Message)
		assert.Contains(t, apiErr.Error(), "Login failed")
	})

	t.Run("quoted code", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"result_ok":false,"code":"220","message":"Not found"}`)

		apiErr := surveygizmo.ParseAPIError(404, body)
		require.NotNil(t, apiErr)
		assert.Equal(t, 220, apiErr.Code)
	})

	t.Run("non-envelope body", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, surveygizmo.ParseAPIError(500, []byte("internal server error")))
		assert.Nil(t, surveygizmo.ParseAPIError(500, []byte(`{"result_ok":true}`)))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := &surveygizmo.HTTPError{StatusCode: 500, Body: "boom"}
	assert.Equal(t, "unexpected status 500: boom", err.Error())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	configErr := fmt.Errorf("%w: details", surveygizmo.ErrImproperlyConfigured)
	assert.True(t, surveygizmo.IsImproperlyConfigured(configErr))
	assert.False(t, surveygizmo.IsImproperlyConfigured(surveygizmo.ErrResourceNotFound))

	assert.True(t, surveygizmo.IsNotFound(fmt.Errorf("%w: %q", surveygizmo.ErrResourceNotFound, "nope")))
	assert.True(t, surveygizmo.IsNotFound(fmt.Errorf("%w: %q", surveygizmo.ErrOperationNotFound, "nope")))
	assert.False(t, surveygizmo.IsNotFound(configErr))
}

//nolint:testpackage // Need access to internal helpers
package commands

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

type recordingAPI struct {
	surveygizmo.API

	filters []surveygizmo.Filter
}

func (r *recordingAPI) AddFilter(field, operator, value string) {
	r.filters = append(r.filters, surveygizmo.Filter{Field: field, Operator: operator, Value: value})
}

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	t.Run("parses triples", func(t *testing.T) {
		t.Parallel()

		api := &recordingAPI{}

		err := ApplyFilters(api, []string{"status:==:Complete", "datesubmitted:>=:2025-01-01 00:00:00"})
		require.NoError(t, err)
		require.Len(t, api.filters, 2)
		assert.Equal(t, surveygizmo.Filter{Field: "status", Operator: "==", Value: "Complete"}, api.filters[0])
		// Only the first two colons split; the value keeps its own colons.
		assert.Equal(t, "2025-01-01 00:00:00", api.filters[1].Value)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		api := &recordingAPI{}

		err := ApplyFilters(api, []string{"status=Complete"})
		require.ErrorIs(t, err, ErrInvalidFilterFormat)

		err = ApplyFilters(api, []string{":==:x"})
		require.ErrorIs(t, err, ErrInvalidFilterFormat)
	})
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"page=2", "resultsperpage=50"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"page":           []string{"2"},
		"resultsperpage": []string{"50"},
	}, params)

	_, err = parseParams([]string{"noequals"})
	require.ErrorIs(t, err, ErrInvalidParamFormat)
}

func TestInferAuthMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, surveygizmo.AuthOAuth, inferAuthMethod(&surveygizmo.Config{ConsumerKey: "ck"}))
	assert.Equal(t, surveygizmo.AuthUserMD5, inferAuthMethod(&surveygizmo.Config{MD5Hash: "abc"}))
	assert.Equal(t, surveygizmo.AuthUserPass, inferAuthMethod(&surveygizmo.Config{Username: "bob"}))
}

func TestDecodeInto(t *testing.T) {
	t.Parallel()

	result := map[string]any{
		"result_ok": true,
		"data":      []any{map[string]any{"id": "1", "title": "Exit Poll"}},
	}

	var envelope surveygizmo.ListEnvelope
	require.NoError(t, DecodeInto(result, &envelope))
	assert.True(t, envelope.ResultOK)

	surveys, err := surveygizmo.DecodeList[surveygizmo.Survey](&envelope)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, "Exit Poll", surveys[0].Title)
}

func TestCommandWiring(t *testing.T) {
	t.Parallel()

	surveys := NewSurveysCommand()
	assert.Equal(t, "surveys", surveys.Use)
	assert.Len(t, surveys.Commands(), 4)

	call := NewCallCommand()
	assert.NotNil(t, call.Flags().Lookup("url-fetch"))
	assert.NotNil(t, call.Flags().Lookup("keep"))
	assert.NotNil(t, call.Flags().Lookup("filter"))

	responses := NewResponsesCommand()
	assert.NotNil(t, responses)
	assert.Len(t, responses.Commands(), 2)
}

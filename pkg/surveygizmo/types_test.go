package surveygizmo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

func TestDecodeList(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"result_ok": true,
		"total_count": "1234",
		"page": 1,
		"total_pages": 25,
		"results_per_page": 50,
		"data": [
			{"id": "1", "title": "Customer Satisfaction", "status": "Launched"},
			{"id": "2", "title": "Exit Poll", "status": "Closed"}
		]
	}`)

	var envelope surveygizmo.ListEnvelope
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.True(t, envelope.ResultOK)
	assert.Equal(t, "1234", envelope.TotalCount.String())

	surveys, err := surveygizmo.DecodeList[surveygizmo.Survey](&envelope)
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, "Customer Satisfaction", surveys[0].Title)
	assert.Equal(t, "Closed", surveys[1].Status)
}

func TestDecodeList_EmptyData(t *testing.T) {
	t.Parallel()

	surveys, err := surveygizmo.DecodeList[surveygizmo.Survey](&surveygizmo.ListEnvelope{})
	require.NoError(t, err)
	assert.Empty(t, surveys)
}

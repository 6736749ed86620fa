package surveygizmo_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

func TestFilter_Values(t *testing.T) {
	t.Parallel()

	filter := surveygizmo.Filter{
		Field:    "datesubmitted",
		Operator: ">=",
		Value:    "2025-01-01",
	}

	assert.Equal(t, url.Values{
		"filter[field][0]":    []string{"datesubmitted"},
		"filter[operator][0]": []string{">="},
		"filter[value][0]":    []string{"2025-01-01"},
	}, filter.Values(0))

	// The index embeds the insertion position, not a renumbered slot.
	values := filter.Values(3)
	assert.Equal(t, "datesubmitted", values.Get("filter[field][3]"))
	assert.Empty(t, values.Get("filter[field][0]"))
}

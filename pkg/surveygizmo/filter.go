package surveygizmo

import (
	"fmt"
	"net/url"
)

// Filter narrows a survey-data query to rows matching an operator comparison,
// e.g. {"datesubmitted", ">=", "2025-01-01"}. Filters accumulate on an API
// value via AddFilter and are merged into the query parameters of the next
// prepared request.
//
// Operator legality is not checked client-side; the service rejects operators
// it does not understand. Known operators include ==, !=, >=, <=, >, <,
// IS NULL, IS NOT NULL, and in (comma separated list).
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// Values renders the filter as its query-parameter triad for position index.
// The index is the filter's insertion order and is never renumbered, so a
// retained filter keeps its keys across calls.
func (f Filter) Values(index int) url.Values {
	return url.Values{
		fmt.Sprintf("filter[field][%d]", index):    []string{f.Field},
		fmt.Sprintf("filter[operator][%d]", index): []string{f.Operator},
		fmt.Sprintf("filter[value][%d]", index):    []string{f.Value},
	}
}

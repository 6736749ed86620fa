// Package surveygizmo provides types, interfaces, and helpers for working
// with the SurveyGizmo REST API.
//
// # Overview
//
// The surveygizmo package defines the configuration surface (Config, the
// authentication methods, response types), the query Filter model, the
// operation registry types, and the API and Client interfaces. A concrete
// implementation is provided by the sgclient package, which wires
// configuration, transport, and authentication together. Most consumers
// should import sgclient to construct a client.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/surveygizmo/pkg/sgclient"
//	  "github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := sgclient.NewWithPassword("user@example.com", "password")
//	  if err != nil { log.Fatal(err) }
//
//	  cli.API().AddFilter("status", "==", "Complete")
//	  result, err := cli.API().Call(ctx, "surveyresponse", "list", nil, "1234")
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Filters
//
// Filters accumulate on the API value and are merged into the query
// parameters of the next dispatched call as filter[field][i],
// filter[operator][i], filter[value][i] triads, where i is the filter's
// insertion index. By default filters are consumed by the call; pass
// CallOptions{Keep: true} to retain them.
//
// # Operations and the registry
//
// Each resource exposes named operations, pure functions producing a
// (tail, params) pair. Built-in resources (survey, surveyresponse,
// surveycampaign, surveyquestion, surveypage, contactlist, accountteams) are
// registered at construction; additional resources can be added with
// API.Register. Dispatching through API.Call applies the response-type
// suffix, the API version prefix, filter merging, and authentication before
// executing, or returns the prepared request when CallOptions.URLFetch is
// set.
//
// # Errors
//
// Configuration problems wrap ErrImproperlyConfigured and surface before any
// network I/O. Failing HTTP responses are returned as *APIError when the body
// parses as a SurveyGizmo error envelope, or *HTTPError otherwise. Nothing is
// retried or suppressed by default.
package surveygizmo

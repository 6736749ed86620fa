// Package sgclient provides the primary entry point for constructing a
// SurveyGizmo REST API client that implements the surveygizmo.Client
// interface.
//
// It composes one surveygizmo.Config with one dispatcher bound to it, and
// exposes both through the returned Client. The dispatcher accumulates query
// filters, builds authenticated request URLs, and executes calls against the
// registered resource operations.
//
// Quick start
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
//
//	  cli, err := sgclient.New(&surveygizmo.Config{
//	    AuthMethod: surveygizmo.AuthUserPass,
//	    Username:   "user@example.com",
//	    Password:   "password",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Narrow the next call, then dispatch a registered operation.
//	  cli.API().AddFilter("datesubmitted", ">=", "2025-01-01")
//	  responses, err := cli.API().Call(ctx, "surveyresponse", "list", nil, "1234")
//	  if err != nil { log.Fatal(err) }
//	  _ = responses
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithPassword,
// NewWithMD5Hash, and NewWithOAuth that wrap New with the appropriate
// configuration.
package sgclient

package surveygizmo

import (
	"context"
	"net/url"
)

// Operation builds the resource-specific portion of a request: the URL tail
// (resource path without domain or version segment) plus any query
// parameters. Operations are pure; they perform no I/O and no validation.
// Positional arguments are interpolated into the tail, e.g. a survey ID.
type Operation func(args ...string) (tail string, params url.Values, err error)

// CallOptions shape a single dispatched call. The zero value executes the
// call and clears accumulated filters afterwards.
type CallOptions struct {
	// Keep retains accumulated filters for the next call instead of clearing
	// them once they have been merged into this call's parameters.
	Keep bool

	// URLFetch returns the prepared request instead of executing it. Useful
	// for inspection and tests; the transport is never touched.
	URLFetch bool

	// Params are extra query parameters merged into the request.
	Params url.Values
}

// PreparedRequest is the finalized (url, params) pair a call would execute.
// Returned when CallOptions.URLFetch is set.
type PreparedRequest struct {
	URL    string
	Params url.Values
}

// API accumulates filters, builds authenticated requests, and executes them.
//
// A single API value is intended for one logical sequential caller: the
// filter list, the memoized MD5 hash, and the memoized OAuth session are
// mutated without synchronization. Use one API per goroutine, or guard calls
// externally.
type API interface {
	// AddFilter appends a query filter applied to the next call.
	AddFilter(field, operator, value string)

	// Filters returns the currently accumulated filters in insertion order.
	Filters() []Filter

	// Prepare validates the configuration and finalizes the (url, params)
	// pair for a resource tail. No network I/O occurs.
	Prepare(tail string, params url.Values, keep bool) (string, url.Values, error)

	// Execute performs a GET against a prepared URL. With an empty
	// ResponseType the decoded JSON structure is returned; otherwise the raw
	// response text.
	Execute(ctx context.Context, rawurl string, params url.Values) (any, error)

	// Call dispatches a registered operation through the full
	// prepare-and-execute pipeline. With opts.URLFetch set it returns a
	// *PreparedRequest instead of the response.
	Call(ctx context.Context, resource, operation string, opts *CallOptions, args ...string) (any, error)

	// Register adds (or replaces) a resource's named operations.
	Register(resource string, ops map[string]Operation)

	// Resources returns the registered resource names, sorted.
	Resources() []string

	// Operations returns a resource's registered operation names, sorted.
	Operations(resource string) []string
}

// Client is the facade: one Config and one API bound to it.
type Client interface {
	Config() *Config
	API() API
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

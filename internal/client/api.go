// Package client implements the surveygizmo.API dispatcher: filter
// accumulation, request preparation, authentication selection, and execution
// over the internal HTTP transport.
package client

import (
	"context"
	"crypto/md5" // #nosec G501 -- the remote API authenticates with MD5 digests
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/fivetwenty-io/surveygizmo/internal/auth"
	sghttp "github.com/fivetwenty-io/surveygizmo/internal/http"
	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// wrappedOperation is a registered operation with the full
// prepare-and-execute pipeline applied around it.
type wrappedOperation func(ctx context.Context, opts *surveygizmo.CallOptions, args ...string) (any, error)

// API implements surveygizmo.API. Not safe for unsynchronized concurrent use;
// run one API per logical sequential caller.
type API struct {
	config         *surveygizmo.Config
	httpClient     *sghttp.Client
	httpOpts       []sghttp.Option
	sessionFactory auth.SessionFactory

	// session is the memoized OAuth transport, created on the first oauth
	// call and reused for the lifetime of the API.
	session *sghttp.Client

	filters  []surveygizmo.Filter
	registry map[string]map[string]wrappedOperation
}

// Option configures an API.
type Option func(*API)

// WithSessionFactory replaces the OAuth1 session constructor. Used by tests
// to avoid real request signing.
func WithSessionFactory(factory auth.SessionFactory) Option {
	return func(a *API) {
		a.sessionFactory = factory
	}
}

// New creates a dispatcher bound to config and registers the built-in
// resource operations.
func New(config *surveygizmo.Config, opts ...Option) *API {
	httpOpts := transportOptions(config)

	api := &API{
		config:         config,
		httpClient:     sghttp.NewClient(httpOpts...),
		httpOpts:       httpOpts,
		sessionFactory: auth.NewSession,
		registry:       make(map[string]map[string]wrappedOperation),
	}

	for _, opt := range opts {
		opt(api)
	}

	registerBuiltins(api)

	return api
}

// transportOptions maps the config's transport preferences onto HTTP client
// options.
func transportOptions(config *surveygizmo.Config) []sghttp.Option {
	var opts []sghttp.Option

	if config.Logger != nil {
		opts = append(opts, sghttp.WithLogger(config.Logger))
	}

	if config.Transport.Debug {
		opts = append(opts, sghttp.WithDebug(true))
	}

	if config.Transport.UserAgent != "" {
		opts = append(opts, sghttp.WithUserAgent(config.Transport.UserAgent))
	}

	if config.Transport.Timeout > 0 {
		opts = append(opts, sghttp.WithTimeout(config.Transport.Timeout))
	}

	if config.Transport.RetryMax > 0 {
		opts = append(opts, sghttp.WithRetryConfig(
			config.Transport.RetryMax,
			config.Transport.RetryWaitMin,
			config.Transport.RetryWaitMax,
		))
	}

	return opts
}

// AddFilter implements surveygizmo.API.AddFilter.
func (a *API) AddFilter(field, operator, value string) {
	a.filters = append(a.filters, surveygizmo.Filter{
		Field:    field,
		Operator: operator,
		Value:    value,
	})
}

// Filters implements surveygizmo.API.Filters.
func (a *API) Filters() []surveygizmo.Filter {
	out := make([]surveygizmo.Filter, len(a.filters))
	copy(out, a.filters)

	return out
}

// Prepare implements surveygizmo.API.Prepare. It validates the configuration,
// merges accumulated filters and authentication parameters into params, and
// returns the finalized (url, params) pair. No network I/O occurs.
func (a *API) Prepare(tail string, params url.Values, keep bool) (string, url.Values, error) {
	err := a.config.Validate()
	if err != nil {
		return "", nil, err
	}

	merged := url.Values{}
	for key, values := range params {
		merged[key] = values
	}

	for i, filter := range a.filters {
		for key, values := range filter.Values(i) {
			merged[key] = values
		}
	}

	if !keep {
		a.filters = nil
	}

	switch a.config.AuthMethod {
	case surveygizmo.AuthUserPass:
		merged.Set(string(surveygizmo.AuthUserPass), a.config.Username+":"+a.config.Password)
	case surveygizmo.AuthUserMD5:
		if a.config.MD5Hash == "" {
			// Digest of the UTF-8 bytes of the password, memoized so
			// subsequent calls skip the hashing.
			sum := md5.Sum([]byte(a.config.Password)) // #nosec G401
			a.config.MD5Hash = hex.EncodeToString(sum[:])
		}

		merged.Set(string(surveygizmo.AuthUserMD5), a.config.Username+":"+a.config.MD5Hash)
	case surveygizmo.AuthOAuth:
		// Signing happens at execute time through the session.
	}

	return a.config.Endpoint() + tail, merged, nil
}

// Execute implements surveygizmo.API.Execute. With an empty ResponseType the
// decoded JSON structure is returned; otherwise the raw response text.
func (a *API) Execute(ctx context.Context, rawurl string, params url.Values) (any, error) {
	transport := a.httpClient

	if a.config.AuthMethod == surveygizmo.AuthOAuth {
		if a.session == nil {
			signed := a.sessionFactory(
				a.config.ConsumerKey, a.config.ConsumerSecret,
				a.config.AccessToken, a.config.AccessTokenSecret,
			)

			sessionOpts := append([]sghttp.Option{}, a.httpOpts...)
			sessionOpts = append(sessionOpts, sghttp.WithHTTPClient(signed))
			a.session = sghttp.NewClient(sessionOpts...)
		}

		transport = a.session
	}

	resp, err := transport.Get(ctx, rawurl, params)
	if err != nil {
		return nil, err
	}

	if a.config.ResponseType != "" {
		return string(resp.Body), nil
	}

	var result any

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// Call implements surveygizmo.API.Call.
func (a *API) Call(ctx context.Context, resource, operation string, opts *surveygizmo.CallOptions, args ...string) (any, error) {
	ops, ok := a.registry[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %q", surveygizmo.ErrResourceNotFound, resource)
	}

	call, ok := ops[operation]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no operation %q", surveygizmo.ErrOperationNotFound, resource, operation)
	}

	return call(ctx, opts, args...)
}

// Register implements surveygizmo.API.Register. The wrapping happens here, at
// registration time, so lookups always yield executable calls.
func (a *API) Register(resource string, ops map[string]surveygizmo.Operation) {
	wrapped := make(map[string]wrappedOperation, len(ops))
	for name, op := range ops {
		wrapped[name] = a.wrap(op)
	}

	a.registry[resource] = wrapped
}

// Resources implements surveygizmo.API.Resources.
func (a *API) Resources() []string {
	names := make([]string, 0, len(a.registry))
	for name := range a.registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Operations implements surveygizmo.API.Operations.
func (a *API) Operations(resource string) []string {
	ops, ok := a.registry[resource]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// wrap turns a pure operation into a call that runs the full pipeline:
// extra params, response-type suffix, version prefix, Prepare, Execute.
func (a *API) wrap(op surveygizmo.Operation) wrappedOperation {
	return func(ctx context.Context, opts *surveygizmo.CallOptions, args ...string) (any, error) {
		if opts == nil {
			opts = &surveygizmo.CallOptions{}
		}

		tail, params, err := op(args...)
		if err != nil {
			return nil, err
		}

		if params == nil {
			params = url.Values{}
		}

		for key, values := range opts.Params {
			params[key] = values
		}

		if responseType := a.config.ResponseType; responseType != "" {
			tail = fmt.Sprintf("%s.%s", tail, responseType)
		}

		tail = fmt.Sprintf("%s/%s", a.config.Version(), tail)

		rawurl, prepared, err := a.Prepare(tail, params, opts.Keep)
		if err != nil {
			return nil, err
		}

		if opts.URLFetch {
			return &surveygizmo.PreparedRequest{URL: rawurl, Params: prepared}, nil
		}

		return a.Execute(ctx, rawurl, prepared)
	}
}

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/surveygizmo/pkg/sgclient"
	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidFilterFormat = errors.New("invalid filter format, expected field:operator:value")
	ErrInvalidParamFormat  = errors.New("invalid parameter format, expected key=value")
	ErrCallArguments       = errors.New("call requires RESOURCE and OPERATION arguments")
)

// CreateClient builds a client from the resolved viper configuration.
func CreateClient() (surveygizmo.Client, error) {
	config := &surveygizmo.Config{
		APIEndpoint:       viper.GetString("endpoint"),
		APIVersion:        viper.GetString("api-version"),
		AuthMethod:        surveygizmo.AuthMethod(viper.GetString("auth-method")),
		Username:          viper.GetString("username"),
		Password:          viper.GetString("password"),
		MD5Hash:           viper.GetString("md5-hash"),
		ConsumerKey:       viper.GetString("consumer-key"),
		ConsumerSecret:    viper.GetString("consumer-secret"),
		AccessToken:       viper.GetString("access-token"),
		AccessTokenSecret: viper.GetString("access-token-secret"),
		ResponseType:      surveygizmo.ResponseType(viper.GetString("response-type")),
	}

	if config.AuthMethod == "" {
		config.AuthMethod = inferAuthMethod(config)
	}

	if viper.GetBool("verbose") {
		config.Logger = NewZerologLogger()
		config.Transport.Debug = true
	}

	return sgclient.New(config)
}

// inferAuthMethod picks the method implied by the credentials that were
// actually supplied, so most invocations don't need --auth-method.
func inferAuthMethod(config *surveygizmo.Config) surveygizmo.AuthMethod {
	switch {
	case config.ConsumerKey != "":
		return surveygizmo.AuthOAuth
	case config.MD5Hash != "":
		return surveygizmo.AuthUserMD5
	default:
		return surveygizmo.AuthUserPass
	}
}

// contextFor returns the context commands dispatch with.
func contextFor() context.Context {
	return context.Background()
}

// pageParams builds pagination query parameters, omitting unset values.
func pageParams(page, perPage int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	if perPage > 0 {
		params.Set("resultsperpage", strconv.Itoa(perPage))
	}

	return params
}

// ApplyFilters parses repeated field:operator:value flags onto the API.
func ApplyFilters(api surveygizmo.API, filters []string) error {
	for _, raw := range filters {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("%w: %q", ErrInvalidFilterFormat, raw)
		}

		api.AddFilter(parts[0], parts[1], parts[2])
	}

	return nil
}

// DecodeInto re-marshals a dynamically decoded result into a typed target.
func DecodeInto(result any, target any) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	err = json.Unmarshal(raw, target)
	if err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}

	return nil
}

// OutputStructured renders v as indented JSON or YAML on stdout.
func OutputStructured(format string, v any) error {
	switch format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(v)
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	}
}

// NewZerologLogger adapts a console zerolog logger to the surveygizmo.Logger
// interface.
func NewZerologLogger() surveygizmo.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &zerologAdapter{logger: logger}
}

type zerologAdapter struct {
	logger zerolog.Logger
}

func (z *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

package surveygizmo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	// ErrImproperlyConfigured is wrapped by every validation failure. Use
	// IsImproperlyConfigured (or errors.Is) to detect it.
	ErrImproperlyConfigured = errors.New("improperly configured")

	ErrConfigRequired     = errors.New("config is required")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrOperationNotFound  = errors.New("operation not found")
	ErrOperationArguments = errors.New("wrong number of operation arguments")
)

// HTTPError is returned when the API responds with a non-2xx status. The body
// is carried unmodified so callers can inspect whatever the service returned.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// APIError represents a SurveyGizmo error envelope, returned when a failing
// response body parses as {"result_ok": false, "code": ..., "message": ...}.
type APIError struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d, status: %d)", e.Message, e.Code, e.StatusCode)
}

// errorEnvelope mirrors the failure shape of API responses.
type errorEnvelope struct {
	ResultOK bool            `json:"result_ok"`
	Code     json.RawMessage `json:"code"`
	Message  string          `json:"message"`
}

// ParseAPIError attempts to interpret a failing response body as a
// SurveyGizmo error envelope. It returns nil when the body has another shape.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.ResultOK || envelope.Message == "" {
		return nil
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    envelope.Message,
	}

	// The service is inconsistent about the code field: sometimes a number,
	// sometimes a quoted string.
	if len(envelope.Code) > 0 {
		var code int
		if json.Unmarshal(envelope.Code, &code) == nil {
			apiErr.Code = code
		} else {
			var s string
			if json.Unmarshal(envelope.Code, &s) == nil {
				_, _ = fmt.Sscanf(s, "%d", &apiErr.Code)
			}
		}
	}

	return apiErr
}

// IsImproperlyConfigured checks if the error is a configuration error.
func IsImproperlyConfigured(err error) bool {
	return errors.Is(err, ErrImproperlyConfigured)
}

// IsNotFound checks if the error is a registry lookup failure for either a
// resource or one of its operations.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, ErrOperationNotFound)
}

package weather

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrorKind tells callers which stage of a lookup failed.
type ErrorKind int

const (
	// KindNetwork means the provider could not be reached.
	KindNetwork ErrorKind = iota + 1
	// KindAPI means the provider answered with a non-success status.
	KindAPI
	// KindDecode means the body did not match the expected schema.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is returned by every Client call that fails.
type Error struct {
	Kind ErrorKind
	// Endpoint is the provider path, e.g. "/weather".
	Endpoint string
	// StatusCode and Body are set for KindAPI.
	StatusCode int
	Body       string
	// ProviderCode is the provider's cod field, e.g. "404". The provider sends
	// it as a number or a string; it is always kept as a string here.
	ProviderCode string
	// Message is the provider's own error message, when it sent one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		msg := e.Message
		if msg == "" {
			msg = strings.TrimSpace(e.Body)
		}
		if msg == "" {
			return fmt.Sprintf("weather api error (HTTP %d)", e.StatusCode)
		}
		return fmt.Sprintf("weather api error (HTTP %d): %s", e.StatusCode, msg)
	case KindDecode:
		return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("request %s: %v", e.Endpoint, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// apiErrorBody is the provider's error envelope. The API returns cod as an
// int or a string depending on the endpoint.
type apiErrorBody struct {
	Code    string `mapstructure:"cod"`
	Message string `mapstructure:"message"`
}

func parseErrorBody(body []byte) apiErrorBody {
	var eb apiErrorBody
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return eb
	}
	_ = mapstructure.WeakDecode(raw, &eb)
	return eb
}

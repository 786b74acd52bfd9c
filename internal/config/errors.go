package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissing is wrapped by the error returned when neither the config nor the
// template file exists.
var ErrMissing = errors.New("configuration file not found")

// ErrorKind separates missing configuration from configuration that exists
// but cannot be used.
type ErrorKind int

const (
	KindMissing ErrorKind = iota + 1
	KindInvalid
)

// Error is returned by Load and Validate. Both kinds are fatal at startup.
type Error struct {
	Kind     ErrorKind
	Path     string
	Template string
	// Field and Reason are set for KindInvalid.
	Field  string
	Reason string
	// TemplateOnly is set when the values came from the template alone.
	TemplateOnly bool
	Err          error
}

func invalid(field, reason string) *Error {
	return &Error{Kind: KindInvalid, Field: field, Reason: reason}
}

func (e *Error) Error() string {
	if e.Kind == KindMissing {
		return fmt.Sprintf("%s: neither %s nor %s exists", ErrMissing, e.Path, e.Template)
	}
	var b strings.Builder
	b.WriteString("invalid configuration")
	if e.Field != "" {
		b.WriteString(": " + e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Remediation tells the user how to fix the problem.
func (e *Error) Remediation() string {
	switch {
	case e.Kind == KindMissing:
		return fmt.Sprintf("Create %s with your API key, e.g. run `weatherstation init --api-key <key>`,\n"+
			"or copy %s to %s and edit it.", e.Path, e.Template, e.Path)
	case e.TemplateOnly:
		return fmt.Sprintf("Only %s was found. Copy it to %s and set api_key,\n"+
			"or run `weatherstation init --api-key <key>`.", e.Template, e.Path)
	case e.Field == "api_key":
		return "Set api_key in your config file or export WEATHER_API_KEY.\n" +
			"Get a key at https://home.openweathermap.org/api_keys."
	case e.Field != "":
		return fmt.Sprintf("Fix %q in %s.", e.Field, e.Path)
	}
	return fmt.Sprintf("Check the syntax of %s.", e.Path)
}

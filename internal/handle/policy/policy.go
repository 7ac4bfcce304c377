// Package policy decides whether failures to read historical chain state are tolerated.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingData marks lookups of data that is absent from historical state.
var ErrMissingData = errors.New("missing data")

// ErrorAction is the reaction to a failed historical lookup.
type ErrorAction int

const (
	// Default surfaces the failure as a fatal error.
	Default ErrorAction = iota
	// Skip drops the lookup and continues.
	Skip
	// Warn drops the lookup, continues and logs a warning.
	Warn
)

func (a ErrorAction) String() string {
	switch a {
	case Skip:
		return "skip"
	case Warn:
		return "warn"
	default:
		return "default"
	}
}

// Tolerated reports whether processing continues after a failure handled by a.
func (a ErrorAction) Tolerated() bool {
	return a == Skip || a == Warn
}

// ParseErrorAction parses the textual form of an ErrorAction.
func ParseErrorAction(value string) (ErrorAction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "default", "fail":
		return Default, nil
	case "skip":
		return Skip, nil
	case "warn":
		return Warn, nil
	default:
		return Default, fmt.Errorf("unknown error action %q", value)
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (a *ErrorAction) UnmarshalFlag(value string) error {
	parsed, err := ParseErrorAction(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ErrorAction) UnmarshalText(text []byte) error {
	return a.UnmarshalFlag(string(text))
}

// RuntimePolicy is shared, read-only configuration copied into every reducer.
type RuntimePolicy struct {
	MissingData  ErrorAction `yaml:"missing_data"`
	LookupErrors ErrorAction `yaml:"lookup_errors"`
}

// ActionFor returns the action configured for err.
// Cancellation is never tolerated.
func (p RuntimePolicy) ActionFor(err error) ErrorAction {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Default
	}
	if errors.Is(err, ErrMissingData) {
		return p.MissingData
	}
	return p.LookupErrors
}

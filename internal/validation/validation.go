// Package validation checks caller input before any network call is made.
package validation

import (
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Error is a malformed-input error raised at the adapter boundary, before
// any request is issued.
type Error struct {
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Reason)
}

// BaseURL validates that a URL uses http or https and carries a host.
func BaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return &Error{Param: "base URL", Reason: fmt.Sprintf("%q is not a valid URL: %v", raw, err)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &Error{Param: "base URL", Reason: fmt.Sprintf("scheme %q must be http or https", parsed.Scheme)}
	}
	if parsed.Host == "" {
		return &Error{Param: "base URL", Reason: fmt.Sprintf("%q is missing a host", raw)}
	}
	return nil
}

// PositiveInt validates that value > 0.
func PositiveInt(value int, name string) error {
	if value <= 0 {
		return &Error{Param: name, Reason: fmt.Sprintf("must be positive, got %d", value)}
	}
	return nil
}

// NonNegativeInt validates that value >= 0.
func NonNegativeInt(value int, name string) error {
	if value < 0 {
		return &Error{Param: name, Reason: fmt.Sprintf("must be non-negative, got %d", value)}
	}
	return nil
}

// Enum validates that value is one of allowed. Empty values are skipped so
// optional filters stay optional. Invalid values get a fuzzy "did you mean"
// hint when a close candidate exists.
func Enum(value string, allowed []string, name string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	reason := fmt.Sprintf("%q is invalid: must be one of [%s]", value, strings.Join(sorted, ", "))
	if suggestion := closest(value, allowed); suggestion != "" {
		reason += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return &Error{Param: name, Reason: reason}
}

// closest returns the best fuzzy match for value among candidates, or ""
// when nothing matches.
func closest(value string, candidates []string) string {
	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	matches := fuzzy.Find(strings.ToLower(value), lowered)
	if len(matches) == 0 {
		return ""
	}
	return candidates[matches[0].Index]
}

// WarnPlainHTTPToken logs a warning when an auth token would travel over
// plain HTTP.
func WarnPlainHTTPToken(rawURL string, hasToken bool) {
	if !hasToken {
		return
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme != "http" {
		return
	}
	slog.Warn("sending auth token over plain HTTP, consider using HTTPS in production", "url", rawURL)
}

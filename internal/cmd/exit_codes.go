package cmd

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
	"github.com/sapphire-forecast/sapphire-cli/internal/config"
	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

const (
	exitOK        = 0
	exitGeneric   = 1
	exitUsage     = 2
	exitAuth      = 3
	exitForbidden = 4
	exitNetwork   = 5
)

// ExitCode maps an error to a process exit code so scripts can distinguish
// auth problems, connectivity problems, and bad invocations.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if api.IsAuthenticationError(err) || errors.Is(err, config.ErrNotConfigured) {
		return exitAuth
	}
	if api.IsAuthorizationError(err) {
		return exitForbidden
	}
	if api.IsConnectivityError(err) {
		return exitNetwork
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		return exitUsage
	}
	return exitGeneric
}

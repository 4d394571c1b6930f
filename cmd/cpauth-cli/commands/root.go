// Package commands implements the cpauth-cli command tree
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cpauth/internal/adapters/platforms"
	"cpauth/internal/platform/config"
	"cpauth/internal/services/verify/domain"
	verifymod "cpauth/internal/services/verify/module"

	"github.com/spf13/cobra"
)

// Process exit codes, one per outcome
const (
	ExitVerified    = 0
	ExitNotVerified = 1
	ExitFailed      = 2
)

// loadOptions reads CPAUTH_PLATFORMS_* the same way the API does
var loadOptions = func() platforms.Options {
	return verifymod.FromConfig(config.New().Prefix("CPAUTH_")).Platforms
}

var newService = func(o platforms.Options) domain.ServicePort { return verifymod.NewService(o) }

// exitError carries an exit code through cobra; err may be nil when the output already said it all
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// NewRoot builds the command tree
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "cpauth-cli",
		Short:         "cpauth-cli checks ownership of competitive programming accounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newVerifyCmd(), newPlatformsCmd())
	return root
}

// ExecuteContext runs the CLI with args and returns the process exit code
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRoot()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitVerified
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "error:", err)
	return ExitFailed
}

package commands

import (
	"context"
	"time"

	"cpauth/internal/services/verify/domain"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const outcomeFailed = "failed"

// report is the printed result of one verification
type report struct {
	Platform  string `json:"platform"         yaml:"platform"`
	Username  string `json:"username"         yaml:"username"`
	Outcome   string `json:"outcome"          yaml:"outcome"`
	Verified  bool   `json:"verified"         yaml:"verified"`
	AttemptID string `json:"attempt_id"       yaml:"attempt_id"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func newVerifyCmd() *cobra.Command {
	var (
		username string
		code     string
		output   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:     "verify <platform>",
		Short:   "Checks that the code appears in the public profile of the account.",
		Example: "  cpauth-cli verify codeforces --username tourist --code ABC123",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return &exitError{code: ExitFailed, err: err}
			}
			p, err := domain.ParsePlatform(args[0])
			if err != nil {
				return &exitError{code: ExitFailed, err: err}
			}

			o := loadOptions()
			if timeout > 0 {
				o.Timeout = timeout
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			res, verr := newService(o).Verify(ctx, domain.VerificationRequest{
				Platform: p,
				Username: username,
				Code:     code,
			})

			rep := report{
				Platform:  p.String(),
				Username:  username,
				Outcome:   res.Outcome.String(),
				Verified:  verr == nil && res.Verified(),
				AttemptID: res.AttemptID.String(),
			}
			exit := ExitNotVerified
			switch {
			case verr != nil:
				rep.Outcome, rep.Reason = outcomeFailed, verr.Error()
				exit = ExitFailed
			case rep.Verified:
				exit = ExitVerified
			}

			if err := render(cmd.OutOrStdout(), output, rep, func(t table.Writer) {
				t.AppendHeader(table.Row{"Platform", "Username", "Outcome", "Attempt"})
				t.AppendRow(table.Row{rep.Platform, rep.Username, rep.Outcome, rep.AttemptID})
				if rep.Reason != "" {
					t.AppendFooter(table.Row{"Reason", rep.Reason})
				}
			}); err != nil {
				return &exitError{code: ExitFailed, err: err}
			}
			if exit != ExitVerified {
				return &exitError{code: exit}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account handle on the platform")
	cmd.Flags().StringVarP(&code, "code", "c", "", "verification code the user placed in their profile")
	cmd.Flags().StringVarP(&output, "output", "o", FormatTable, "output format: table, json or yaml")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall deadline for the check (0 = none)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

package commands

import (
	"cpauth/internal/adapters/platforms"
	"cpauth/internal/services/verify/domain"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type platformRow struct {
	Platform string `json:"platform" yaml:"platform"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

func endpointOf(o platforms.Options, p domain.Platform) string {
	switch p {
	case domain.CodeChef:
		return o.CodeChefBaseURL
	case domain.LeetCode:
		return o.LeetCodeGraphQLURL
	case domain.Codeforces:
		return o.CodeforcesAPIURL
	}
	return ""
}

func newPlatformsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Lists the supported platforms and the endpoints they are checked against.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(output); err != nil {
				return &exitError{code: ExitFailed, err: err}
			}
			o := loadOptions().WithDefaults()

			var rows []platformRow
			for _, p := range newService(o).Platforms() {
				rows = append(rows, platformRow{Platform: p.String(), Endpoint: endpointOf(o, p)})
			}

			err := render(cmd.OutOrStdout(), output, rows, func(t table.Writer) {
				t.AppendHeader(table.Row{"Platform", "Endpoint"})
				for _, r := range rows {
					t.AppendRow(table.Row{r.Platform, r.Endpoint})
				}
			})
			if err != nil {
				return &exitError{code: ExitFailed, err: err}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", FormatTable, "output format: table, json or yaml")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexdata/portfolio/internal/portfolio"
	"github.com/alexdata/portfolio/internal/web"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders the portfolio into a static directory",
	Long: `The build command writes index.html, one page per project filter, the
chart data and the static assets into the output directory (default
build.out, ./public). The directory is emptied first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := buildOut
		if out == "" {
			out = appConfig.Build.Out
		}
		if err := portfolio.Validate(portfolio.All()); err != nil {
			return fmt.Errorf("invalid portfolio content: %w", err)
		}
		if err := web.Build(out, appConfig.Site); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Site built in %s\n", out)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides build.out)")
	rootCmd.AddCommand(buildCmd)
}

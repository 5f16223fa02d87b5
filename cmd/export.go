package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexdata/portfolio/internal/portfolio"
)

var errUnknownFormat = errors.New("unknown export format")

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Prints the portfolio content as YAML or JSON",
	// Only the data goes out, so the logger and its file sink stay off.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeExport(cmd.OutOrStdout(), exportFormat)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}

func writeExport(w io.Writer, format string) error {
	content := portfolio.All()

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(content); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q: use yaml or json", errUnknownFormat, format)
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/logger"
)

var cfgFile string
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "alexdata",
	Short: "Personal portfolio server for Alex Johnson",
	Long: `alexdata serves a single-page data science portfolio with a filterable
project gallery, skill charts and a contact section. Without a subcommand it
starts the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ./configs/config.yaml)")
	rootCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides server.port)")
}

func initializeConfig() error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := logger.Init(appConfig.Log, appConfig.Server.Mode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if f := appConfig.File(); f != "" {
		logger.Log.Info("using config file", zap.String("file", f))
	} else {
		logger.Log.Debug("no config file found, using defaults and environment")
	}
	return nil
}

func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/logger"
	"github.com/alexdata/portfolio/internal/portfolio"
	"github.com/alexdata/portfolio/internal/web"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the portfolio web server",
	Long: `The serve command starts the HTTP server on server.port. Editing the
config file while it runs reloads the log level.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if servePort != "" {
		appConfig.Server.Port = servePort
		if err := appConfig.Validate(); err != nil {
			return err
		}
	}
	if err := portfolio.Validate(portfolio.All()); err != nil {
		return fmt.Errorf("invalid portfolio content: %w", err)
	}

	appConfig.Watch(func(next *config.Config) {
		if err := logger.SetLevel(next.Log.Level); err != nil {
			logger.Log.Warn("config reload: bad log level", zap.Error(err))
			return
		}
		logger.Log.Info("config reloaded", zap.String("log_level", next.Log.Level))
	}, func(err error) {
		logger.Log.Warn("config reload rejected", zap.Error(err))
	})

	srv, err := web.New(appConfig)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}

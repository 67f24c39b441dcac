package cmd

import (
	"fmt"
	"os"

	"github.com/naka-gawa/github-resume/internal/config"
	"github.com/naka-gawa/github-resume/internal/gateway"
	"github.com/naka-gawa/github-resume/internal/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app bundles what every command needs once flags and environment are resolved.
type app struct {
	cfg        *config.Config
	logger     *logrus.Logger
	aggregator *usecase.Aggregator
}

// newApp loads the configuration, applies the flags over it and wires the
// gateway into a new Aggregator.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("no GitHub user given: set --user or GITHUB_USER")
	}

	logger := newLogger(cmd)
	if cfg.Token == "" {
		logger.Debug("GITHUB_TOKEN is not set, using unauthenticated requests")
	}

	githubGateway, err := gateway.NewGitHubGateway(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return &app{
		cfg:        cfg,
		logger:     logger,
		aggregator: usecase.NewAggregator(githubGateway, logger, cfg.Concurrency),
	}, nil
}

// loadConfig reads the environment, applies the flags and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides the configuration with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.User, _ = flags.GetString("user")
	}
	if flags.Changed("token") {
		cfg.Token, _ = flags.GetString("token")
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("api-url") {
		cfg.APIBaseURL, _ = flags.GetString("api-url")
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.OutputDir, _ = flags.GetString("out")
	}
	return cfg.Validate()
}

// newLogger writes warnings to stderr, and debug progress too when --verbose is set.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// exitOnError prints err and exits with status 1.
func exitOnError(format string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, format+": %v\n", err)
		os.Exit(1)
	}
}

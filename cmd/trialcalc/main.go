package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kydenul/trialcalc"
)

var (
	logLevel   = ""
	configPath = ""
)

var (
	configManager *trialcalc.ConfigManager
	currentConfig = trialcalc.DefaultConfig()
)

func setupLogger(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func loadConfig() error {
	cm := trialcalc.NewConfigManager()
	if configPath != "" {
		cm = trialcalc.NewConfigManagerWithFile(configPath)
	}
	cm.SetLogger(trialcalc.NewDefaultLogger())

	cfg, err := cm.LoadConfig()
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to load config")
	}

	if !cfg.Display.Color {
		color.NoColor = true
	}

	configManager, currentConfig = cm, cfg
	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, trialcalc.ErrConfigInvalid) || errors.Is(err, trialcalc.ErrConfigLoad) {
		fmt.Fprintln(os.Stderr, "\nError: the configuration could not be used")
		fmt.Fprintln(os.Stderr, "  - Check trialcalc.yaml or the file passed with --config")
		fmt.Fprintln(os.Stderr, "  - Environment variables prefixed with TRIALCALC_ override the file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		handleCmdError(err)
		stop()
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trialcalc",
		Short: "trialcalc computes the chance of at least one success over repeated trials",
		Long: `trialcalc computes the chance of at least one success over repeated independent trials.

The per-trial probability is entered as a percentage (e.g. 12.5) or as a fraction (e.g. 1/6).
The result is 1 - (1 - p)^n, shown as a percentage with two decimals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(); err != nil {
				return err
			}

			level := currentConfig.Log.Level
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			return setupLogger(level)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", trialcalc.DefaultLogLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "config file path (default: trialcalc.yaml in ., ./config, /etc/trialcalc, $HOME/.trialcalc)")

	cmd.AddCommand(
		NewCalcCommand(),
		NewInteractiveCommand(),
		NewSimulateCommand(),
		NewVersionCommand(),
	)

	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kydenul/trialcalc"
)

func NewInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Open the calculator screen",
		Long: `Open the calculator screen.

Enter the probability as a percentage or as a fraction, enter the number of trials and type "run".
The result stays on screen until the next successful run. Type "help" for all commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := newSession(cmd.OutOrStdout(), currentConfig)

			if configManager != nil && configManager.ConfigFileUsed() != "" {
				if err := configManager.WatchConfig(s.queueReload); err != nil {
					logrus.WithError(err).Warn("config hot reload disabled")
				}
			}

			return s.run(cmd.InOrStdin())
		},
	}
}

// session is one interactive screen
type session struct {
	calc    *trialcalc.Calculator
	form    *form
	labels  *labels
	out     io.Writer
	reloads chan *trialcalc.Config
}

func newSession(out io.Writer, cfg *trialcalc.Config) *session {
	if cfg == nil {
		cfg = trialcalc.DefaultConfig()
	}
	return &session{
		calc:    trialcalc.NewCalculatorWithLogger(trialcalc.NewDefaultLogger()),
		form:    newForm(cfg.Calculator.Mode()),
		labels:  newLabels(cfg.Display.Language, cfg.Display.Placeholder),
		out:     out,
		reloads: make(chan *trialcalc.Config, 1),
	}
}

// queueReload is called from the config watcher; the newest config wins
func (s *session) queueReload(cfg *trialcalc.Config) {
	select {
	case <-s.reloads:
	default:
	}
	s.reloads <- cfg
}

func (s *session) applyReloads() {
	select {
	case cfg := <-s.reloads:
		s.labels = newLabels(cfg.Display.Language, cfg.Display.Placeholder)
		logrus.Debug("display settings reloaded")
	default:
	}
}

func (s *session) run(in io.Reader) error {
	renderScreen(s.out, s.labels, s.form, s.calc)

	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		s.applyReloads()
		if quit := s.handle(scanner.Text()); quit {
			return nil
		}
		fmt.Fprint(s.out, "> ")
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// handle runs one command line and reports whether the session should end
func (s *session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	value := ""
	if len(fields) > 1 {
		value = strings.Join(fields[1:], " ")
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, interactiveHelp)
	case "mode", "m":
		mode, err := trialcalc.ParseMode(value)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return false
		}
		s.form.mode = mode
		renderScreen(s.out, s.labels, s.form, s.calc)
	case "p", "percentage":
		s.form.percentage = value
	case "num", "numerator":
		s.form.numerator = value
	case "den", "denominator":
		s.form.denominator = value
	case "n", "trials":
		s.form.trials = value
	case "run", "r":
		s.form.execute(s.calc)
		renderScreen(s.out, s.labels, s.form, s.calc)
	case "show", "s":
		renderScreen(s.out, s.labels, s.form, s.calc)
	default:
		fmt.Fprintf(s.out, "unknown command %q, type \"help\" for a list of commands\n", fields[0])
	}

	return false
}

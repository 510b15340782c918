package main

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kydenul/trialcalc"
)

func NewSimulateCommand() *cobra.Command {
	var (
		probability probabilityFlags
		trials      int
		rounds      int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Check the result against a Monte Carlo simulation",
		Long: `Check the result against a Monte Carlo simulation.

Each round plays up to --trials trials and succeeds on the first success.
Unlike calc, an invalid probability is an error here, and it must lie in [0,100]%.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := probability.form(cmd, currentConfig.Calculator.Mode())
			if err != nil {
				return err
			}
			in, err := f.input()
			if err != nil {
				return err
			}
			prob, err := in.Probability()
			if err != nil {
				return pkgerrors.Wrapf(err, "invalid %s probability", in.Mode())
			}

			if !cmd.Flags().Changed("rounds") {
				rounds = currentConfig.Simulation.Rounds
			}

			sim := trialcalc.NewSimulator(currentConfig.Simulation.MaxSteps, trialcalc.NewDefaultLogger())
			result, err := sim.Run(cmd.Context(), prob, trials, rounds)
			if err != nil {
				return pkgerrors.Wrapf(err, "simulation failed")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", bold("Expected: "), resultString(trialcalc.FormatResult(result.Expected)))
			fmt.Fprintf(out, "%s  %s (%d/%d rounds)\n", bold("Estimated:"),
				trialcalc.FormatResult(result.Estimated), result.Successes, result.Rounds)
			fmt.Fprintf(out, "%s  %+.2f pp\n", bold("Deviation:"), result.Deviation)
			return nil
		},
	}

	probability.register(cmd)
	cmd.Flags().IntVarP(&trials, "trials", "n", 0, "number of trials per round")
	cmd.Flags().IntVar(&rounds, "rounds", trialcalc.DefaultSimulationRounds, "number of simulated rounds (default: simulation.rounds from config)")

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kydenul/trialcalc"
)

func NewCalcCommand() *cobra.Command {
	var (
		probability probabilityFlags
		trials      string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the chance of at least one success",
		Long: `Compute the chance of at least one success.

Examples:
  trialcalc calc -p 50 -n 3                        # 87.50%
  trialcalc calc --numerator 1 --denominator 6 -n 4  # 51.77%

When the input cannot be computed the placeholder is printed instead of a result.
A fraction with a zero or missing denominator counts as probability 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := probability.form(cmd, currentConfig.Calculator.Mode())
			if err != nil {
				return err
			}
			f.trials = trials

			calc := trialcalc.NewCalculatorWithLogger(trialcalc.NewDefaultLogger())
			l := newLabels(currentConfig.Display.Language, currentConfig.Display.Placeholder)

			if f.execute(calc) {
				fmt.Fprintln(cmd.OutOrStdout(), resultString(calc.Display(l.Placeholder())))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), placeholderString(l.Placeholder()))
			}
			return nil
		},
	}

	probability.register(cmd)
	cmd.Flags().StringVarP(&trials, "trials", "n", "", "number of independent trials")

	return cmd
}

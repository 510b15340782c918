package main

import (
	"github.com/spf13/cobra"

	"github.com/kydenul/trialcalc"
)

// probabilityFlags are the probability fields shared by calc and simulate
type probabilityFlags struct {
	mode        string
	percentage  string
	numerator   string
	denominator string
}

func (p *probabilityFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&p.mode, "mode", "m", "", "probability input mode: percentage or fraction (default: inferred from the flags given)")
	flags.StringVarP(&p.percentage, "percentage", "p", "", "probability of one trial, in percent")
	flags.StringVar(&p.numerator, "numerator", "", "numerator of the probability of one trial")
	flags.StringVar(&p.denominator, "denominator", "", "denominator of the probability of one trial")
}

// resolveMode picks the input mode: --mode if given, then whichever field set was used,
// then the configured default.
func (p *probabilityFlags) resolveMode(cmd *cobra.Command, fallback trialcalc.Mode) (trialcalc.Mode, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("mode"):
		return trialcalc.ParseMode(p.mode)
	case flags.Changed("numerator") || flags.Changed("denominator"):
		return trialcalc.ModeFraction, nil
	case flags.Changed("percentage"):
		return trialcalc.ModePercentage, nil
	default:
		return fallback, nil
	}
}

func (p *probabilityFlags) form(cmd *cobra.Command, fallback trialcalc.Mode) (*form, error) {
	mode, err := p.resolveMode(cmd, fallback)
	if err != nil {
		return nil, err
	}
	f := newForm(mode)
	f.percentage, f.numerator, f.denominator = p.percentage, p.numerator, p.denominator
	return f, nil
}

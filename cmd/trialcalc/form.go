package main

import (
	"github.com/kydenul/trialcalc"
)

// form holds the text fields of the screen. Both probability field sets stay
// editable; only the active mode's fields reach the calculator.
type form struct {
	mode        trialcalc.Mode
	percentage  string
	numerator   string
	denominator string
	trials      string
}

func newForm(mode trialcalc.Mode) *form {
	return &form{mode: mode}
}

func (f *form) input() (trialcalc.ProbabilityInput, error) {
	return trialcalc.InputFor(f.mode, f.percentage, f.numerator, f.denominator)
}

// execute feeds the form into calc
func (f *form) execute(calc *trialcalc.Calculator) bool {
	in, err := f.input()
	if err != nil {
		trialcalc.LogError(calc.GetLogger(), err)
		return false
	}
	_, ok := calc.Execute(in, f.trials)
	return ok
}

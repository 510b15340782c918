package trialcalc

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ParseTrials parses the trial count field. Negative and fractional counts are accepted.
func ParseTrials(text string) (float64, error) {
	n, err := parseNumber(text)
	if err != nil {
		return 0, err.WithOperation("trials")
	}
	return n, nil
}

// Compute returns, in percent, the chance of at least one success in trials
// independent attempts that each succeed with probability prob.
//
// Both operands must be finite. No range check is applied: probabilities outside
// [0,1] and negative trial counts are extrapolated through math.Pow.
func Compute(prob, trials float64) (float64, error) {
	if !isFinite(prob) {
		return 0, ErrNonFiniteInput.WithOperation("compute").WithDetails(fmt.Sprintf("probability=%v", prob))
	}
	if !isFinite(trials) {
		return 0, ErrNonFiniteInput.WithOperation("compute").WithDetails(fmt.Sprintf("trials=%v", trials))
	}

	allFail := math.Pow(1-prob, trials)
	return PercentScale - allFail*PercentScale, nil
}

// FormatResult renders a percentage with two decimals and a trailing "%".
// Rounding starts from the exact binary value of v, so 8.235 (stored just below) shows 8.23.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN" + PercentSuffix
	case math.IsInf(v, 1):
		return "Infinity" + PercentSuffix
	case math.IsInf(v, -1):
		return "-Infinity" + PercentSuffix
	}
	return decimal.NewFromFloatWithExponent(v, -ResultDecimalPlaces).StringFixed(ResultDecimalPlaces) + PercentSuffix
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

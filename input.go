package trialcalc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects how a probability is entered
type Mode string

const (
	// ModePercentage reads the probability as a percentage, e.g. "12.5"
	ModePercentage Mode = "percentage"

	// ModeFraction reads the probability as numerator/denominator
	ModeFraction Mode = "fraction"
)

// String returns the mode name
func (m Mode) String() string { return string(m) }

// ParseMode parses a mode name, ignoring case and surrounding space
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePercentage:
		return ModePercentage, nil
	case ModeFraction:
		return ModeFraction, nil
	default:
		return "", ErrInvalidMode.WithDetails(fmt.Sprintf("%q", s))
	}
}

// ProbabilityInput is a probability as typed by the user, either a Percentage or a Fraction.
type ProbabilityInput interface {
	// Mode reports which variant this is
	Mode() Mode

	// Probability converts the input into a unit-interval value without any fallback
	Probability() (float64, error)

	sealed()
}

// Percentage is a probability entered in percent
type Percentage struct {
	Value string `json:"value"`
}

// NewPercentage creates a percentage input
func NewPercentage(value string) Percentage { return Percentage{Value: value} }

// Mode implements ProbabilityInput
func (Percentage) Mode() Mode { return ModePercentage }

// Probability returns value / 100. Values outside [0,100] are not rejected.
func (p Percentage) Probability() (float64, error) {
	v, err := ParseNumber(p.Value)
	if err != nil {
		return 0, ErrInvalidPercentage.WithCause(err).WithDetails(fmt.Sprintf("%q", p.Value))
	}
	return v / PercentScale, nil
}

func (Percentage) sealed() {}

// Fraction is a probability entered as numerator/denominator
type Fraction struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

// NewFraction creates a fraction input
func NewFraction(numerator, denominator string) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// Mode implements ProbabilityInput
func (Fraction) Mode() Mode { return ModeFraction }

// Probability returns numerator / denominator
func (f Fraction) Probability() (float64, error) {
	num, err := parseNumber(f.Numerator)
	if err != nil {
		return 0, err.WithOperation("numerator")
	}
	den, err := parseNumber(f.Denominator)
	if err != nil {
		return 0, err.WithOperation("denominator")
	}
	if den == 0 {
		return 0, ErrZeroDenominator.WithDetails(fmt.Sprintf("%s/%s", f.Numerator, f.Denominator))
	}
	return num / den, nil
}

func (Fraction) sealed() {}

// InputFor builds the input of the active mode from the parallel text fields of a form.
// Fields belonging to the other mode are ignored.
func InputFor(mode Mode, percentage, numerator, denominator string) (ProbabilityInput, error) {
	switch mode {
	case ModePercentage:
		return NewPercentage(percentage), nil
	case ModeFraction:
		return NewFraction(numerator, denominator), nil
	default:
		return nil, ErrInvalidMode.WithDetails(fmt.Sprintf("%q", mode))
	}
}

// Normalize converts in into a unit-interval probability.
//
// An unparseable percentage is an error. A fraction that cannot be evaluated
// (unparseable part or zero denominator) yields probability 0 and no error.
func Normalize(in ProbabilityInput) (float64, error) {
	prob, _, err := normalize(in)
	return prob, err
}

// normalize is Normalize that also reports the error absorbed by a fraction fallback
func normalize(in ProbabilityInput) (prob float64, fallback, err error) {
	if in == nil {
		return 0, nil, ErrNilInput
	}

	prob, err = in.Probability()
	if err == nil {
		return prob, nil, nil
	}
	if in.Mode() == ModeFraction {
		return 0, err, nil
	}
	return 0, nil, err
}

// leadingNumber matches the decimal literal at the start of a text field
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of text.
// Surrounding space and trailing garbage are ignored, so "50%" reads as 50.
// Text without a leading number, or one that overflows float64, is rejected.
func ParseNumber(text string) (float64, error) {
	v, err := parseNumber(text)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseNumber(text string) (float64, *CalcError) {
	literal := leadingNumber.FindString(strings.TrimSpace(text))
	if literal == "" {
		return 0, ErrInvalidNumber.WithDetails(fmt.Sprintf("%q", text))
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrNonFiniteInput.WithCause(err).WithDetails(fmt.Sprintf("%q", text))
	}
	return v, nil
}

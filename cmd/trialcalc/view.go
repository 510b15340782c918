package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kydenul/trialcalc"
)

func bold(format string, a ...any) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func resultString(s string) string {
	return color.New(color.Bold, color.FgBlue).Sprint(s)
}

func placeholderString(s string) string {
	return color.New(color.FgHiBlack).Sprint(s)
}

// renderDisplay writes the result line of the screen
func renderDisplay(w io.Writer, l *labels, calc *trialcalc.Calculator) {
	if calc.HasResult() {
		fmt.Fprintf(w, "%s: %s\n", bold(l.text(msgResult)), resultString(calc.Display(l.Placeholder())))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", bold(l.text(msgResult)), placeholderString(l.Placeholder()))
}

// renderScreen writes the whole single-screen form
func renderScreen(w io.Writer, l *labels, f *form, calc *trialcalc.Calculator) {
	percent, fraction := l.text(msgPercent), l.text(msgFraction)
	if f.mode == trialcalc.ModePercentage {
		percent = "[" + percent + "]"
	} else {
		fraction = "[" + fraction + "]"
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "%s: %s / %s\n", bold(l.text(msgProbability)), percent, fraction)
	if f.mode == trialcalc.ModePercentage {
		fmt.Fprintf(w, "  %s %s\n", fieldString(f.percentage), trialcalc.PercentSuffix)
	} else {
		fmt.Fprintf(w, "  %s: %s\n", l.text(msgNumerator), fieldString(f.numerator))
		fmt.Fprintf(w, "  %s: %s\n", l.text(msgDenominator), fieldString(f.denominator))
	}
	fmt.Fprintf(w, "%s: %s %s\n", bold(l.text(msgTrials)), fieldString(f.trials), l.text(msgTimes))
	renderDisplay(w, l, calc)
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

func fieldString(v string) string {
	if v == "" {
		return "_"
	}
	return v
}

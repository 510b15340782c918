package main

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kydenul/trialcalc"
)

// Message keys. The English text doubles as the key.
const (
	msgProbability = "Probability"
	msgPercent     = "Percent"
	msgFraction    = "Fraction"
	msgNumerator   = "Numerator"
	msgDenominator = "Denominator"
	msgTrials      = "Trials"
	msgTimes       = "times"
	msgResult      = "Result"
	msgRun         = "Run"
	msgPlaceholder = trialcalc.DefaultPlaceholder
)

const interactiveHelp = `Commands:
  mode percentage|fraction   switch the probability input
  p <value>                  set the percentage
  num <value>                set the numerator
  den <value>                set the denominator
  n <value>                  set the number of trials
  run                        compute the result
  show                       redraw the screen
  help                       show this help
  quit                       leave`

func init() {
	for key, text := range map[string]string{
		msgProbability: "確率",
		msgPercent:     "パーセント",
		msgFraction:    "分数",
		msgNumerator:   "分子",
		msgDenominator: "分母",
		msgTrials:      "試行回数",
		msgTimes:       "回",
		msgResult:      "結果",
		msgRun:         "実行",
		msgPlaceholder: "実行ボタンを押すと結果が表示されます",
	} {
		if err := message.SetString(language.Japanese, key, text); err != nil {
			panic(fmt.Sprintf("register %q: %v", key, err))
		}
	}
}

// labels translates the fixed screen texts
type labels struct {
	printer     *message.Printer
	placeholder string
}

// newLabels builds labels for a BCP 47 language tag. Unknown tags fall back to English.
func newLabels(lang, placeholder string) *labels {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &labels{
		printer:     message.NewPrinter(tag),
		placeholder: placeholder,
	}
}

func (l *labels) text(key string) string {
	return l.printer.Sprintf(key)
}

// Placeholder returns the configured placeholder, translated when it is the default one
func (l *labels) Placeholder() string {
	if l.placeholder == "" || l.placeholder == trialcalc.DefaultPlaceholder {
		return l.text(msgPlaceholder)
	}
	return l.placeholder
}

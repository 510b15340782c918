package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kydenul/trialcalc"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trialcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with a colorless config file
func execute(t *testing.T, config, stdin string, args ...string) (string, error) {
	t.Helper()
	if config == "" {
		config = "display:\n  color: false\n"
	}

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config", writeConfig(t, config)))

	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"percentage", []string{"-p", "50", "-n", "3"}, "87.50%"},
		{"fraction", []string{"--numerator", "1", "--denominator", "6", "-n", "4"}, "51.77%"},
		{"empty_percentage", []string{"-p", "", "-n", "5"}, trialcalc.DefaultPlaceholder},
		{"zero_percentage", []string{"-p", "0", "-n", "10"}, "0.00%"},
		{"zero_denominator", []string{"--numerator", "1", "--denominator", "0", "-n", "3"}, "0.00%"},
		{"explicit_mode_ignores_other_fields", []string{"-m", "fraction", "-p", "50", "-n", "5"}, "0.00%"},
		{"percent_sign_accepted", []string{"-p", "50%", "-n", "1"}, "50.00%"},
		{"missing_trials", []string{"-p", "50"}, trialcalc.DefaultPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "", append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCalcCommandConfig(t *testing.T) {
	t.Run("japanese_placeholder", func(t *testing.T) {
		out, err := execute(t, "display:\n  color: false\n  language: ja\n", "", "calc", "-p", "x", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, "実行ボタンを押すと結果が表示されます\n", out)
	})

	t.Run("custom_placeholder", func(t *testing.T) {
		out, err := execute(t, "display:\n  color: false\n  placeholder: \"--\"\n", "", "calc", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, "--\n", out)
	})

	t.Run("default_mode_fraction", func(t *testing.T) {
		cfg := "display:\n  color: false\ncalculator:\n  default_mode: fraction\n"
		out, err := execute(t, cfg, "", "calc", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, "0.00%\n", out)
	})

	t.Run("invalid_config", func(t *testing.T) {
		_, err := execute(t, "display:\n  language: fr\n", "", "calc", "-p", "50", "-n", "3")
		assert.ErrorIs(t, err, trialcalc.ErrConfigInvalid)
	})
}

func TestCalcCommandInvalidMode(t *testing.T) {
	_, err := execute(t, "", "", "calc", "-m", "bogus", "-p", "50", "-n", "3")
	assert.ErrorIs(t, err, trialcalc.ErrInvalidMode)
}

func TestSimulateCommand(t *testing.T) {
	t.Run("certain_success", func(t *testing.T) {
		out, err := execute(t, "", "", "simulate", "-p", "100", "-n", "3", "--rounds", "50")
		require.NoError(t, err)
		assert.Contains(t, out, "Expected:   100.00%")
		assert.Contains(t, out, "100.00% (50/50 rounds)")
		assert.Contains(t, out, "+0.00 pp")
	})

	t.Run("rounds_from_config", func(t *testing.T) {
		cfg := "display:\n  color: false\nsimulation:\n  rounds: 7\n"
		out, err := execute(t, cfg, "", "simulate", "-p", "0", "-n", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "0.00% (0/7 rounds)")
	})

	tests := []struct {
		name  string
		args  []string
		errIs error
	}{
		{"probability_out_of_range", []string{"-p", "150", "-n", "3"}, trialcalc.ErrInvalidSimulation},
		{"unparseable_percentage", []string{"-p", "abc", "-n", "3"}, trialcalc.ErrInvalidPercentage},
		{"zero_denominator", []string{"--numerator", "1", "--denominator", "0", "-n", "3"}, trialcalc.ErrZeroDenominator},
		{"too_many_steps", []string{"-p", "0", "-n", "1000", "--rounds", "1000000"}, trialcalc.ErrSimulationTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", "", append([]string{"simulate"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestInteractiveCommand(t *testing.T) {
	out, err := execute(t, "", "p 50\nn 3\nrun\nquit\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: 87.50%")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev unknown\n", out)
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	require.NoError(t, setupLogger("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, setupLogger("loud"))
}

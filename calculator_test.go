package trialcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps formatted messages per level
type recordingLogger struct {
	infos  []string
	errors []string
	debugs []string
}

func (l *recordingLogger) Info(msg string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Error(msg string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(msg, args...))
}

func TestCalculatorInitialState(t *testing.T) {
	calc := NewCalculatorWithLogger(NewSilentLogger())

	assert.False(t, calc.HasResult())
	_, ok := calc.Result()
	assert.False(t, ok)
	assert.Equal(t, "press run", calc.Display("press run"))
}

func TestCalculatorExecute(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		calc := NewCalculatorWithLogger(NewSilentLogger())

		result, ok := calc.Execute(NewPercentage("50"), "3")
		require.True(t, ok)
		assert.Equal(t, 87.5, result)
		assert.Equal(t, "87.50%", calc.Display("press run"))
	})

	t.Run("fraction", func(t *testing.T) {
		calc := NewCalculatorWithLogger(NewSilentLogger())

		result, ok := calc.Execute(NewFraction("1", "6"), "4")
		require.True(t, ok)
		assert.InDelta(t, 51.7747, result, 0.0001)
		assert.Equal(t, "51.77%", calc.Display(""))
	})

	t.Run("zero_denominator_computes_with_zero_probability", func(t *testing.T) {
		calc := NewCalculatorWithLogger(NewSilentLogger())

		result, ok := calc.Execute(NewFraction("1", "0"), "4")
		require.True(t, ok)
		assert.Equal(t, 0.0, result)
		assert.Equal(t, "0.00%", calc.Display(""))
		assert.Equal(t, int64(1), calc.Monitor().GetMetrics().Fallbacks)
	})

	t.Run("empty_percentage_leaves_placeholder", func(t *testing.T) {
		calc := NewCalculatorWithLogger(NewSilentLogger())

		_, ok := calc.Execute(NewPercentage(""), "5")
		assert.False(t, ok)
		assert.False(t, calc.HasResult())
		assert.Equal(t, "press run", calc.Display("press run"))
	})

	t.Run("zero_percent", func(t *testing.T) {
		calc := NewCalculatorWithLogger(NewSilentLogger())

		_, ok := calc.Execute(NewPercentage("0"), "10")
		require.True(t, ok)
		assert.Equal(t, "0.00%", calc.Display(""))
	})
}

func TestCalculatorKeepsPreviousResult(t *testing.T) {
	calc := NewCalculatorWithLogger(NewSilentLogger())

	_, ok := calc.Execute(NewPercentage("50"), "3")
	require.True(t, ok)

	invalid := []struct {
		name   string
		input  ProbabilityInput
		trials string
	}{
		{"empty_percentage", NewPercentage(""), "5"},
		{"text_percentage", NewPercentage("half"), "5"},
		{"empty_trials", NewPercentage("10"), ""},
		{"text_trials", NewFraction("1", "2"), "many"},
		{"nil_input", nil, "3"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := calc.Execute(tt.input, tt.trials)
			assert.False(t, ok)

			result, has := calc.Result()
			assert.True(t, has)
			assert.Equal(t, 87.5, result)
			assert.Equal(t, "87.50%", calc.Display("press run"))
		})
	}

	t.Run("next_valid_run_replaces_result", func(t *testing.T) {
		_, ok := calc.Execute(NewPercentage("0"), "10")
		require.True(t, ok)
		assert.Equal(t, "0.00%", calc.Display("press run"))
	})

	metrics := calc.Monitor().GetMetrics()
	assert.Equal(t, int64(7), metrics.Executions)
	assert.Equal(t, int64(2), metrics.Computed)
	assert.Equal(t, int64(5), metrics.Ignored)
}

func TestCalculatorLogging(t *testing.T) {
	logger := &recordingLogger{}
	calc := NewCalculatorWithLogger(logger)

	calc.Execute(NewPercentage("x"), "1")
	calc.Execute(NewFraction("1", "0"), "1")

	assert.Empty(t, logger.errors)
	require.Len(t, logger.debugs, 3)
	assert.Contains(t, logger.debugs[0], string(ErrCodeInvalidPercentage))
	assert.Contains(t, logger.debugs[1], string(ErrCodeZeroDenominator))
	assert.Contains(t, logger.debugs[2], "0.00%")
}

func TestCalculatorSetLogger(t *testing.T) {
	calc := NewCalculatorWithLogger(nil)
	assert.IsType(t, &SilentLogger{}, calc.GetLogger())

	logger := &recordingLogger{}
	calc.SetLogger(logger)
	assert.Same(t, logger, calc.GetLogger())

	calc.SetLogger(nil)
	assert.Same(t, logger, calc.GetLogger())
}

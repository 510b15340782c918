package trialcalc

// Calculator holds the result shown on the display surface.
//
// It starts with no result. Every successful Execute replaces the result;
// a failed one leaves the previous result in place. Calculator is not safe
// for concurrent use.
type Calculator struct {
	logger  Logger
	monitor *CalculationMonitor

	result    float64
	hasResult bool
}

// NewCalculator creates a calculator with the default logger
func NewCalculator() *Calculator {
	return NewCalculatorWithLogger(NewDefaultLogger())
}

// NewCalculatorWithLogger creates a calculator with a custom logger
func NewCalculatorWithLogger(logger Logger) *Calculator {
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Calculator{
		logger:  logger,
		monitor: NewCalculationMonitor(),
	}
}

// SetLogger replaces the logger
func (c *Calculator) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// GetLogger returns the current logger
func (c *Calculator) GetLogger() Logger { return c.logger }

// Monitor returns the calculation counters
func (c *Calculator) Monitor() *CalculationMonitor { return c.monitor }

// Execute computes the chance of at least one success for in over trials.
//
// It reports false and keeps the previous result when the percentage or the
// trial count cannot be parsed. A fraction that cannot be evaluated counts as
// probability 0.
func (c *Calculator) Execute(in ProbabilityInput, trials string) (float64, bool) {
	c.monitor.RecordExecution()

	prob, fallback, err := normalize(in)
	if err != nil {
		return c.reject(err)
	}
	if fallback != nil {
		c.logger.Debug("Fraction evaluated as probability 0: %v", fallback)
		c.monitor.RecordFallback()
	}

	n, err := ParseTrials(trials)
	if err != nil {
		return c.reject(err)
	}

	result, err := Compute(prob, n)
	if err != nil {
		return c.reject(err)
	}

	c.result, c.hasResult = result, true
	c.monitor.RecordComputed()
	c.logger.Debug("Computed %s (probability=%v, trials=%v)", FormatResult(result), prob, n)

	return result, true
}

func (c *Calculator) reject(err error) (float64, bool) {
	LogError(c.logger, err)
	c.monitor.RecordIgnored()
	return 0, false
}

// Result returns the last computed result, if any
func (c *Calculator) Result() (float64, bool) { return c.result, c.hasResult }

// HasResult reports whether a result has been computed
func (c *Calculator) HasResult() bool { return c.hasResult }

// Display returns the formatted result, or placeholder before the first result
func (c *Calculator) Display(placeholder string) string {
	if !c.hasResult {
		return placeholder
	}
	return FormatResult(c.result)
}

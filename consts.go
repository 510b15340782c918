package trialcalc

const (
	// ResultDecimalPlaces is the number of digits shown after the decimal point
	ResultDecimalPlaces = 2

	// PercentScale converts between unit-interval probabilities and percentages
	PercentScale = 100.0

	// PercentSuffix is appended to every rendered result
	PercentSuffix = "%"

	// ProbabilityTolerance is the tolerance used when comparing computed percentages
	ProbabilityTolerance = 0.0001
)

const (
	// DefaultPlaceholder is shown on the display surface before any result exists
	DefaultPlaceholder = "Press Run to show the result"

	// DefaultLanguage is the default language of display strings
	DefaultLanguage = "en"

	// DefaultMode is the probability input mode selected on start
	DefaultMode = ModePercentage

	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
)

const (
	// DefaultSimulationRounds is the default number of Monte Carlo rounds
	DefaultSimulationRounds = 10000

	// DefaultSimulationMaxSteps is the default cap on rounds × trials
	DefaultSimulationMaxSteps = 50_000_000

	// MaxSimulationMaxSteps is the largest cap a configuration may request
	MaxSimulationMaxSteps = 1_000_000_000

	// DefaultRandomGeneratorCacheSize is the number of pre-generated random floats
	DefaultRandomGeneratorCacheSize = 1024

	// simulationCancelCheckInterval is how many rounds run between context checks
	simulationCancelCheckInterval = 1024
)

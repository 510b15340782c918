package trialcalc

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// RandomSource produces uniform floats in [0, 1)
type RandomSource interface {
	GenerateFloat() (float64, error)
}

package trialcalc

import (
	"context"
	"fmt"
)

// SimulationResult compares a Monte Carlo estimate with the closed form
type SimulationResult struct {
	Probability float64 `json:"probability"` // per-trial success probability
	Trials      int     `json:"trials"`      // trials per round
	Rounds      int     `json:"rounds"`      // simulated rounds
	Successes   int     `json:"successes"`   // rounds with at least one success
	Estimated   float64 `json:"estimated"`   // Successes / Rounds, in percent
	Expected    float64 `json:"expected"`    // Compute(Probability, Trials)
	Deviation   float64 `json:"deviation"`   // Estimated - Expected
}

// Simulator estimates the chance of at least one success by sampling
type Simulator struct {
	source   RandomSource
	maxSteps int64
	logger   Logger
}

// NewSimulator creates a simulator backed by a SecureRandomGenerator
func NewSimulator(maxSteps int64, logger Logger) *Simulator {
	return NewSimulatorWithSource(NewSecureRandomGenerator(), maxSteps, logger)
}

// NewSimulatorWithSource creates a simulator that draws from source
func NewSimulatorWithSource(source RandomSource, maxSteps int64, logger Logger) *Simulator {
	if maxSteps <= 0 {
		maxSteps = DefaultSimulationMaxSteps
	}
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Simulator{source: source, maxSteps: maxSteps, logger: logger}
}

// Run plays rounds rounds of trials Bernoulli trials with success probability prob.
// A round stops at its first success.
func (s *Simulator) Run(ctx context.Context, prob float64, trials, rounds int) (*SimulationResult, error) {
	if err := s.validate(prob, trials, rounds); err != nil {
		return nil, err
	}

	expected, err := Compute(prob, float64(trials))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Simulating %d rounds of %d trials at probability %v", rounds, trials, prob)

	successes := 0
	for round := range rounds {
		if round%simulationCancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ErrSimulationInterrupted.WithCause(ctx.Err()).
					WithDetails(fmt.Sprintf("completed %d/%d rounds", round, rounds))
			default:
			}
		}

		hit, err := s.playRound(prob, trials)
		if err != nil {
			return nil, err
		}
		if hit {
			successes++
		}
	}

	estimated := float64(successes) / float64(rounds) * PercentScale
	result := &SimulationResult{
		Probability: prob,
		Trials:      trials,
		Rounds:      rounds,
		Successes:   successes,
		Estimated:   estimated,
		Expected:    expected,
		Deviation:   estimated - expected,
	}

	s.logger.Info("Simulation finished: estimated %s, expected %s",
		FormatResult(result.Estimated), FormatResult(result.Expected))

	return result, nil
}

func (s *Simulator) playRound(prob float64, trials int) (bool, error) {
	for range trials {
		u, err := s.source.GenerateFloat()
		if err != nil {
			return false, err
		}
		if u < prob {
			return true, nil
		}
	}
	return false, nil
}

func (s *Simulator) validate(prob float64, trials, rounds int) error {
	if !isFinite(prob) || prob < 0 || prob > 1 {
		return ErrInvalidSimulation.WithDetails(fmt.Sprintf("probability %v is outside [0,1]", prob))
	}
	if trials < 0 {
		return ErrInvalidSimulation.WithDetails(fmt.Sprintf("trials %d is negative", trials))
	}
	if rounds <= 0 {
		return ErrInvalidSimulation.WithDetails(fmt.Sprintf("rounds %d must be positive", rounds))
	}
	if trials > 0 && int64(rounds) > s.maxSteps/int64(trials) {
		return ErrSimulationTooLarge.WithDetails(
			fmt.Sprintf("%d rounds x %d trials exceeds %d steps", rounds, trials, s.maxSteps))
	}
	return nil
}

package trialcalc

import (
	"crypto/rand"
	"math/big"
)

// SecureRandomGenerator implements secure random number generation using crypto/rand with caching.
// It is not safe for concurrent use.
type SecureRandomGenerator struct {
	cache      []float64
	cacheIndex int
}

// NewSecureRandomGenerator creates a secure random generator with the given cache size
//
// If no cache size is provided, the default cache size will be used.
// The cache is filled lazily on first use.
func NewSecureRandomGenerator(cacheSize ...int) *SecureRandomGenerator {
	size := DefaultRandomGeneratorCacheSize
	if len(cacheSize) > 0 && cacheSize[0] > 0 {
		size = cacheSize[0]
	}

	return &SecureRandomGenerator{
		cache:      make([]float64, size),
		cacheIndex: size,
	}
}

// refillCache refills the random number cache
func (g *SecureRandomGenerator) refillCache() error {
	for i := range g.cache {
		val, err := generateFloat()
		if err != nil {
			return ErrRandomSource.WithCause(err)
		}
		g.cache[i] = val
	}

	g.cacheIndex = 0
	return nil
}

// GenerateFloat generates a secure random float between 0 and 1 (exclusive of 1)
func (g *SecureRandomGenerator) GenerateFloat() (float64, error) {
	if g.cacheIndex >= len(g.cache) {
		if err := g.refillCache(); err != nil {
			return 0, err
		}
	}

	result := g.cache[g.cacheIndex]
	g.cacheIndex++
	return result, nil
}

// generateFloat generates a secure random float between 0 and 1 (exclusive of 1)
func generateFloat() (float64, error) {
	randomBig, err := rand.Int(rand.Reader, big.NewInt(1<<53)) // 53 bits fill a float64 mantissa
	if err != nil {
		return 0, err
	}

	return float64(randomBig.Int64()) / float64(1<<53), nil
}

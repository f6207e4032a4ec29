package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomUint64 returns a uniformly distributed integer in [lo, hi) drawn from crypto/rand.
func RandomUint64(lo, hi uint64) (uint64, error) {
	if hi <= lo {
		return 0, errors.New("random range is empty")
	}
	n, err := rand.Int(rand.Reader, new(big.Int).SetUint64(hi-lo))
	if err != nil {
		return 0, err
	}
	return lo + n.Uint64(), nil
}

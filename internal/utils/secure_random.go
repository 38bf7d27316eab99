package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SecureRandomIntInRange returns a uniformly distributed integer in [min, max].
func SecureRandomIntInRange(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("invalid range [%d, %d]", min, max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min+1)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random number: %w", err)
	}
	return min + int(n.Int64()), nil
}

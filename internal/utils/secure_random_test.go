package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomIntInRangeStaysInBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		n, err := SecureRandomIntInRange(1000, 9999)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestSecureRandomIntInRangeSinglePoint(t *testing.T) {
	n, err := SecureRandomIntInRange(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestSecureRandomIntInRangeRejectsInvertedRange(t *testing.T) {
	_, err := SecureRandomIntInRange(10, 1)
	assert.Error(t, err)
}

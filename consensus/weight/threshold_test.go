package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestSuperMajorityThreshold tests computing the minimally required weight
// for a supermajority.
func TestSuperMajorityThreshold(t *testing.T) {
	// testing lowest values
	for i := 1; i <= 302; i++ {
		threshold := SuperMajorityThreshold(uint64(i))

		boundaryValue := float64(i) * 2.0 / 3.0
		assert.True(t, boundaryValue < float64(threshold))
		assert.False(t, boundaryValue < float64(threshold-1))
	}
}

func TestIsSuperMajority(t *testing.T) {
	// 70/100 exceeds 2/3
	ok, err := IsSuperMajority(70, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	// 60/100 does not
	ok, err = IsSuperMajority(60, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	// exactly 2/3 is not a supermajority
	ok, err = IsSuperMajority(66, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSuperMajority(67, 99)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSuperMajorityZeroTotalWeight(t *testing.T) {
	_, err := IsSuperMajority(0, 0)
	require.Error(t, err)

	_, err = IsSuperMajority(10, 0)
	require.Error(t, err)
}

// TestIsSuperMajorityRational checks the integer arithmetic against the
// rational form 3*part > 2*total on randomly drawn weights.
func TestIsSuperMajorityRational(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.Uint64Range(1, 1<<40).Draw(t, "total")
		part := rapid.Uint64Range(0, total).Draw(t, "part")

		ok, err := IsSuperMajority(part, total)
		require.NoError(t, err)
		require.Equal(t, 3*part > 2*total, ok)
	})
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTxCount(t *testing.T) {
	n, err := parseTxCount("10000")
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	n, err = parseTxCount(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = parseTxCount("ten")
	assert.Error(t, err)

	_, err = parseTxCount("1.5")
	assert.Error(t, err)
}

func TestSplitSystems(t *testing.T) {
	assert.Equal(t, []string{"aztec", "zama"}, splitSystems("aztec,zama"))
	assert.Equal(t, []string{"aztec", "zama"}, splitSystems(" aztec , zama ,"))
	assert.Empty(t, splitSystems(""))
}

func TestSweepVolumes(t *testing.T) {
	assert.Equal(t, []int{100}, sweepVolumes(100, 100, 5))
	assert.Equal(t, []int{100}, sweepVolumes(100, 1000, 1))
	assert.Equal(t, []int{100, 550, 1000}, sweepVolumes(100, 1000, 3))

	// Endpoints are always included.
	vols := sweepVolumes(1000, 50000, 10)
	assert.Equal(t, 1000, vols[0])
	assert.Equal(t, 50000, vols[len(vols)-1])

	// Narrow ranges deduplicate instead of repeating volumes.
	vols = sweepVolumes(1, 3, 10)
	assert.Equal(t, []int{1, 2, 3}, vols)
}

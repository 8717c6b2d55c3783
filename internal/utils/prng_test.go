package utils

import (
	"math"
	"testing"

	"go-void-survivor/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChooseWeightedEmpty(t *testing.T) {
	_, ok := NewPRNGService(1).ChooseWeighted(nil)
	assert.False(t, ok)
}

func TestChooseWeightedOnlyPicksPositiveWeights(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rng := NewPRNGService(rapid.Int64Min(1).Draw(t, "seed"))
		weights := rapid.SliceOfN(rapid.IntRange(0, 10), 1, 6).Draw(t, "weights")
		entries := make([]defs.SpawnEntry, len(weights))
		total := 0
		for i, w := range weights {
			entries[i] = defs.SpawnEntry{Archetype: defs.Archetype(string(rune('a' + i))), Weight: w}
			total += w
		}
		got, ok := rng.ChooseWeighted(entries)
		if !ok {
			t.Fatalf("expected a choice")
		}
		if total > 0 && got.Weight == 0 {
			t.Fatalf("picked zero-weight entry %v", got.Archetype)
		}
	})
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-9)
	assert.Zero(t, NormalizeAngle(math.NaN()))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "03:00", FormatClock(180))
	assert.Equal(t, "10:05", FormatClock(605))
}

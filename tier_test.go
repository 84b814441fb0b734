package immediate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier_String(t *testing.T) {
	assert.Equal(t, "native", TierNative.String())
	assert.Equal(t, "pipe", TierPipe.String())
	assert.Equal(t, "broadcast", TierBroadcast.String())
	assert.Equal(t, "timer", TierTimer.String())
	assert.Equal(t, "unknown", TierUnknown.String())
}

func TestParseTier(t *testing.T) {
	t.Run("known names round-trip", func(t *testing.T) {
		for _, tier := range []Tier{TierNative, TierPipe, TierBroadcast, TierTimer} {
			assert.Equal(t, tier, parseTier(tier.String()))
		}
	})

	t.Run("case and whitespace are tolerated", func(t *testing.T) {
		assert.Equal(t, TierTimer, parseTier("  TIMER "))
		assert.Equal(t, TierPipe, parseTier("Pipe"))
	})

	t.Run("unknown names mean no override", func(t *testing.T) {
		assert.Equal(t, TierUnknown, parseTier(""))
		assert.Equal(t, TierUnknown, parseTier("carrier-pigeon"))
	})
}

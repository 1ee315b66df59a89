package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSortKey(t *testing.T) {
	assert.Equal(t, 2, roundSortKey("Round 2"))
	assert.Equal(t, 10, roundSortKey("Round 10"))
	assert.Equal(t, 3, roundSortKey("3rd round"))
	assert.Equal(t, roundOrdinalSentinel, roundSortKey("Bonus"))
	assert.Equal(t, roundOrdinalSentinel, roundSortKey(""))
	assert.Equal(t, roundOrdinalSentinel, roundSortKey("Round 10000"))
}

func TestRoundSortKey_FirstDigitRunOnly(t *testing.T) {
	assert.Equal(t, 1, roundSortKey("Round 1 of 6"))
}

func TestOrderRoundNames_NaturalOrder(t *testing.T) {
	got := orderRoundNames([]string{"Round 10", "Round 2", "Bonus"})
	assert.Equal(t, []string{"Round 2", "Round 10", "Bonus"}, got)
}

func TestOrderRoundNames_SentinelNamesKeepEncounterOrder(t *testing.T) {
	got := orderRoundNames([]string{"Blitz", "Round 3", "Bonus", "Round 1"})
	assert.Equal(t, []string{"Round 1", "Round 3", "Blitz", "Bonus"}, got)
}

func TestCollectRoundNames_DedupesAndSkipsBlank(t *testing.T) {
	got := collectRoundNames([]string{"Round 1", "", "Round 2", "Round 1"})
	assert.Equal(t, []string{"Round 1", "Round 2"}, got)
}

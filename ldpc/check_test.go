package ldpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCheck_validCodewordsScoreFull(t *testing.T) {
	for i, cw := range allFixtureCWs {
		assert.Equalf(t, numChecks, Check(cw), "fixture %d should satisfy every parity check", i)
	}
}

func TestCheck_singleBitFlipLosesChecks(t *testing.T) {
	for pos := 0; pos < numVars; pos++ {
		cw := fixtureCW0
		cw[pos] ^= 1
		assert.Lessf(t, Check(cw), numChecks, "flipping bit %d should break at least one parity check", pos)
	}
}

func TestCheck_degreeAccounting(t *testing.T) {
	// Every Mn row has exactly 3 neighbor checks, and every Nm row has at
	// most 7 with 0 as the only possible filler value.
	weight6 := 0
	weight7 := 0
	for j := 0; j < numChecks; j++ {
		n := 0
		for _, v := range Nm[j] {
			if v != 0 {
				n++
			}
		}
		switch n {
		case 6:
			weight6++
		case 7:
			weight7++
		default:
			t.Fatalf("check %d has unexpected degree %d", j, n)
		}
	}
	assert.Equal(t, numChecks, weight6+weight7)

	for i := 0; i < numVars; i++ {
		for _, v := range Mn[i] {
			assert.NotZero(t, v, "variable %d has a zero entry in Mn", i)
		}
	}
}

func TestCheck_neverPanicsOnRandomBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var cw [numVars]uint8
		for i := range cw {
			cw[i] = uint8(rapid.IntRange(0, 1).Draw(t, "bit"))
		}
		score := Check(cw)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, numChecks)
	})
}

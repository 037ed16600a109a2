package ldpc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeProb_zeroIterationsReturnsSignDecision(t *testing.T) {
	llr := llrFromCW(fixtureCW0, 6.0)
	hard, score := DecodeProb(llr, 0)
	assert.Equal(t, fixtureCW0, hard)
	assert.Equal(t, numChecks, score)
}

func TestDecodeProb_noiselessConverges(t *testing.T) {
	for i, cw := range allFixtureCWs {
		llr := llrFromCW(cw, 6.0)
		hard, score := DecodeProb(llr, 20)
		assert.Equalf(t, numChecks, score, "fixture %d failed to converge", i)
		assert.Equalf(t, cw, hard, "fixture %d decoded to the wrong codeword", i)
	}
}

func TestDecodeProb_recoversFromLightNoise(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i, cw := range allFixtureCWs {
		llr := noisyLLR(llrFromCW(cw, 6.0), 5, rnd)
		hard, score := DecodeProb(llr, 30)
		assert.Equalf(t, numChecks, score, "fixture %d failed to recover from noise", i)
		assert.Equalf(t, cw, hard, "fixture %d recovered the wrong codeword", i)
	}
}

func TestDecodeProb_bestScoreNeverRegressesWithMoreIterations(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	llr := noisyLLR(llrFromCW(fixtureCW1, 6.0), 20, rnd)

	prevScore := -1
	for iters := 0; iters <= 8; iters++ {
		_, score := DecodeProb(llr, iters)
		assert.GreaterOrEqual(t, score, prevScore)
		prevScore = score
	}
}

func TestDecodeProb_isDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	llr := noisyLLR(llrFromCW(fixtureCW2, 6.0), 10, rnd)

	hard1, score1 := DecodeProb(llr, 15)
	hard2, score2 := DecodeProb(llr, 15)
	assert.Equal(t, hard1, hard2)
	assert.Equal(t, score1, score2)
}

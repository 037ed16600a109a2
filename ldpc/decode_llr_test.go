package ldpc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLLR_zeroIterationsReturnsSignDecision(t *testing.T) {
	llr := llrFromCW(fixtureCW0, 6.0)
	hard, score := DecodeLLR(llr, 0)
	assert.Equal(t, fixtureCW0, hard)
	assert.Equal(t, numChecks, score)
}

func TestDecodeLLR_zeroIterationsOnInconsistentInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	llr := noisyLLR(llrFromCW(fixtureCW1, 6.0), 12, rnd)

	var signDecode [174]uint8
	for i, l := range llr {
		if l <= 0 {
			signDecode[i] = 1
		}
	}

	hard, score := DecodeLLR(llr, 0)
	assert.Equal(t, signDecode, hard)
	assert.Equal(t, Check(signDecode), score)
}

func TestDecodeLLR_noiselessConverges(t *testing.T) {
	for i, cw := range allFixtureCWs {
		llr := llrFromCW(cw, 6.0)
		hard, score := DecodeLLR(llr, 20)
		assert.Equalf(t, numChecks, score, "fixture %d failed to converge", i)
		assert.Equalf(t, cw, hard, "fixture %d decoded to the wrong codeword", i)
	}
}

func TestDecodeLLR_recoversFromLightNoise(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i, cw := range allFixtureCWs {
		llr := noisyLLR(llrFromCW(cw, 6.0), 5, rnd)
		hard, score := DecodeLLR(llr, 30)
		assert.Equalf(t, numChecks, score, "fixture %d failed to recover from noise", i)
		assert.Equalf(t, cw, hard, "fixture %d recovered the wrong codeword", i)
	}
}

func TestDecodeLLR_bestScoreNeverRegressesWithMoreIterations(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	llr := noisyLLR(llrFromCW(fixtureCW1, 6.0), 20, rnd)

	prevScore := -1
	for iters := 0; iters <= 8; iters++ {
		_, score := DecodeLLR(llr, iters)
		assert.GreaterOrEqual(t, score, prevScore)
		prevScore = score
	}
}

func TestDecodeLLR_isDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	llr := noisyLLR(llrFromCW(fixtureCW2, 6.0), 10, rnd)

	hard1, score1 := DecodeLLR(llr, 15)
	hard2, score2 := DecodeLLR(llr, 15)
	assert.Equal(t, hard1, hard2)
	assert.Equal(t, score1, score2)
}

// DecodeProb and DecodeLLR implement the same belief-propagation algorithm
// in two numerically distinct domains; on a clean signal they must agree.
func TestDecodeLLR_agreesWithDecodeProbNoiseless(t *testing.T) {
	for i, cw := range allFixtureCWs {
		llr := llrFromCW(cw, 6.0)
		probHard, probScore := DecodeProb(llr, 20)
		llrHard, llrScore := DecodeLLR(llr, 20)
		assert.Equalf(t, probHard, llrHard, "fixture %d: decoders disagree", i)
		assert.Equalf(t, probScore, llrScore, "fixture %d: decoders disagree on score", i)
	}
}

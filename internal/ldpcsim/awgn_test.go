package ldpcsim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_PerturbPreservesLength(t *testing.T) {
	cw := make([]uint8, 174)
	c := NewChannel(5, rand.NewPCG(1, 1))
	llr := c.Perturb(cw)
	assert.Len(t, llr, 174)
}

func TestChannel_HighSNRKeepsSignAgreement(t *testing.T) {
	cw := make([]uint8, 174)
	for i := range cw {
		cw[i] = uint8(i % 2)
	}
	c := NewChannel(40, rand.NewPCG(7, 7))
	llr := c.Perturb(cw)

	agree := 0
	for i, b := range cw {
		wantPositive := b == 0
		if (llr[i] > 0) == wantPositive {
			agree++
		}
	}
	assert.Greaterf(t, agree, len(cw)*9/10, "at 40dB SNR almost every bit should decode to its sign-correct LLR, got %d/%d", agree, len(cw))
}

// Package ldpcsim builds synthetic noisy LLR vectors for exercising the
// ldpc decoders in tests and benchmarks, standing in for the demodulator a
// real receiver would produce them from.
package ldpcsim

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Channel draws AWGN-perturbed log-likelihood ratios for a BPSK-mapped
// codeword at a given signal-to-noise ratio: bit 0 maps to +1, bit 1 to -1,
// the symbol is corrupted by N(0, sigma^2) noise, and the LLR of the noisy
// observation under that Gaussian channel is handed back directly.
type Channel struct {
	noise distuv.Normal
	llr   float64 // 2/sigma^2, the LLR scale factor for a Gaussian channel
}

// NewChannel builds a Channel for the given SNR in dB, measured per
// information bit (Eb/N0) the way FT8 decode-sensitivity figures are
// normally quoted. src seeds the underlying generator so callers can
// reproduce a run.
func NewChannel(ebN0dB float64, src rand.Source) Channel {
	ebN0 := math.Pow(10, ebN0dB/10)
	sigma2 := 1 / (2 * ebN0)
	return Channel{
		noise: distuv.Normal{Mu: 0, Sigma: math.Sqrt(sigma2), Src: src},
		llr:   2 / sigma2,
	}
}

// Perturb returns the LLR vector a receiver would compute for cw after
// BPSK mapping and AWGN corruption: llr[i] = log(P(bit_i=0)/P(bit_i=1)),
// matching the convention ldpc.DecodeProb and ldpc.DecodeLLR expect.
func (c Channel) Perturb(cw []uint8) []float64 {
	out := make([]float64, len(cw))
	for i, b := range cw {
		symbol := 1.0
		if b != 0 {
			symbol = -1.0
		}
		received := symbol + c.noise.Rand()
		out[i] = c.llr * received
	}
	return out
}

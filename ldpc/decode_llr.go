package ldpc

import "math"

// llrAtanhCap is the clamp applied to the check-update's log-likelihood
// output whenever the underlying tanh product saturates past +-0.999; it
// matches the saturation region tanhApprox reports for |x| near 7.6.
const llrAtanhCap = 7.6

// DecodeLLR runs the sum-product decoder in the log-likelihood-ratio
// domain: identical algorithm to DecodeProb, reformulated with
// tanh/atanh identities so confident bits are summed instead of multiplied,
// avoiding the catastrophic cancellation probability-domain messages suffer
// at high confidence. llr[i] = log(P(bit_i=0)/P(bit_i=1)); iters <= 0
// returns the initial sign decision with its Check score.
func DecodeLLR(llr [numVars]float64, iters int) (hard [numVars]uint8, score int) {
	var m varToCheckMsg
	var e checkToVarMsg

	for j := 0; j < numChecks; j++ {
		for idx, v := range Nm[j] {
			if v == 0 {
				continue
			}
			m[j][idx] = llr[v-1]
		}
	}

	var best [numVars]uint8
	var cw [numVars]uint8
	for i := range cw {
		cw[i] = signToBit(llr[i])
	}
	bestScore := Check(cw)
	copy(best[:], cw[:])

	for iter := 0; iter < iters; iter++ {
		// 1. Check update.
		for j := 0; j < numChecks; j++ {
			row := Nm[j]
			for idx1, v1 := range row {
				if v1 == 0 {
					continue
				}
				a := 1.0
				for idx2, v2 := range row {
					if idx2 == idx1 || v2 == 0 {
						continue
					}
					a *= tanhApprox(m[j][idx2] / 2)
				}

				var val float64
				switch {
				case a >= 0.999:
					val = llrAtanhCap
				case a <= -0.999:
					val = -llrAtanhCap
				default:
					val = math.Log((1 + a) / (1 - a))
				}

				i1 := v1 - 1
				for k, c := range Mn[i1] {
					if c-1 == j {
						e[i1][k] = val
						break
					}
				}
			}
		}

		// 2. Hard decision.
		for i := 0; i < numVars; i++ {
			l := llr[i]
			for _, ei := range e[i] {
				l += ei
			}
			if l <= 0 {
				cw[i] = 1
			} else {
				cw[i] = 0
			}
		}

		// 3. Early termination.
		score = Check(cw)
		if score == numChecks {
			return cw, score
		}

		// 4. Best-so-far.
		if score > bestScore {
			bestScore = score
			copy(best[:], cw[:])
		}

		// 5. Variable update.
		for i := 0; i < numVars; i++ {
			for k1, j1v := range Mn[i] {
				j1 := j1v - 1
				l := llr[i]
				for k2, ei := range e[i] {
					if k2 == k1 {
						continue
					}
					l += ei
				}
				for idx, v := range Nm[j1] {
					if v-1 == i {
						m[j1][idx] = l
						break
					}
				}
			}
		}
	}

	return best, bestScore
}

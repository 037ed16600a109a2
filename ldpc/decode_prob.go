package ldpc

import "math"

// varToCheckMsg holds the message a variable node sends to each of its
// (at most 7) neighbor checks, indexed the way Nm lists that check's
// neighbors: msg[j][idx] is the message sent by variable Nm[j][idx]-1 to
// check j. Keying each array by the receiving node's own adjacency slot
// means neither update step needs to search for "my position in the other
// node's neighbor list" while it is the one writing.
type varToCheckMsg [numChecks][7]float64

// checkToVarMsg holds the message a check node sends to each of its (always
// 3) neighbor variables, indexed the way Mn lists that variable's checks:
// msg[i][k] is the message sent by check Mn[i][k]-1 to variable i.
type checkToVarMsg [numVars][3]float64

// DecodeProb runs the sum-product decoder in the probability domain:
// iterative belief propagation over [0,1] "probability
// bit is zero" messages, with the q0=0 guard that prevents a message driven
// to exactly zero by floating point multiplication from NaN-ing out a bit
// for the rest of the run. llr must have length 174 and llr[i] =
// log(P(bit_i=0)/P(bit_i=1)). iters <= 0 returns the initial sign decision
// immediately, with its Check score.
func DecodeProb(llr [numVars]float64, iters int) (hard [numVars]uint8, score int) {
	var p [numVars]float64
	for i, l := range llr {
		p[i] = 1.0 / (1.0 + math.Exp(-l))
	}

	var m varToCheckMsg
	var e checkToVarMsg
	for j := 0; j < numChecks; j++ {
		for idx, v := range Nm[j] {
			if v == 0 {
				continue
			}
			m[j][idx] = p[v-1]
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
		// 1. Check update: E[j][i1] from the product of signed
		// probabilities of every other neighbor of check j.
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
					a *= 2*m[j][idx2] - 1
				}
				val := (1 + a) / 2
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
			q0 := p[i]
			q1 := 1 - p[i]
			for _, ei := range e[i] {
				q0 *= ei
				q1 *= 1 - ei
			}
			pFinal := 1.0
			if q0 != 0 {
				pFinal = q0 / (q0 + q1)
			}
			if pFinal <= 0.5 {
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
				q0 := p[i]
				q1 := 1 - p[i]
				for k2, ei := range e[i] {
					if k2 == k1 {
						continue
					}
					q0 *= ei
					q1 *= 1 - ei
				}
				val := 1.0
				if q0 != 0 {
					val = q0 / (q0 + q1)
				}
				for idx, v := range Nm[j1] {
					if v-1 == i {
						m[j1][idx] = val
						break
					}
				}
			}
		}
	}

	return best, bestScore
}

func signToBit(llr float64) uint8 {
	if llr <= 0 {
		return 1
	}
	return 0
}

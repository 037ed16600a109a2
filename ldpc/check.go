package ldpc

// Check counts how many of the 83 LDPC parity equations a hard-decision
// 174-bit codeword satisfies. A return value of numChecks (83) means the
// codeword is a valid FT8 codeword.
func Check(codeword [numVars]uint8) int {
	score := 0

	for j := 0; j < numChecks; j++ {
		x := uint8(0)
		for _, v := range Nm[j] {
			if v == 0 {
				continue
			}
			x ^= codeword[v-1]
		}
		if x == 0 {
			score++
		}
	}

	return score
}

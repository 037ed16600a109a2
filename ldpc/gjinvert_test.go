package ldpc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unitRow returns the columns[0:91) portion of row r as the c-th standard
// basis vector, leaving columns[91:182) zero as GJInvert requires on entry.
func unitRow(c int) [GJCols]uint8 {
	var row [GJCols]uint8
	row[c] = 1
	return row
}

func identityWhich() [numPayload]int {
	var which [numPayload]int
	for i := range which {
		which[i] = i
	}
	return which
}

// gf2MatMulIdentity checks inv (rows 0..90, columns 91..181 of m) times the
// submatrix formed by picking, for each pivot row r, the columns[0:91) of
// original row which[r], equals the 91x91 identity over GF(2).
func gf2MatMulIdentity(t *testing.T, m *GJMatrix, original *GJMatrix, which [numPayload]int) bool {
	t.Helper()
	for r := 0; r < numPayload; r++ {
		for c := 0; c < numPayload; c++ {
			acc := uint8(0)
			for k := 0; k < numPayload; k++ {
				acc ^= m[r][numPayload+k] & original[which[k]][c]
			}
			want := uint8(0)
			if r == c {
				want = 1
			}
			if acc != want {
				return false
			}
		}
	}
	return true
}

func TestGJInvert_alreadyIdentityNeedsNoSwap(t *testing.T) {
	var m GJMatrix
	for r := 0; r < numPayload; r++ {
		m[r] = unitRow(r)
	}
	for r := numPayload; r < GJRows; r++ {
		m[r] = unitRow(0)
	}
	original := m
	which := identityWhich()

	ok := GJInvert(&m, &which)
	assert.True(t, ok)
	assert.Equal(t, identityWhich(), which)
	assert.True(t, gf2MatMulIdentity(t, &m, &original, which))
}

func TestGJInvert_borrowsSparePivotWhenTopRowsSingular(t *testing.T) {
	var m GJMatrix
	m[0] = unitRow(1)
	m[1] = unitRow(1)
	for r := 2; r < numPayload; r++ {
		m[r] = unitRow(r)
	}
	for r := numPayload; r < GJRows; r++ {
		m[r] = unitRow(0)
	}
	original := m
	which := identityWhich()

	ok := GJInvert(&m, &which)
	assert.True(t, ok)
	assert.Equal(t, numPayload, which[0])
	for r := 1; r < numPayload; r++ {
		assert.Equal(t, r, which[r])
	}
	assert.True(t, gf2MatMulIdentity(t, &m, &original, which))
}

func TestGJInvert_randomDenseMatricesInvertCleanly(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for trial := 0; trial < 5; trial++ {
		var m GJMatrix
		for r := 0; r < GJRows; r++ {
			for c := 0; c < numPayload; c++ {
				m[r][c] = uint8(rnd.Intn(2))
			}
		}
		original := m
		which := identityWhich()

		ok := GJInvert(&m, &which)
		assert.Truef(t, ok, "trial %d: a random 174x91 GF(2) matrix should essentially never be rank-deficient", trial)
		assert.Truef(t, gf2MatMulIdentity(t, &m, &original, which), "trial %d: inverse times permuted submatrix is not identity", trial)
	}
}

func TestGJInvert_failsWhenNoPivotExistsAnywhere(t *testing.T) {
	var m GJMatrix
	// Column 0 is all-zero across every one of the 174 rows: no pivot for
	// row 0 can ever be found.
	for r := 1; r < numPayload; r++ {
		m[r] = unitRow(r)
	}
	which := identityWhich()

	ok := GJInvert(&m, &which)
	assert.False(t, ok)
}

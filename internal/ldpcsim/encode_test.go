package ldpcsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cwsl/ft8ldpc/ldpc"
)

func TestEncode_zeroPayloadIsZeroCodeword(t *testing.T) {
	var payload [91]uint8
	cw := Encode(payload)
	var want [174]uint8
	assert.Equal(t, want, cw)
}

func TestEncode_alwaysSatisfiesParity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var payload [91]uint8
		for i := range payload {
			payload[i] = uint8(rapid.IntRange(0, 1).Draw(t, "bit"))
		}
		cw := Encode(payload)
		for i, b := range payload {
			assert.Equal(t, b, cw[i], "systematic prefix bit %d was not preserved", i)
		}
		assert.Equal(t, 83, ldpc.Check(cw))
	})
}

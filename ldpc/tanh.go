package ldpc

// tanhApprox is a 7/6 rational-polynomial approximation of tanh(x), used as
// the hot inner primitive of DecodeLLR's check update. Max absolute error is
// about 3e-4 on [-7.6, 7.6]; outside that range it saturates to +-0.999
// rather than asymptoting all the way to +-1, which keeps the subsequent
// atanh-style log() in the check update finite.
func tanhApprox(x float64) float64 {
	if x < -7.6 {
		return -0.999
	}
	if x > 7.6 {
		return 0.999
	}

	x2 := x * x
	num := x * (135135 + x2*(17325+x2*(378+x2)))
	den := 135135 + x2*(62370+x2*(3150+28*x2))
	f := num / den

	// The rational approximation overshoots unity as x approaches the 7.6
	// saturation boundary; clamp so the function never reports a
	// probability more extreme than the rest of the decoder expects.
	if f > 0.999 {
		return 0.999
	}
	if f < -0.999 {
		return -0.999
	}
	return f
}

package mlkem

// nttButterfly applies one Cooley-Tukey decimation-in-time butterfly
// group of the given length, starting at start: for each j in
// [start, start+length), (p[j], p[j+length]) becomes
// (p[j] + zeta*p[j+length], p[j] - zeta*p[j+length]), with the zeta
// product Montgomery-reduced. Neither the sum nor the difference is
// otherwise reduced — callers rely on fqmul's output always being
// bounded by Q to reason about the running coefficient bound across
// merged layers.
func nttButterfly(p *poly, start, length int, zeta int16) {
	for j := start; j < start+length; j++ {
		t := fqmul(zeta, p[j+length])
		p[j+length] = p[j] - t
		p[j] = p[j] + t
	}
}

// nttLayer123 performs the first three NTT layers (lengths 128, 64, 32)
// merged into a single pass with no intermediate reduction.
// Precondition: |p[i]| <= Q. Postcondition: |p[i]| <= 4*Q-1.
func nttLayer123(p *poly) {
	nttButterfly(p, 0, 128, zetaLayer1)

	for i, z := range zetaLayer2 {
		nttButterfly(p, i*128, 64, z)
	}

	for i, z := range zetaLayer3 {
		nttButterfly(p, i*64, 32, z)
	}
	assertBound(p, 4*Q-1, "nttLayer123")
}

// nttLayer45 performs layers 4 and 5 (lengths 16 then 8) merged,
// processing the polynomial as 8 independent 32-coefficient subtrees.
// Precondition: |p[i]| <= 4*Q-1. Postcondition: |p[i]| <= 6*Q-1.
func nttLayer45(p *poly) {
	for i := 0; i < 8; i++ {
		base := i * 32
		nttButterfly(p, base, 16, zetaLayer4[i])
		nttButterfly(p, base, 8, zetaLayer5Even[i])
		nttButterfly(p, base+16, 8, zetaLayer5Odd[i])
	}
	assertBound(p, 6*Q-1, "nttLayer45")
}

// nttLayer6 performs layer 6 (length 4) over 32 groups of 8 coefficients.
// Precondition: |p[i]| <= 6*Q-1. Postcondition: |p[i]| <= 7*Q-1.
func nttLayer6(p *poly) {
	for i, z := range zetaLayer6 {
		nttButterfly(p, i*8, 4, z)
	}
	assertBound(p, 7*Q-1, "nttLayer6")
}

// nttLayer7 performs layer 7 (length 2) over 64 groups of 4 coefficients,
// the final forward-NTT layer.
// Precondition: |p[i]| <= 7*Q-1. Postcondition: |p[i]| <= 8*Q-1 = nttBound.
func nttLayer7(p *poly) {
	for i, z := range zetaLayer7 {
		nttButterfly(p, i*4, 2, z)
	}
	assertBound(p, nttBound, "nttLayer7")
}

// polyNTT computes the forward number-theoretic transform of p in place.
// Precondition: every coefficient of p is bounded by Q in absolute value.
// Postcondition: p holds the bitreversed NTT-domain representation, every
// coefficient bounded by nttBound = 8*Q-1 in absolute value.
func polyNTT(p *poly) {
	assertBound(p, Q, "polyNTT entry")
	nttLayer123(p)
	nttLayer45(p)
	nttLayer6(p)
	nttLayer7(p)
}

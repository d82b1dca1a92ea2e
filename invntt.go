package mlkem

// gsButterflyGroup applies one Gentleman-Sande decimation-in-time
// butterfly group of the given length, starting at start: for each j in
// [start, start+length), (p[j], p[j+length]) becomes
// (p[j]+p[j+length], (p[j+length]-p[j])*zeta). If normalize is set, both
// operands are first scaled by the Montgomery/NTT-normalization factor
// montF via fqmul — used only by the very first layer processed, which
// therefore touches every coefficient exactly once. If reduceSum is set,
// the accumulator side is Barrett-reduced before being stored; otherwise
// it is left to grow per the layer's deferred-reduction budget. The
// "b-a" side is always passed through fqmul, whose output is
// unconditionally bounded by Q regardless of how large b-a already is.
func gsButterflyGroup(p *poly, start, length int, zeta int16, normalize, reduceSum bool) {
	for j := start; j < start+length; j++ {
		a := p[j]
		b := p[j+length]
		if normalize {
			a = fqmul(a, montF)
			b = fqmul(b, montF)
		}
		sum := a + b
		if reduceSum {
			sum = barrettReduce(sum)
		}
		p[j] = sum
		p[j+length] = fqmul(zeta, b-a)
	}
}

// invnttLayer7Invert inverts the forward NTT's final layer (length 2,
// 64 blocks) and fuses in the Montgomery/normalization factor montF on
// every coefficient's first read. The zeta used at block i is the
// reverse-order entry of the forward NTT's layer-7 table, per spec.md
// §4.4. Postcondition: |p[i]| < Q.
func invnttLayer7Invert(p *poly) {
	for i := 0; i < 64; i++ {
		zeta := zetaLayer7[63-i]
		gsButterflyGroup(p, i*4, 2, zeta, true, true)
	}
	assertBound(p, Q-1, "invnttLayer7Invert")
}

// invnttLayer6 inverts the forward NTT's layer 6 (length 4, 32 blocks),
// deferring reduction on the accumulator side.
// Precondition: |p[i]| < Q. Postcondition: |p[i]| < 2*Q-1.
func invnttLayer6(p *poly) {
	for i := 0; i < 32; i++ {
		zeta := zetaLayer6[31-i]
		gsButterflyGroup(p, i*8, 4, zeta, false, false)
	}
	assertBound(p, 2*Q-2, "invnttLayer6")
}

// invnttLayer54 inverts the forward NTT's merged layers 5 and 4 (lengths
// 8 then 16): the length-8 pass defers reduction, the length-16 pass
// Barrett-reduces the accumulator, bringing the polynomial back under Q.
// Precondition: |p[i]| < 2*Q-1. Postcondition: |p[i]| < Q.
func invnttLayer54(p *poly) {
	for i := 0; i < 16; i++ {
		zeta := zetaLayer5[15-i]
		gsButterflyGroup(p, i*16, 8, zeta, false, false)
	}
	for i := 0; i < 8; i++ {
		zeta := zetaLayer4[7-i]
		gsButterflyGroup(p, i*32, 16, zeta, false, true)
	}
	assertBound(p, Q-1, "invnttLayer54")
}

// invnttLayer321 inverts the forward NTT's merged layers 3, 2 and 1
// (lengths 32, 64, 128), deferring reduction throughout.
// Precondition: |p[i]| < Q. Postcondition: |p[i]| < nttBound = 8*Q-1.
func invnttLayer321(p *poly) {
	for i := 0; i < 4; i++ {
		zeta := zetaLayer3[3-i]
		gsButterflyGroup(p, i*64, 32, zeta, false, false)
	}
	for i := 0; i < 2; i++ {
		zeta := zetaLayer2[1-i]
		gsButterflyGroup(p, i*128, 64, zeta, false, false)
	}
	gsButterflyGroup(p, 0, 128, zetaLayer1, false, false)
	assertBound(p, nttBound, "invnttLayer321")
}

// polyInvNTTToMont computes the inverse number-theoretic transform of p
// in place, simultaneously converting the result into Montgomery form
// via the fused montF factor folded into the first layer processed.
// Precondition: p holds bitreversed NTT-domain coefficients, any int16
// value. Postcondition: p is in normal order; every coefficient is
// bounded by nttBound = 8*Q-1 (see the per-layer bounds above — the
// layer-54 merge brings every coefficient under Q, and the final merge's
// three unreduced layers can each double that, up to 8*Q-8).
func polyInvNTTToMont(p *poly) {
	invnttLayer7Invert(p)
	invnttLayer6(p)
	invnttLayer54(p)
	invnttLayer321(p)
}

package mlkem

// polyMulcacheCompute precomputes the zeta-weighted odd-index
// coefficients of a (a polynomial currently in NTT form) into cache, so
// that repeated base multiplications against a need not recompute the
// zeta multiply each time. cache[2*i] = a[4*i+1] * zeta_i,
// cache[2*i+1] = a[4*i+3] * (-zeta_i), in Montgomery form, where zeta_i
// is the i-th layer-7 twiddle — the same factor the forward NTT's last
// layer used for this group of four coefficients.
func polyMulcacheCompute(cache *mulcache, a *poly) {
	for i := 0; i < 64; i++ {
		zeta := zetaLayer7[i]
		cache[2*i] = fqmul(a[4*i+1], zeta)
		cache[2*i+1] = fqmul(a[4*i+3], -zeta)
	}
}

// basemul multiplies one quadratic factor's worth of two NTT-domain
// degree-1 polynomials, (a0+a1*X)*(b0+b1*X) mod (X^2 - zeta), using a
// precomputed b1*zeta value instead of zeta itself, each output being one
// Montgomery reduction of a 32-bit sum of two products:
//
//	r0 = a1*bCached + a0*b0
//	r1 = a0*b1 + a1*b0
//
// Precondition: |a0|,|a1| <= 4095; b0, b1, bCached any int16.
// Postcondition: |r0|,|r1| <= 2*Q-1.
func basemul(a0, a1, b0, b1, bCached int16) (r0, r1 int16) {
	r0 = montgomeryReduce(int32(a1)*int32(bCached) + int32(a0)*int32(b0))
	r1 = montgomeryReduce(int32(a0)*int32(b1) + int32(a1)*int32(b0))
	return r0, r1
}

// polyBasemulMontgomeryCached computes r = a * b in the NTT domain, four
// coefficients at a time, using a mulcache precomputed from b via
// polyMulcacheCompute. Each group of four coefficients holds two
// independent quadratic-ring factors, processed with mulcache entries
// 2*i and 2*i+1 respectively. Precondition: every coefficient of a is
// bounded by 4095 in absolute value (callers pass a freshly-reduced
// polynomial, never a raw NTT output). Postcondition: every coefficient
// of r is bounded by 2*Q-1 in absolute value.
func polyBasemulMontgomeryCached(r, a, b *poly, cache *mulcache) {
	for i := 0; i < N/4; i++ {
		j := 4 * i
		r[j], r[j+1] = basemul(a[j], a[j+1], b[j], b[j+1], cache[2*i])
		r[j+2], r[j+3] = basemul(a[j+2], a[j+3], b[j+2], b[j+3], cache[2*i+1])
	}
}

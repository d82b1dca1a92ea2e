package mlkem

// polyCBDEta2 samples a polynomial from the centred binomial distribution
// CBD_2, consuming buf as a stream of 4-bit groups (2 per byte, LSB first):
// for each coefficient, A is the popcount of the first 2 bits, B the
// popcount of the next 2, and the coefficient is A-B. buf must be exactly
// Eta2*N/4 = N/2 bytes (4 bits per coefficient). The 0x55555555 mask sums
// adjacent bit pairs in place across a whole 32-bit word at once instead of
// a per-bit loop, the standard trick for this distribution.
func polyCBDEta2(buf []byte) poly {
	var r poly
	for i := 0; i < N/8; i++ {
		t := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555
		for j := 0; j < 8; j++ {
			a := int16((d >> (4 * j)) & 0x3)
			b := int16((d >> (4*j + 2)) & 0x3)
			r[8*i+j] = a - b
		}
	}
	return r
}

// polyCBDEta3 samples CBD_3 from 3-bit groups. buf must be exactly
// 3*N/4 bytes.
func polyCBDEta3(buf []byte) poly {
	var r poly
	for i := 0; i < N/4; i++ {
		t := uint32(buf[3*i]) | uint32(buf[3*i+1])<<8 | uint32(buf[3*i+2])<<16
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249
		for j := 0; j < 4; j++ {
			a := int16((d >> (6 * j)) & 0x7)
			b := int16((d >> (6*j + 3)) & 0x7)
			r[4*i+j] = a - b
		}
	}
	return r
}

// polyCBD dispatches to polyCBDEta2 or polyCBDEta3 by eta, for callers that
// only know eta at runtime (eta1 varies by parameter set; eta2 is always 2).
func polyCBD(buf []byte, eta int) poly {
	if eta == 3 {
		return polyCBDEta3(buf)
	}
	return polyCBDEta2(buf)
}

// maxEtaBufBytes is eta*N/4 at eta's largest value, 3 (used only by
// ML-KEM-512's Eta1); the size of the backing storage every noise draw
// below slices down to the eta actually in play. That storage is handed to
// a PRF interface method, so it escapes to the heap on every draw.
const maxEtaBufBytes = 3 * N / 4

// polyGetNoiseEta1 draws a centred-binomial noise polynomial with
// parameter eta1 from prf, seeded by seed and nonce.
func polyGetNoiseEta1(prf PRF, seed [32]byte, nonce byte, eta1 int) poly {
	var storage [maxEtaBufBytes]byte
	buf := storage[:eta1*N/4]
	prf.Stream(buf, seed, nonce)
	return polyCBD(buf, eta1)
}

// polyGetNoiseEta2 draws a centred-binomial noise polynomial with
// parameter Eta2 from prf, seeded by seed and nonce.
func polyGetNoiseEta2(prf PRF, seed [32]byte, nonce byte) poly {
	var storage [Eta2 * N / 4]byte
	buf := storage[:]
	prf.Stream(buf, seed, nonce)
	return polyCBDEta2(buf)
}

// polyGetNoiseEta1X4 draws four eta1-noise polynomials at once, one per
// nonce in nonces, preferring prf4x's batched stream when one is supplied
// and falling back to four scalar PRF calls otherwise.
func polyGetNoiseEta1X4(prf PRF, prf4x PRF4x, seed [32]byte, nonces [4]byte, eta1 int) [4]poly {
	var storage [4][maxEtaBufBytes]byte
	var bufs [4][]byte
	for i := range bufs {
		bufs[i] = storage[i][:eta1*N/4]
	}
	if prf4x != nil {
		prf4x.Stream4x(bufs, seed, nonces)
	} else {
		for i := range bufs {
			prf.Stream(bufs[i], seed, nonces[i])
		}
	}
	var r [4]poly
	for i := range r {
		r[i] = polyCBD(bufs[i], eta1)
	}
	return r
}

// polyGetNoiseEta1122X4 draws two eta1-noise polynomials followed by two
// Eta2-noise polynomials, across nonces 0..3, using the 4-way PRF in one
// shot when eta1 equals Eta2 (so all four streams are the same length) and
// falling back to two scalar calls per distribution otherwise.
func polyGetNoiseEta1122X4(prf PRF, prf4x PRF4x, seed [32]byte, eta1 int) (r0, r1, e0, e1 poly) {
	if prf4x != nil && eta1 == Eta2 {
		res := polyGetNoiseEta1X4(prf, prf4x, seed, [4]byte{0, 1, 2, 3}, eta1)
		return res[0], res[1], res[2], res[3]
	}
	r0 = polyGetNoiseEta1(prf, seed, 0, eta1)
	r1 = polyGetNoiseEta1(prf, seed, 1, eta1)
	e0 = polyGetNoiseEta2(prf, seed, 2)
	e1 = polyGetNoiseEta2(prf, seed, 3)
	return r0, r1, e0, e1
}

// Package mlkem implements the polynomial arithmetic core of ML-KEM
// (Module-Lattice Key-Encapsulation Mechanism) as specified in FIPS 203.
//
// This package provides the mathematical engine over the ring
// R_q = Z_q[X]/(X^256+1) with q = 3329: the forward and inverse
// number-theoretic transforms, base multiplication in the NTT domain,
// Barrett and Montgomery modular reduction, coefficient compression and
// decompression, byte serialization, message encoding, and centred
// binomial noise sampling. It does not implement the IND-CPA public-key
// encryption scheme, the Fujisaki-Okamoto KEM wrapper, key generation, or
// the underlying Keccak/SHAKE primitives — those are the concern of a
// caller built on top of this package.
//
// Functions either update a caller-provided poly in place or return a
// fixed-size array by value. The transforms, base multiplication,
// reduction and the byte and message codecs do not allocate; the byte
// slices returned by polyCompressDu and polyCompressDv, and the PRF
// buffers of the noise-sampling functions (which pass through the PRF
// interfaces), are heap-allocated.
package mlkem

// Global ring parameters from FIPS 203.
const (
	// N is the number of coefficients in a polynomial.
	N = 256

	// Q is the ML-KEM modulus: q = 3329.
	Q = 3329

	// HalfQ is (q+1)/2, the polynomial-message encoding of a set bit.
	HalfQ = 1665

	// Eta2 is the centred binomial noise parameter used for the error
	// terms in both CPA encryption and decryption; it never varies by
	// parameter set, unlike Eta1.
	Eta2 = 2
)

// Montgomery-domain constants, all derived from Q = 3329 and R = 2^16 mod Q.
const (
	// mont is R mod q = 2^16 mod 3329.
	mont int16 = 2285

	// montF is R^2 / 128 mod q, the single factor that both undoes the
	// NTT's non-normalized scaling and leaves the result in Montgomery
	// form, applied via fqmul to every coefficient in the first layer
	// invNTT processes.
	montF int16 = 1441

	// toMontFactor is 2^32 mod q, used by polyToMont to move plain
	// coefficients into Montgomery form via a single fqmul.
	toMontFactor int16 = 1353

	// qInv is q^-1 mod 2^16, represented as a signed 16-bit value
	// (-3327 ≡ 62209 mod 65536). Used by montgomeryReduce.
	qInv int16 = -3327

	// barrettV is the precomputed Barrett reduction constant
	// floor((2^26 + q/2) / q).
	barrettV int16 = 20159

	// nttBound is the maximum absolute value of any coefficient directly
	// after poly_ntt: 8*Q - 1.
	nttBound = 8*Q - 1
)

// poly is a polynomial in R_q: 256 coefficients, each a signed 16-bit
// integer. Depending on context a poly is either in normal order with
// canonical [0,Q) coefficients, in normal order with coefficients merely
// bounded in absolute value (e.g. immediately after invNTT), or in
// bitreversed NTT-domain order — every function's doc comment states
// which contract applies to its arguments and which it establishes for
// its results. There is no separate Go type for these states: following
// the ring's single-array flavour of computation, a distinct wrapper
// type would cost an allocation-free hot path more than it buys in
// static safety (see SPEC_FULL.md's resolution of this Open Question).
type poly [N]int16

// mulcache holds the 128 precomputed, Montgomery-domain values that speed
// up base multiplication against a second operand already in NTT form:
// mulcache[2*i] = a[4*i+1] * zeta_i, mulcache[2*i+1] = a[4*i+3] * (-zeta_i),
// for the i-th quadratic factor Z_q[X]/(X^2 - zeta_i). Every entry is
// bounded by Q in absolute value. A mulcache is computed on demand from a
// polynomial in NTT form and is meant to be discarded after use; it holds
// no independent lifecycle.
type mulcache [N / 2]int16

package mlkem

// PRF is the pseudorandom byte source noise sampling and matrix expansion
// draw from: given a 32-byte seed and a nonce, it yields an arbitrary-length
// deterministic byte stream. This package does not implement one — Keccak,
// SHA3 and SHAKE are deliberately kept out of the arithmetic core — but
// every function that needs randomness takes a PRF so it can be driven by
// whatever the caller wires in. The shakeprf subpackage supplies a
// crypto/sha3-backed implementation for tests and general use.
type PRF interface {
	// Stream writes len(out) pseudorandom bytes derived from seed and
	// nonce into out. Calls with the same seed and nonce always produce
	// the same stream; out may be longer than one underlying squeeze and
	// the implementation is responsible for refilling internally.
	Stream(out []byte, seed [32]byte, nonce byte)
}

// PRF4x is a batched PRF producing four independent streams, one per
// nonce, in a single call. Implementations that can interleave Keccak
// lanes (4-way AVX2 SHAKE, for instance) do so here for a throughput win
// the scalar PRF interface cannot express; a PRF4x is never required,
// only an optional accelerator the noise-sampling layer detects and uses
// when present.
type PRF4x interface {
	Stream4x(out [4][]byte, seed [32]byte, nonces [4]byte)
}

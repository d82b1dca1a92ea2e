// Package shakeprf supplies a SHAKE-based reference implementation of the
// mlkem.PRF and mlkem.PRF4x collaborator interfaces. It exists for tests
// and as a usable default; it is not the only valid PRF, just the obvious
// one to reach for when nothing else is wired up.
package shakeprf

import "crypto/sha3"

// Default is the zero-value shakeprf.PRF, ready to use.
var Default PRF

// PRF implements mlkem.PRF with SHAKE256, absorbing the 32-byte seed
// followed by the single nonce byte and squeezing out as many bytes as the
// caller asks for.
type PRF struct{}

// Stream implements mlkem.PRF.
func (PRF) Stream(out []byte, seed [32]byte, nonce byte) {
	h := sha3.NewSHAKE256()
	h.Write(seed[:])
	h.Write([]byte{nonce})
	h.Read(out)
}

// Four4x implements mlkem.PRF4x by running the scalar PRF four times; it
// exists so callers that want the 4-way interface always have something to
// plug in, not because four sequential SHAKE absorptions are actually
// faster than one.
type Four4x struct{}

// Stream4x implements mlkem.PRF4x.
func (Four4x) Stream4x(out [4][]byte, seed [32]byte, nonces [4]byte) {
	var p PRF
	for i := range out {
		p.Stream(out[i], seed, nonces[i])
	}
}

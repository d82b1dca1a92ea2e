package mlkem

import "testing"

func canonicalOf(a int16) uint16 {
	return toUnsignedCanonical(barrettReduce(a))
}

func TestNTTInvNTTRoundTrip(t *testing.T) {
	var p0 poly
	for i := range p0 {
		p0[i] = int16((i * 97) % Q)
	}

	p := p0
	polyNTT(&p)
	if nttMax := absMax(&p); nttMax > nttBound {
		t.Fatalf("polyNTT output exceeds nttBound: got %d", nttMax)
	}

	polyInvNTTToMont(&p)

	for i := range p {
		// p[i] is now the Montgomery-domain representative of p0[i];
		// montgomeryReduce divides out the extra factor of R.
		got := canonicalOf(montgomeryReduce(int32(p[i])))
		want := canonicalOf(p0[i])
		if got != want {
			t.Fatalf("round trip mismatch at %d: got %d want %d", i, got, want)
		}
	}
}

func TestNTTOfUnitVector(t *testing.T) {
	// ntt((1,0,...,0)) is not the constant-1 polynomial: the merged-layer
	// butterfly structure only ever pairs the nonzero value 1 with a zero
	// partner, so both outputs of each such butterfly are 1 and every
	// even-indexed slot ends up holding 1, while every odd-indexed slot
	// only ever meets zero partners and stays 0.
	var p poly
	p[0] = 1
	polyNTT(&p)
	for i, c := range p {
		want := uint16(0)
		if i%2 == 0 {
			want = 1
		}
		if canonicalOf(c) != want {
			t.Fatalf("ntt(unit vector)[%d] = %d, want %d", i, canonicalOf(c), want)
		}
	}
}

func absMax(p *poly) int16 {
	var m int16
	for _, c := range p {
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

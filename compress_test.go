package mlkem

import "testing"

func TestCompressDecompressD1Boundary(t *testing.T) {
	// The true flip points of round(2x/q) mod 2 are where 2x/q crosses a
	// half-integer: x=832 is just below the 0.5 crossing, x=833 just
	// above it.
	cases := []struct {
		x    uint16
		want uint16
	}{
		{0, 0},
		{832, 0},
		{833, 1},
		{1664, 1},
		{1665, 1},
		{2496, 1},
		{2497, 0},
		{Q - 1, 0},
	}
	for _, c := range cases {
		if got := compressD(c.x, 1); got != c.want {
			t.Errorf("compressD(%d,1) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestDecompressD1(t *testing.T) {
	if got := decompressD(0, 1); got != 0 {
		t.Errorf("decompressD(0,1) = %d, want 0", got)
	}
	if got := decompressD(1, 1); got != HalfQ {
		t.Errorf("decompressD(1,1) = %d, want %d", got, uint16(HalfQ))
	}
}

func TestCompressDecompressRoundTripApprox(t *testing.T) {
	for _, d := range []uint{4, 5, 10, 11} {
		for x := uint16(0); x < Q; x += 7 {
			c := compressD(x, d)
			if c >= 1<<d {
				t.Fatalf("compressD(%d,%d) = %d out of range", x, d, c)
			}
			y := decompressD(c, d)
			// compress/decompress is lossy; the round trip must land
			// within one compression step of the original value.
			step := uint16(Q >> d)
			diff := int(y) - int(x)
			if diff < 0 {
				diff = -diff
			}
			wrapped := Q - diff
			if diff > int(step)+1 && wrapped > int(step)+1 {
				t.Fatalf("compress/decompress d=%d: x=%d -> y=%d, drift too large", d, x, y)
			}
		}
	}
}

func FuzzCompressDecompressD(f *testing.F) {
	f.Add(uint16(0), uint8(10))
	f.Add(uint16(1664), uint8(11))
	f.Add(uint16(Q-1), uint8(4))
	f.Fuzz(func(t *testing.T, x uint16, d uint8) {
		dd := uint(d%5) // map into {0,1,2,3,4}, an index into widths
		widths := [5]uint{1, 4, 5, 10, 11}
		width := widths[dd]
		x %= Q
		c := compressD(x, width)
		if c >= 1<<width {
			t.Fatalf("compressD(%d,%d) = %d out of range", x, width, c)
		}
		y := decompressD(c, width)
		if uint32(y) >= Q {
			t.Fatalf("decompressD(%d,%d) = %d out of range", c, width, y)
		}
	})
}

func TestPolyCompressDuDvRoundTrip(t *testing.T) {
	for _, du := range []uint{10, 11} {
		var p poly
		for i := range p {
			p[i] = int16(i * 11 % Q)
		}
		b := polyCompressDu(&p, du)
		if len(b) != N*int(du)/8 {
			t.Fatalf("polyCompressDu(du=%d) length = %d, want %d", du, len(b), N*int(du)/8)
		}
		got := polyDecompressDu(b, du)
		for i := range got {
			u := uint16(got[i])
			if u >= Q {
				t.Fatalf("polyDecompressDu produced non-canonical coefficient %d", u)
			}
		}
	}
	for _, dv := range []uint{4, 5} {
		var p poly
		for i := range p {
			p[i] = int16(i * 7 % Q)
		}
		b := polyCompressDv(&p, dv)
		if len(b) != N*int(dv)/8 {
			t.Fatalf("polyCompressDv(dv=%d) length = %d, want %d", dv, len(b), N*int(dv)/8)
		}
		_ = polyDecompressDv(b, dv)
	}
}

package mlkem

import "testing"

func TestValueBarrier16Identity(t *testing.T) {
	for _, x := range []uint16{0, 1, 0xFFFF, 0x8000, 1234} {
		if got := valueBarrier16(x); got != x {
			t.Errorf("valueBarrier16(%d) = %d, want %d", x, got, x)
		}
	}
}

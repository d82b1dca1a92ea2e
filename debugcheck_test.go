//go:build mlkemdebug

package mlkem

import "testing"

func TestAssertBoundPanicsOnViolation(t *testing.T) {
	var p poly
	p[5] = 100
	defer func() {
		if recover() == nil {
			t.Fatal("assertBound did not panic on an out-of-bound coefficient")
		}
	}()
	assertBound(&p, 50, "test")
}

func TestAssertCanonicalPanicsOnViolation(t *testing.T) {
	var p poly
	p[5] = -1
	defer func() {
		if recover() == nil {
			t.Fatal("assertCanonical did not panic on a non-canonical coefficient")
		}
	}()
	assertCanonical(&p, "test")
}

func TestNTTLayerBoundsHoldUnderDebugChecks(t *testing.T) {
	var p poly
	for i := range p {
		p[i] = int16((i * 53) % Q)
	}
	polyNTT(&p)
	polyInvNTTToMont(&p)
}

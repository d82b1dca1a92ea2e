//go:build mlkemdebug

package mlkem

// This file is compiled only under the mlkemdebug build tag. It adds
// runtime checks for the numeric bounds every function's doc comment
// promises, at a cost release builds never pay.

// assertBound panics if any coefficient of p exceeds bound in absolute
// value. Call sites name the layer whose postcondition they're checking so
// a failure points straight at the violated contract.
func assertBound(p *poly, bound int16, where string) {
	for i, c := range p {
		if c < -bound || c > bound {
			panic(where + ": coefficient " + itoa(i) + " = " + itoa(int(c)) + " exceeds bound " + itoa(int(bound)))
		}
	}
}

// assertCanonical panics if any coefficient of p, reinterpreted as uint16,
// is not in [0, Q).
func assertCanonical(p *poly, where string) {
	for i, c := range p {
		if uint16(c) >= Q {
			panic(where + ": coefficient " + itoa(i) + " = " + itoa(int(c)) + " not canonical")
		}
	}
}

// itoa is a tiny decimal formatter so this file doesn't need to import
// strconv or fmt just for a handful of debug-build panic messages.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

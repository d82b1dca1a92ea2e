package mlkem

// polyAdd adds b into r coefficient-wise, with no reduction: r[i] += b[i].
// It is the caller's responsibility to keep the sum within int16 range —
// this is exactly as cheap, and exactly as unsafe on out-of-bound inputs,
// as the FIPS 203 reference pseudocode's "+" on ring elements.
func polyAdd(r *poly, b *poly) {
	for i := range r {
		r[i] += b[i]
	}
}

// polySub subtracts b from r coefficient-wise, with no reduction.
func polySub(r *poly, b *poly) {
	for i := range r {
		r[i] -= b[i]
	}
}

// polyToMont multiplies every coefficient of r by 2^32 mod q, converting
// r from plain to Montgomery form. Output is bounded by Q in absolute
// value, regardless of r's input bound, since fqmul's output is always
// bounded by Q.
func polyToMont(r *poly) {
	for i := range r {
		r[i] = fqmul(r[i], toMontFactor)
	}
	assertBound(r, Q, "polyToMont")
}

// polyReduce Barrett-reduces every coefficient of r and then brings it
// into canonical [0, Q) form. After this call every coefficient of r,
// reinterpreted as uint16, lies in [0, Q).
func polyReduce(r *poly) {
	for i := range r {
		r[i] = int16(toUnsignedCanonical(barrettReduce(r[i])))
	}
	assertCanonical(r, "polyReduce")
}

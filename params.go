package mlkem

// ParameterSet bundles the per-variant constants ML-KEM-512/768/1024 differ
// by. The polynomial arithmetic in this package is parameter-set agnostic
// everywhere except the noise width (Eta1) and the ciphertext compression
// widths (Du, Dv); callers select a ParameterSet once and thread it through
// rather than this package hard-coding any one variant.
type ParameterSet struct {
	Name string
	K    int // number of polynomials per vector (module rank)
	Eta1 int // CBD noise parameter for s and e
	Du   uint
	Dv   uint
}

var (
	// ParamSet512 is ML-KEM-512.
	ParamSet512 = ParameterSet{Name: "ML-KEM-512", K: 2, Eta1: 3, Du: 10, Dv: 4}
	// ParamSet768 is ML-KEM-768.
	ParamSet768 = ParameterSet{Name: "ML-KEM-768", K: 3, Eta1: 2, Du: 10, Dv: 4}
	// ParamSet1024 is ML-KEM-1024.
	ParamSet1024 = ParameterSet{Name: "ML-KEM-1024", K: 4, Eta1: 2, Du: 11, Dv: 5}
)

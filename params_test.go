package mlkem

import "testing"

func TestParameterSets(t *testing.T) {
	for _, ps := range []ParameterSet{ParamSet512, ParamSet768, ParamSet1024} {
		if ps.K < 2 || ps.K > 4 {
			t.Errorf("%s: K = %d out of range", ps.Name, ps.K)
		}
		if ps.Eta1 != 2 && ps.Eta1 != 3 {
			t.Errorf("%s: Eta1 = %d, want 2 or 3", ps.Name, ps.Eta1)
		}
		if ps.Du != 10 && ps.Du != 11 {
			t.Errorf("%s: Du = %d, want 10 or 11", ps.Name, ps.Du)
		}
		if ps.Dv != 4 && ps.Dv != 5 {
			t.Errorf("%s: Dv = %d, want 4 or 5", ps.Name, ps.Dv)
		}
	}
	if ParamSet512.K == ParamSet768.K {
		t.Errorf("ParamSet512 and ParamSet768 must differ in K")
	}
}

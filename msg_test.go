package mlkem

import "testing"

func TestPolyFromMsg(t *testing.T) {
	var msg [32]byte
	msg[0] = 0xFF
	p := polyFromMsg(&msg)
	for i := 0; i < 8; i++ {
		if p[i] != HalfQ {
			t.Errorf("coefficient %d = %d, want HalfQ", i, p[i])
		}
	}
	for i := 8; i < N; i++ {
		if p[i] != 0 {
			t.Errorf("coefficient %d = %d, want 0", i, p[i])
		}
	}
}

func TestPolyToMsgRoundTrip(t *testing.T) {
	var msg [32]byte
	for i := range msg {
		msg[i] = byte(i*97 + 13)
	}
	p := polyFromMsg(&msg)
	got := polyToMsg(&p)
	if got != msg {
		t.Fatalf("polyToMsg(polyFromMsg(msg)) != msg")
	}
}

package game

import "testing"

func TestProgressQueries(t *testing.T) {
	var p Progress
	if !p.IsUnlocked(1) || p.IsUnlocked(2) || p.IsUnlocked(0) {
		t.Errorf("fresh progress unlock state wrong: %+v", p)
	}

	if p.complete(2) {
		t.Error("complete(2) before station 1 should fail")
	}
	if !p.complete(1) || p.Current != 1 || !p.IsCompleted(1) {
		t.Errorf("complete(1) -> %+v", p)
	}
	if p.complete(1) {
		t.Error("completing station 1 twice should fail")
	}
	if p.CompletedCount() != 1 || p.Fraction() != 0.25 || p.AllComplete() {
		t.Errorf("after one station: count=%d fraction=%f", p.CompletedCount(), p.Fraction())
	}
	if p.IsCompleted(9) {
		t.Error("IsCompleted(9) should be false")
	}
}

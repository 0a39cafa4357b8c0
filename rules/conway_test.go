package rules

import "testing"

func TestNextState(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Errorf("NextState(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := NextState(false, n); got != wantBorn {
			t.Errorf("NextState(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

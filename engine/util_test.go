package engine

import "testing"

func TestMinMaxClamp(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3, 7) = %d", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %d", got)
	}
	if got := Min(int32(-4), int32(2)); got != -4 {
		t.Errorf("Min(-4, 2) = %d", got)
	}
	if got := Clamp(-2, 0, 5); got != 0 {
		t.Errorf("Clamp(-2, 0, 5) = %d", got)
	}
	if got := Clamp(9, 0, 5); got != 5 {
		t.Errorf("Clamp(9, 0, 5) = %d", got)
	}
	if got := Clamp(3, 0, 5); got != 3 {
		t.Errorf("Clamp(3, 0, 5) = %d", got)
	}
}

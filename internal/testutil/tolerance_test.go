package testutil

import "testing"

func TestFirstMismatch(t *testing.T) {
	a := []int8{1, 2, 3}
	b := []int8{1, 5, 3}

	idx, err := FirstMismatch(a, b)
	if err != nil {
		t.Fatalf("FirstMismatch error: %v", err)
	}

	if idx != 1 {
		t.Fatalf("FirstMismatch = %d, want 1", idx)
	}
}

func TestFirstMismatchLengthMismatch(t *testing.T) {
	_, err := FirstMismatch([]int8{1}, []int8{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestFirstMismatchIdentical(t *testing.T) {
	a := []int8{-128, 0, 127}

	idx, err := FirstMismatch(a, a)
	if err != nil {
		t.Fatalf("FirstMismatch error: %v", err)
	}

	if idx != -1 {
		t.Fatalf("FirstMismatch = %d, want -1 for identical slices", idx)
	}
}

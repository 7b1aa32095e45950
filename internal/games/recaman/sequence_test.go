package recaman

import "testing"

func TestSequencePrefix(t *testing.T) {
	want := []int64{0, 1, 3, 6, 2, 7, 13, 20, 12, 21, 11, 22, 10, 23, 9, 24, 8, 25, 43, 62}

	got := Sequence(len(want))
	if len(got) != len(want) {
		t.Fatalf("Sequence(%d) returned %d terms", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("term %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSequenceLength(t *testing.T) {
	cases := []int{0, 1, 2, 100, DefaultTerms}
	for _, n := range cases {
		if got := Sequence(n); len(got) != n {
			t.Errorf("Sequence(%d) returned %d terms", n, len(got))
		}
	}
}

func TestSequenceNeverNegative(t *testing.T) {
	for i, term := range Sequence(DefaultTerms) {
		if term < 0 {
			t.Fatalf("term %d = %d, want >= 0", i, term)
		}
	}
}

// The backward step is only taken to a value not already in the sequence,
// so no value may repeat.
func TestSequenceBackwardStepsAreFresh(t *testing.T) {
	terms := Sequence(DefaultTerms)
	seen := make(map[int64]int)
	for i, term := range terms {
		if i > 0 && term < terms[i-1] {
			if first, dup := seen[term]; dup {
				t.Fatalf("backward step at %d revisits %d (first at %d)", i, term, first)
			}
		}
		if _, dup := seen[term]; !dup {
			seen[term] = i
		}
	}
}

func TestMax(t *testing.T) {
	if got := Max(Sequence(20)); got != 62 {
		t.Errorf("Max of the first 20 terms = %d, want 62", got)
	}
	if got := Max(nil); got != 0 {
		t.Errorf("Max(nil) = %d, want 0", got)
	}
}

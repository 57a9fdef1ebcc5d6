package qsim

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestRepetitions(t *testing.T) {
	// floor((pi/4) * sqrt(2^n)) for n = 1..6.
	want := []int{1, 1, 2, 3, 4, 6}
	for n := 1; n <= 6; n++ {
		if got := Repetitions(n); got != want[n-1] {
			t.Errorf("Repetitions(%d) == %d, want %d", n, got, want[n-1])
		}
	}
}

func TestRepetitionsFloorsSingleQubit(t *testing.T) {
	// (pi/4)*sqrt(2) is about 1.11; rounding to nearest gives 1 here, but
	// the distinction shows up when callers reach for round instead of
	// floor at the 2-qubit boundary: (pi/4)*sqrt(4) is about 1.57 and must
	// stay 1, not 2, or the circuit overshoots the amplitude peak.
	if got := Repetitions(1); got != 1 {
		t.Errorf("Repetitions(1) == %d, want 1", got)
	}
	if got := Repetitions(2); got != 1 {
		t.Errorf("Repetitions(2) == %d, want 1", got)
	}
}

func TestGroverFindsEveryNeedle(t *testing.T) {
	for _, l := range []int{4, 8, 16, 32} {
		for pos := 0; pos < l; pos++ {
			t.Run(fmt.Sprintf("len%d_pos%d", l, pos), func(t *testing.T) {
				input, err := NeedleString(l, pos)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				res, err := Grover(GroverOpts{Input: input})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Result != pos {
					t.Errorf("decoded needle %d, want %d", res.Result, pos)
				}
				if !res.Confirmed {
					t.Errorf("self-check not confirmed for %q", input)
				}
				if res.Needle != pos {
					t.Errorf("ground truth %d, want %d", res.Needle, pos)
				}
				if res.Iterations != Repetitions(res.DataQubits) {
					t.Errorf("ran %d iterations, want %d", res.Iterations, Repetitions(res.DataQubits))
				}
			})
		}
	}
}

func TestGroverWithoutSharpening(t *testing.T) {
	// The control-qubit sharpening step is cosmetic; the needle must stay
	// recoverable without it.
	for _, l := range []int{4, 8, 16} {
		for pos := 0; pos < l; pos++ {
			input, err := NeedleString(l, pos)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res, err := Grover(GroverOpts{Input: input, SkipSharpen: true})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Result != pos || !res.Confirmed {
				t.Errorf("unsharpened run decoded %d (confirmed=%v), want %d", res.Result, res.Confirmed, pos)
			}
		}
	}
}

func TestGroverSingleDataQubitRequiresSharpening(t *testing.T) {
	// On a 2-element haystack the two unsharpened final states differ
	// only by a global phase, so no readout rule can separate them.
	for pos := 0; pos < 2; pos++ {
		input, err := NeedleString(2, pos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := Grover(GroverOpts{Input: input, SkipSharpen: true}); err == nil {
			t.Errorf("expected error for unsharpened %q run: got nil", input)
		}
	}
}

func TestGroverSingleDataQubit(t *testing.T) {
	// The smallest circuit leaves both extremes at equal magnitude; the
	// tie-break toward the argmin is what decodes it correctly.
	for pos := 0; pos < 2; pos++ {
		input, err := NeedleString(2, pos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res, err := Grover(GroverOpts{Input: input})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Result != pos || !res.Confirmed {
			t.Errorf("decoded %d (confirmed=%v), want %d", res.Result, res.Confirmed, pos)
		}
	}
}

func TestGroverOvercooked(t *testing.T) {
	// Forcing extra iterations rotates past the amplitude peak; the
	// mismatch must surface as an unconfirmed result, not a silent pass.
	input, err := NeedleString(16, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := Grover(GroverOpts{Input: input, Iterations: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confirmed {
		t.Errorf("overcooked run self-reported confirmed, want error result")
	}
	if res.Iterations != 6 {
		t.Errorf("ran %d iterations, want 6 from the override", res.Iterations)
	}
}

func TestGroverRandomInput(t *testing.T) {
	res, err := Grover(GroverOpts{Rand: rand.New(rand.NewSource(1234))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Confirmed {
		t.Errorf("random haystack %q decoded %d, want %d", res.Input, res.Result, res.Needle)
	}

	// The same seed must reproduce the same run exactly.
	again, err := Grover(GroverOpts{Rand: rand.New(rand.NewSource(1234))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Input != res.Input || again.Result != res.Result {
		t.Errorf("seeded runs diverged: %q/%d vs %q/%d", res.Input, res.Result, again.Input, again.Result)
	}
}

func TestGroverRequiresInputOrRand(t *testing.T) {
	if _, err := Grover(GroverOpts{}); err == nil {
		t.Errorf("expected error: got nil")
	}
}

func TestGroverOnIteration(t *testing.T) {
	input, err := NeedleString(8, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var seen int
	res, err := Grover(GroverOpts{
		Input: input,
		OnIteration: func(i int, state []complex128) {
			if i != seen {
				t.Errorf("iteration callback got %d, want %d", i, seen)
			}
			if len(state) != 16 {
				t.Errorf("callback state has %d amplitudes, want 16", len(state))
			}
			seen++
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != res.Iterations {
		t.Errorf("callback fired %d times, want %d", seen, res.Iterations)
	}
}

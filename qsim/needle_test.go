package qsim

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNeedleString(t *testing.T) {
	tcs := []struct {
		length, pos int
		eout        string
		eErr        bool
	}{
		{length: 2, pos: 0, eout: "10"},
		{length: 2, pos: 1, eout: "01"},
		{length: 8, pos: 5, eout: "00000100"},
		{length: 3, pos: 0, eErr: true},
		{length: 0, pos: 0, eErr: true},
		{length: 4, pos: 4, eErr: true},
		{length: 4, pos: -1, eErr: true},
	}
	for _, tc := range tcs {
		got, err := NeedleString(tc.length, tc.pos)
		if tc.eErr {
			if err == nil {
				t.Errorf("NeedleString(%d, %d): expected error, got nil", tc.length, tc.pos)
			}
			continue
		}
		if err != nil {
			t.Errorf("NeedleString(%d, %d): unexpected error: %v", tc.length, tc.pos, err)
			continue
		}
		if got != tc.eout {
			t.Errorf("NeedleString(%d, %d) == %q, want %q", tc.length, tc.pos, got, tc.eout)
		}
	}
}

func TestNeedleAt(t *testing.T) {
	tcs := []struct {
		pos  int
		eout string
	}{
		{pos: 0, eout: "10"},
		{pos: 1, eout: "01"},
		{pos: 2, eout: "0010"},
		{pos: 5, eout: "00000100"},
		{pos: 8, eout: "0000000010000000"},
	}
	for _, tc := range tcs {
		got, err := NeedleAt(tc.pos)
		if err != nil {
			t.Errorf("NeedleAt(%d): unexpected error: %v", tc.pos, err)
			continue
		}
		if got != tc.eout {
			t.Errorf("NeedleAt(%d) == %q, want %q", tc.pos, got, tc.eout)
		}
	}
	if _, err := NeedleAt(-1); err == nil {
		t.Errorf("NeedleAt(-1): expected error, got nil")
	}
}

func TestRandomNeedleString(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		s := RandomNeedleString(r, 5)
		if err := checkNeedleString(s); err != nil {
			t.Fatalf("generated invalid haystack %q: %v", s, err)
		}
		if len(s) > 32 {
			t.Errorf("haystack %q longer than 2^5", s)
		}
	}

	// Identical seeds produce identical sequences.
	a, b := rand.New(rand.NewSource(7)), rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		if sa, sb := RandomNeedleString(a, 4), RandomNeedleString(b, 4); sa != sb {
			t.Fatalf("seeded generation diverged: %q vs %q", sa, sb)
		}
	}
}

func TestNeedlePosition(t *testing.T) {
	s, err := NeedleString(16, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, err := NeedlePosition(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != 11 {
		t.Errorf("NeedlePosition(%q) == %d, want 11", s, pos)
	}
	if _, err := NeedlePosition(strings.Repeat("0", 8)); err == nil {
		t.Errorf("expected error for needle-free haystack: got nil")
	}
}

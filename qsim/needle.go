package qsim

import (
	"fmt"
	"strings"
)

// DefaultMaxPower bounds random haystack lengths at 2^DefaultMaxPower.
var DefaultMaxPower = 4

// A NeedleSource supplies the randomness for haystack generation.
// *math/rand.Rand satisfies it; tests inject a seeded source for
// reproducible runs.
type NeedleSource interface {
	Intn(n int) int
}

// NeedleString returns a haystack of the given power-of-two length with a
// single needle at pos.
func NeedleString(length, pos int) (string, error) {
	if length < 2 || length&(length-1) != 0 {
		return "", fmt.Errorf("haystack length must be a power of two >= 2, got %d", length)
	}
	if pos < 0 || pos >= length {
		return "", fmt.Errorf("needle position %d out of range for haystack of length %d", pos, length)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if i == pos {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String(), nil
}

// NeedleAt returns the shortest valid haystack containing a needle at pos,
// i.e. of length the smallest power of two greater than pos.
func NeedleAt(pos int) (string, error) {
	if pos < 0 {
		return "", fmt.Errorf("needle position must be non-negative, got %d", pos)
	}
	length := 2
	for length <= pos {
		length <<= 1
	}
	return NeedleString(length, pos)
}

// RandomNeedleString draws a haystack of random length 2^k, k uniform in
// [1, maxPower], with the needle at a random position. A maxPower below 1
// falls back to DefaultMaxPower.
func RandomNeedleString(r NeedleSource, maxPower int) string {
	if maxPower < 1 {
		maxPower = DefaultMaxPower
	}
	length := 1 << (1 + r.Intn(maxPower))
	pos := r.Intn(length)
	s, err := NeedleString(length, pos)
	if err != nil {
		// Unreachable: length and pos are constructed in range.
		panic(err)
	}
	return s
}

// NeedlePosition returns the marked position of a valid haystack string.
func NeedlePosition(input string) (int, error) {
	if err := checkNeedleString(input); err != nil {
		return 0, err
	}
	return strings.IndexByte(input, '1'), nil
}

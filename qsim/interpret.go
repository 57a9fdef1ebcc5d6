package qsim

import (
	"fmt"
	"math"
)

// partitionProbs splits the squared real amplitudes of a final state into
// the all-zero-data partition (basis indices 0 and 1, i.e. every data qubit
// measured as 0) and its complement. Amplitudes in these circuits are real;
// the imaginary parts are floating-point residue and are ignored.
func partitionProbs(state []complex128) (zero, rest float64) {
	for i, a := range state {
		p := real(a) * real(a)
		if i < 2 {
			zero += p
		} else {
			rest += p
		}
	}
	return zero, rest
}

// constancyVerdict decodes a Deutsch-family measurement: probability mass
// concentrated on the all-zero-data partition means the function is
// constant, mass concentrated on the complement means balanced. Any other
// distribution is an interpretation error and is reported, never defaulted.
func constancyVerdict(zero, rest, epsilon float64) (Verdict, error) {
	switch {
	case math.Abs(zero-1) <= epsilon:
		return Constant, nil
	case math.Abs(rest-1) <= epsilon:
		return Balanced, nil
	default:
		return "", fmt.Errorf("unable to interpret measurement: probability split %.6f / %.6f across partitions", zero, rest)
	}
}

// standout locates the basis index whose amplitude stands out from the
// final Grover state: the argmax and argmin of the real amplitudes are
// compared by magnitude and the larger wins. Ties go to the argmin, which
// the 1-data-qubit circuit depends on. The needle position is the standout
// index with the control bit divided away.
func standout(state []complex128) (idx int, amp complex128) {
	maxIdx, minIdx := 0, 0
	for i, a := range state {
		if real(a) > real(state[maxIdx]) {
			maxIdx = i
		}
		if real(a) < real(state[minIdx]) {
			minIdx = i
		}
	}
	if math.Abs(real(state[maxIdx])) > math.Abs(real(state[minIdx])) {
		return maxIdx, state[maxIdx]
	}
	return minIdx, state[minIdx]
}

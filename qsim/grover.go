package qsim

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/qsimlab/qsim/qsim/qmat"
)

// Repetitions returns the number of Grover iterations for numDataQubits
// data qubits: floor((pi/4) * sqrt(2^n)). The floor matters: rounding to
// nearest runs the 1-data-qubit circuit twice and rotates past the
// amplitude peak, leaving the needle harder to read out, not easier.
func Repetitions(numDataQubits int) int {
	return int(math.Pi / 4 * math.Sqrt(math.Exp2(float64(numDataQubits))))
}

// A GroverOpts packages together the arguments for one run of Grover's
// search.
type GroverOpts struct {
	// Input is the haystack string: all zeros except a single '1' marking
	// the needle. Its length must be a power of two. If empty, a random
	// haystack is drawn from Rand.
	Input string

	// Rand supplies the haystack when Input is empty. Required in that
	// case; ignored otherwise.
	Rand NeedleSource

	// Iterations overrides the number of Grover iterations. Zero means
	// derive it with Repetitions.
	Iterations int

	// SkipSharpen disables the final Hadamard and Pauli-X on the control
	// qubit. The step only widens the gap between the standout amplitude
	// and the rest; the answer stays recoverable without it, except on a
	// 2-element haystack, where the two unsharpened final states differ
	// only by a global phase. Grover rejects that combination.
	SkipSharpen bool

	// OnIteration, if non-nil, receives the state vector after each Grover
	// iteration.
	OnIteration func(iteration int, state []complex128)

	// Epsilon is the absolute tolerance for the unit-norm check on the
	// final state. Defaults to DefaultEpsilon.
	Epsilon float64
}

// A GroverResult carries the full outcome of a Grover run, including the
// self-check of the decoded needle position against the position encoded in
// the input string.
type GroverResult struct {
	RunID      uuid.UUID
	Input      string
	DataQubits int
	Iterations int

	// Needle is the marked position encoded in the input; Result is the
	// position decoded from the final state. Confirmed reports whether
	// they agree.
	Needle    int
	Result    int
	Confirmed bool

	// Standout is the amplitude of the winning basis state.
	Standout complex128

	// Amplitudes is the final combined state, indexed by computational
	// basis state with the control qubit as the lowest-order bit.
	Amplitudes []complex128
}

// Grover runs Grover's search over the haystack described by opts: prepare
// a uniform superposition, repeat the oracle and diffusion pair, sharpen
// the control qubit, and read the needle position off the standout
// amplitude.
func Grover(opts GroverOpts) (GroverResult, error) {
	input := opts.Input
	if input == "" {
		if opts.Rand == nil {
			return GroverResult{}, fmt.Errorf("must provide either Input or Rand")
		}
		input = RandomNeedleString(opts.Rand, DefaultMaxPower)
	}
	if err := checkNeedleString(input); err != nil {
		return GroverResult{}, err
	}

	l := len(input)
	n := dataQubits(l)
	if opts.SkipSharpen && n == 1 {
		return GroverResult{}, fmt.Errorf("cannot skip sharpening on a 2-element haystack: the final states are indistinguishable")
	}
	needle := strings.IndexByte(input, '1')
	reps := opts.Iterations
	if reps == 0 {
		reps = Repetitions(n)
	}

	q, err := BuildRegister(n)
	if err != nil {
		return GroverResult{}, err
	}
	h, err := CombinedGate(Hadamard(), n+1, false)
	if err != nil {
		return GroverResult{}, err
	}
	uf, err := OracleComposed(input)
	if err != nil {
		return GroverResult{}, err
	}
	dif, err := DiffusionGates(n)
	if err != nil {
		return GroverResult{}, err
	}

	state, err := qmat.Mul(h, q)
	if err != nil {
		return GroverResult{}, err
	}
	for i := 0; i < reps; i++ {
		state, err = qmat.Mul(dif, uf, state)
		if err != nil {
			return GroverResult{}, err
		}
		if opts.OnIteration != nil {
			opts.OnIteration(i, qmat.Col(state, 0))
		}
	}
	if !opts.SkipSharpen {
		state, err = qmat.Mul(controlGate(PauliX(), n), controlGate(Hadamard(), n), state)
		if err != nil {
			return GroverResult{}, err
		}
	}

	epsilon := opts.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}
	amps := qmat.Col(state, 0)
	var norm float64
	for _, a := range amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.Abs(norm-1) > epsilon {
		return GroverResult{}, fmt.Errorf("final state norm drifted to %.12f, not unit within %g", norm, epsilon)
	}
	idx, amp := standout(amps)
	result := idx / 2
	return GroverResult{
		RunID:      uuid.New(),
		Input:      input,
		DataQubits: n,
		Iterations: reps,
		Needle:     needle,
		Result:     result,
		Confirmed:  result == needle,
		Standout:   amp,
		Amplitudes: amps,
	}, nil
}

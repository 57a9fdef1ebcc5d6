package qsim

import (
	"github.com/google/uuid"

	"github.com/qsimlab/qsim/qsim/qmat"
)

var (
	// DefaultDeutschInput is the function code used when DeutschOpts.Input
	// is empty: the constant function f(x) = 1.
	DefaultDeutschInput = "11"

	// DefaultDeutschJozsaInput is the oracle string used when
	// DeutschJozsaOpts.Input is empty: a balanced function on 3 data qubits.
	DefaultDeutschJozsaInput = "01010101"
)

// A DeutschOpts packages together the arguments for one run of Deutsch's
// algorithm.
type DeutschOpts struct {
	// Input is the 2-character function code: "00" or "11" encode the two
	// constant functions, "01" and "10" the two balanced ones. Defaults to
	// DefaultDeutschInput.
	Input string

	// Epsilon is the absolute tolerance for probability comparisons.
	// Defaults to DefaultEpsilon.
	Epsilon float64
}

// A DeutschResult carries the full outcome of a Deutsch-family run: the
// final state, the measurement probabilities, the decoded verdict, and the
// self-check against the ground truth encoded in the input.
type DeutschResult struct {
	RunID      uuid.UUID
	Input      string
	DataQubits int

	// Amplitudes is the final combined state, indexed by computational
	// basis state with the control qubit as the lowest-order bit.
	Amplitudes []complex128

	// ProbZero is the probability of measuring every data qubit as 0;
	// ProbRest covers the complementary partition.
	ProbZero float64
	ProbRest float64

	Verdict   Verdict
	Confirmed bool
}

// Deutsch runs Deutsch's algorithm: decide with a single oracle query
// whether a one-bit function is constant or balanced. The circuit is
//
//	|0> H --( Uf )-- H -- M
//	|1> H --( Uf )-------
//
// and measuring the top qubit as |0> means constant.
func Deutsch(opts DeutschOpts) (DeutschResult, error) {
	input := opts.Input
	if input == "" {
		input = DefaultDeutschInput
	}
	epsilon := opts.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}

	uf, err := DeutschOracle(input)
	if err != nil {
		return DeutschResult{}, err
	}
	top, err := qmat.Ket(2, 0)
	if err != nil {
		return DeutschResult{}, err
	}
	bottom, err := qmat.Ket(2, 1)
	if err != nil {
		return DeutschResult{}, err
	}
	q := qmat.Kron(top, bottom)
	hh := qmat.Kron(Hadamard(), Hadamard())
	hi := qmat.Kron(Hadamard(), Identity())

	state, err := qmat.Mul(hi, uf, hh, q)
	if err != nil {
		return DeutschResult{}, err
	}

	return interpretConstancy(input, 1, qmat.Col(state, 0), epsilon, input == "00" || input == "11")
}

// A DeutschJozsaOpts packages together the arguments for one run of the
// Deutsch-Jozsa algorithm.
type DeutschJozsaOpts struct {
	// Input is the oracle string: one output bit of f per position. Its
	// length must be a power of two and the string must be all zeros, all
	// ones, or exactly balanced. Defaults to DefaultDeutschJozsaInput.
	Input string

	// Epsilon is the absolute tolerance for probability comparisons.
	// Defaults to DefaultEpsilon.
	Epsilon float64
}

// DeutschJozsa runs the Deutsch-Jozsa algorithm, the n-qubit generalization
// of Deutsch's: decide with a single oracle query whether a function on n
// bits is constant or balanced. Probability mass concentrated on the
// all-zero data register means constant.
func DeutschJozsa(opts DeutschJozsaOpts) (DeutschResult, error) {
	input := opts.Input
	if input == "" {
		input = DefaultDeutschJozsaInput
	}
	epsilon := opts.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}
	if err := checkBalancedString(input); err != nil {
		return DeutschResult{}, err
	}

	n := dataQubits(len(input))
	q, err := BuildRegister(n)
	if err != nil {
		return DeutschResult{}, err
	}
	h, err := CombinedGate(Hadamard(), n+1, false)
	if err != nil {
		return DeutschResult{}, err
	}
	hi, err := CombinedGate(Hadamard(), n, true)
	if err != nil {
		return DeutschResult{}, err
	}
	uf, err := OracleDirect(input)
	if err != nil {
		return DeutschResult{}, err
	}

	state, err := qmat.Mul(hi, uf, h, q)
	if err != nil {
		return DeutschResult{}, err
	}

	ones := 0
	for i := 0; i < len(input); i++ {
		if input[i] == '1' {
			ones++
		}
	}
	constant := ones == 0 || ones == len(input)
	return interpretConstancy(input, n, qmat.Col(state, 0), epsilon, constant)
}

// interpretConstancy decodes the final state of a Deutsch-family run and
// checks the verdict against the ground truth from the oracle string.
func interpretConstancy(input string, n int, amps []complex128, epsilon float64, constant bool) (DeutschResult, error) {
	zero, rest := partitionProbs(amps)
	verdict, err := constancyVerdict(zero, rest, epsilon)
	if err != nil {
		return DeutschResult{}, err
	}
	return DeutschResult{
		RunID:      uuid.New(),
		Input:      input,
		DataQubits: n,
		Amplitudes: amps,
		ProbZero:   zero,
		ProbRest:   rest,
		Verdict:    verdict,
		Confirmed:  (verdict == Constant) == constant,
	}, nil
}

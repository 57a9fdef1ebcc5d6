// Package qsim simulates small quantum circuits by dense state-vector
// algebra: registers are complex column vectors, gates are unitary matrices,
// and circuits are built by Kronecker products and matrix multiplication.
// It implements the fixed topologies of three canonical algorithms:
// Deutsch's algorithm, the Deutsch-Jozsa algorithm, and Grover's search.
//
// Everything is synchronous and per-run: each call rebuilds its operators
// from the oracle string and shares no state with other runs. The cost of a
// run is dominated by dense multiplies of dimension 2^(n+1), i.e. O(2^(3n))
// per multiply at n data qubits, which caps practical register sizes at
// roughly 10-12 data qubits. That is a ceiling of the dense representation,
// not a defect.
package qsim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/qsimlab/qsim/qsim/qmat"
)

// DefaultEpsilon is the absolute tolerance used when comparing measurement
// probabilities and amplitudes against their ideal values. Probabilities
// that should be exactly 0 or 1 carry floating-point residue after a few
// hundred dense multiplies; comparisons are never exact.
var DefaultEpsilon = 1e-9

// A Verdict is the decoded answer of a Deutsch-family run.
type Verdict string

const (
	// Constant means f returns the same value on every input.
	Constant Verdict = "constant"
	// Balanced means f returns 0 on exactly half of its inputs.
	Balanced Verdict = "balanced"
)

// Hadamard returns the single-qubit Hadamard gate.
func Hadamard() *mat.CDense {
	h := complex(1/math.Sqrt2, 0)
	return mat.NewCDense(2, 2, []complex128{h, h, h, -h})
}

// PauliX returns the single-qubit NOT gate.
func PauliX() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
}

// Identity returns the single-qubit identity gate, i.e. a bare wire.
func Identity() *mat.CDense {
	return qmat.Eye(2)
}

// CNOT returns the two-qubit controlled-NOT gate, control on the first
// qubit.
func CNOT() *mat.CDense {
	return mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
}

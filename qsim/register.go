package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qsimlab/qsim/qsim/qmat"
)

// BuildRegister returns the combined initial state for numDataQubits data
// qubits, each in |0>, followed by one control qubit in |1>. The result is
// a column vector of dimension 2^(numDataQubits+1); tensor order is
// data-then-control in every construction in this package.
func BuildRegister(numDataQubits int) (*mat.CDense, error) {
	if numDataQubits < 1 {
		return nil, fmt.Errorf("register needs at least 1 data qubit, got %d", numDataQubits)
	}
	zero, err := qmat.Ket(2, 0)
	if err != nil {
		return nil, err
	}
	one, err := qmat.Ket(2, 1)
	if err != nil {
		return nil, err
	}
	q := zero
	for i := 1; i < numDataQubits; i++ {
		q = qmat.Kron(q, zero)
	}
	return qmat.Kron(q, one), nil
}

// CombinedGate tensors a single-qubit gate across numQubits positions,
// left-associatively, and, when controlIdentity is set, appends one
// Identity(2) factor for the control qubit. An operator meant to leave the
// control alone must carry that identity factor explicitly; it cannot be
// omitted.
func CombinedGate(g mat.CMatrix, numQubits int, controlIdentity bool) (*mat.CDense, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("combined gate needs at least 1 qubit, got %d", numQubits)
	}
	if r, c := g.Dims(); r != 2 || c != 2 {
		return nil, fmt.Errorf("per-qubit gate must be 2x2, got %dx%d", r, c)
	}
	acc := qmat.Kron(qmat.Eye(1), g)
	for i := 1; i < numQubits; i++ {
		acc = qmat.Kron(acc, g)
	}
	if controlIdentity {
		acc = qmat.Kron(acc, qmat.Eye(2))
	}
	return acc, nil
}

// controlGate builds an operator that acts with g on the control qubit only,
// leaving numDataQubits data qubits on identity wires.
func controlGate(g mat.CMatrix, numDataQubits int) *mat.CDense {
	return qmat.Kron(qmat.Eye(1<<numDataQubits), g)
}

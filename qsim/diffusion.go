package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qsimlab/qsim/qsim/qmat"
)

// DiffusionGates builds the Grover inversion-about-the-mean operator for
// numDataQubits data qubits from gate primitives:
//
//	Dif = HxI * XxI * CxZI * XxI * HxI
//
// where HxI and XxI are Hadamard and Pauli-X on every data qubit with
// identity on the control, and CxZI flips the phase of the all-ones data
// state. The operator never acts on the control qubit directly.
func DiffusionGates(numDataQubits int) (*mat.CDense, error) {
	if numDataQubits < 1 {
		return nil, fmt.Errorf("diffusion operator needs at least 1 data qubit, got %d", numDataQubits)
	}
	hxi, err := CombinedGate(Hadamard(), numDataQubits, true)
	if err != nil {
		return nil, err
	}
	xxi, err := CombinedGate(PauliX(), numDataQubits, true)
	if err != nil {
		return nil, err
	}
	l := 1 << numDataQubits
	cz := qmat.Eye(l)
	cz.Set(l-1, l-1, -1)
	cxzi := qmat.Kron(cz, qmat.Eye(2))
	return qmat.Mul(hxi, xxi, cxzi, xxi, hxi)
}

// DiffusionClosedForm builds the same operator as DiffusionGates without
// gate composition: (I - 2A) on the data register, A being the uniform
// matrix whose every entry is 1/2^numDataQubits, tensored with identity on
// the control. The two constructions agree entrywise.
func DiffusionClosedForm(numDataQubits int) (*mat.CDense, error) {
	if numDataQubits < 1 {
		return nil, fmt.Errorf("diffusion operator needs at least 1 data qubit, got %d", numDataQubits)
	}
	l := 1 << numDataQubits
	d := mat.NewCDense(l, l, nil)
	avg := complex(2/float64(l), 0)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			if i == j {
				d.Set(i, j, 1-avg)
			} else {
				d.Set(i, j, -avg)
			}
		}
	}
	return qmat.Kron(d, qmat.Eye(2)), nil
}

package qsim

import (
	"fmt"
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/qsimlab/qsim/qsim/qmat"
)

// checkOracleString rejects strings that cannot encode an oracle: the
// alphabet is {'0','1'} and the length must be a power of two of at least 2.
// Validation happens before any matrix is built.
func checkOracleString(s string) error {
	l := len(s)
	if l < 2 || l&(l-1) != 0 {
		return fmt.Errorf("oracle string length must be a power of two >= 2, got %d", l)
	}
	for i := 0; i < l; i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("oracle string must contain only '0' and '1', got %q", s)
		}
	}
	return nil
}

// checkNeedleString additionally requires exactly one marked position, the
// Grover input invariant.
func checkNeedleString(s string) error {
	if err := checkOracleString(s); err != nil {
		return err
	}
	if n := strings.Count(s, "1"); n != 1 {
		return fmt.Errorf("needle string must contain exactly one '1', got %d in %q", n, s)
	}
	return nil
}

// dataQubits returns the number of data qubits needed to index an oracle
// string of length l. l must already be validated as a power of two.
func dataQubits(l int) int {
	return bits.Len(uint(l)) - 1
}

// OracleDirect builds the oracle unitary entrywise from the oracle string.
// Position i of the string owns the 2x2 control-qubit block at rows/columns
// 2i and 2i+1: a '0' leaves the block as identity, a '1' swaps it, which is
// the bit-flip encoding of a marked item.
func OracleDirect(input string) (*mat.CDense, error) {
	if err := checkOracleString(input); err != nil {
		return nil, err
	}
	l := len(input)
	uf := mat.NewCDense(2*l, 2*l, nil)
	for i := 0; i < l; i++ {
		if input[i] == '0' {
			uf.Set(2*i, 2*i, 1)
			uf.Set(2*i+1, 2*i+1, 1)
		} else {
			uf.Set(2*i+1, 2*i, 1)
			uf.Set(2*i, 2*i+1, 1)
		}
	}
	return uf, nil
}

// OracleComposed builds the same oracle as OracleDirect for a single-needle
// string, but from gate primitives: a mark operator derived from the binary
// representation of the needle position, conjugating a controlled-NOT whose
// NOT sits at the all-ones index. OracleComposed(s) and OracleDirect(s)
// agree entrywise for every valid needle string s.
func OracleComposed(input string) (*mat.CDense, error) {
	if err := checkNeedleString(input); err != nil {
		return nil, err
	}
	needle := strings.IndexByte(input, '1')
	mark, err := markOperator(needle, dataQubits(len(input)))
	if err != nil {
		return nil, err
	}
	return qmat.Mul(mark, controlledNot(len(input)), mark)
}

// markOperator maps the needle position onto X and identity factors: each
// '0' bit of the position contributes a Pauli-X, each '1' bit an identity,
// plus a trailing identity for the control qubit. Conjugating with it moves
// the needle's subspace onto the all-ones index and back.
func markOperator(needle, numDataQubits int) (*mat.CDense, error) {
	var acc *mat.CDense
	for i := numDataQubits - 1; i >= 0; i-- {
		var g *mat.CDense
		if needle&(1<<i) == 0 {
			g = PauliX()
		} else {
			g = Identity()
		}
		if acc == nil {
			acc = g
		} else {
			acc = qmat.Kron(acc, g)
		}
	}
	if acc == nil {
		return nil, fmt.Errorf("mark operator needs at least 1 data qubit")
	}
	return qmat.Kron(acc, qmat.Eye(2)), nil
}

// controlledNot returns the 2l-by-2l operator that is identity on every
// control-qubit block except the last, where it flips the control. With all
// data qubits as controls this is the shared controlled-NOT of the
// compositional construction.
func controlledNot(l int) *mat.CDense {
	cx := mat.NewCDense(2*l, 2*l, nil)
	for i := 0; i < l-1; i++ {
		cx.Set(2*i, 2*i, 1)
		cx.Set(2*i+1, 2*i+1, 1)
	}
	cx.Set(2*l-1, 2*l-2, 1)
	cx.Set(2*l-2, 2*l-1, 1)
	return cx
}

// DeutschOracle returns one of the four fixed 2-qubit oracles of Deutsch's
// algorithm, selected by the 2-character function code:
//
//	"00" -> I (x) I            f(x) = 0
//	"11" -> I (x) X            f(x) = 1
//	"01" -> CNOT               f(x) = x
//	"10" -> CNOT * (I (x) X)   f(x) = not x
//
// Any other code is an input error, not a silent default.
func DeutschOracle(code string) (*mat.CDense, error) {
	switch code {
	case "00":
		return qmat.Kron(Identity(), Identity()), nil
	case "11":
		return qmat.Kron(Identity(), PauliX()), nil
	case "01":
		return CNOT(), nil
	case "10":
		return qmat.Mul(CNOT(), qmat.Kron(Identity(), PauliX()))
	default:
		return nil, fmt.Errorf("unrecognized Deutsch function code %q, want one of 00, 01, 10, 11", code)
	}
}

// checkBalancedString enforces the Deutsch-Jozsa promise: the oracle string
// is all zeros, all ones, or has exactly as many ones as zeros.
func checkBalancedString(s string) error {
	if err := checkOracleString(s); err != nil {
		return err
	}
	ones := strings.Count(s, "1")
	if ones != 0 && ones != len(s) && ones*2 != len(s) {
		return fmt.Errorf("oracle string must be constant or balanced, got %d ones in %d characters", ones, len(s))
	}
	return nil
}

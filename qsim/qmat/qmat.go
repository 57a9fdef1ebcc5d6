// Package qmat provides the small set of complex linear-algebra operations
// the simulator needs on top of gonum's CDense: basis kets, identity
// matrices, Kronecker products and left-to-right operator chains.
package qmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ket returns a dim-dimensional basis column vector with a 1 at idx.
func Ket(dim, idx int) (*mat.CDense, error) {
	if dim < 1 || idx < 0 || idx >= dim {
		return nil, fmt.Errorf("basis index %d out of range for dimension %d", idx, dim)
	}
	k := mat.NewCDense(dim, 1, nil)
	k.Set(idx, 0, 1)
	return k, nil
}

// Eye returns the n-by-n identity matrix.
func Eye(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Kron computes the Kronecker product of a and b. gonum only ships a
// Kronecker product for real Dense matrices, so this is built entrywise.
func Kron(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	m := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			av := a.At(i, j)
			if av == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					m.Set(i*br+k, j*bc+l, av*b.At(k, l))
				}
			}
		}
	}
	return m
}

// Mul computes the left-to-right product of one or more matrices, so
// Mul(a, b, c) is a*b*c. Dimension mismatches are reported as errors rather
// than panics so that callers can surface them with context.
func Mul(ms ...mat.CMatrix) (*mat.CDense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("empty operator chain")
	}
	acc := copyOf(ms[0])
	for _, m := range ms[1:] {
		ar, ac := acc.Dims()
		br, bc := m.Dims()
		if ac != br {
			return nil, fmt.Errorf("multiplying %dx%d matrix into %dx%d matrix", ar, ac, br, bc)
		}
		acc = mulCDense(acc, m, ar, ac, bc)
	}
	return acc, nil
}

// mulCDense multiplies a (ar x ac) into b (ac x bc). gonum's CDense has no
// multiplication method, so this is built entrywise like Kron, skipping zero
// entries of a since the simulator's operators are sparse.
func mulCDense(a, b mat.CMatrix, ar, ac, bc int) *mat.CDense {
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for k := 0; k < ac; k++ {
			av := a.At(i, k)
			if av == 0 {
				continue
			}
			for j := 0; j < bc; j++ {
				out.Set(i, j, out.At(i, j)+av*b.At(k, j))
			}
		}
	}
	return out
}

func copyOf(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, a.At(i, j))
		}
	}
	return m
}

// Col returns column j of m as a slice.
func Col(m mat.CMatrix, j int) []complex128 {
	r, _ := m.Dims()
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, j)
	}
	return out
}

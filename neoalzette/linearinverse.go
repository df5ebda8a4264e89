package neoalzette

import "math/bits"

// columnsOf samples a linear bit-transform f at the standard basis:
// columns[i] = f(e_i). Any GF(2)-linear f satisfies f(x) = XOR of
// columns[i] over the set bits of x, so this fully characterizes f.
func columnsOf(f func(uint32) uint32) [32]uint32 {
	var cols [32]uint32
	for i := 0; i < 32; i++ {
		cols[i] = f(uint32(1) << uint(i))
	}
	return cols
}

// buildRows converts column form into row form: rows[j] has bit i set
// iff output bit j depends on input bit i, so f(x)'s bit j equals the
// parity of rows[j]&x.
func buildRows(columns [32]uint32) [32]uint32 {
	var rows [32]uint32
	for i := 0; i < 32; i++ {
		col := columns[i]
		for j := 0; j < 32; j++ {
			if (col>>uint(j))&1 != 0 {
				rows[j] |= uint32(1) << uint(i)
			}
		}
	}
	return rows
}

// invertRows inverts a 32x32 GF(2) matrix given in row form via
// Gauss-Jordan elimination against an identity augmentation. Every
// linear-diffusion layer in this cipher is a bijection by construction,
// so the matrix is always invertible; a singular input indicates a
// construction bug, not a data-dependent failure, hence the panic.
func invertRows(rows [32]uint32) [32]uint32 {
	a := rows
	var inv [32]uint32
	for j := 0; j < 32; j++ {
		inv[j] = uint32(1) << uint(j)
	}

	for col := 0; col < 32; col++ {
		pivot := -1
		for r := col; r < 32; r++ {
			if (a[r]>>uint(col))&1 != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			panic("neoalzette: singular linear layer")
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		for r := 0; r < 32; r++ {
			if r == col {
				continue
			}
			if (a[r]>>uint(col))&1 != 0 {
				a[r] ^= a[col]
				inv[r] ^= inv[col]
			}
		}
	}
	return inv
}

// applyRows evaluates a linear transform given in row form.
func applyRows(rows [32]uint32, x uint32) uint32 {
	var out uint32
	for j := 0; j < 32; j++ {
		if bits.OnesCount32(rows[j]&x)&1 != 0 {
			out |= uint32(1) << uint(j)
		}
	}
	return out
}

var l1InvRows = invertRows(buildRows(columnsOf(L1)))
var l2InvRows = invertRows(buildRows(columnsOf(L2)))

// transposeRows swaps rows and columns of a matrix given in row form:
// reinterpreting a row array as a column array and rebuilding rows from
// it computes exactly the transpose.
func transposeRows(rows [32]uint32) [32]uint32 { return buildRows(rows) }

var l1InvTRows = transposeRows(l1InvRows)
var l2InvTRows = transposeRows(l2InvRows)

// L1Inverse is the functional inverse of L1.
func L1Inverse(x uint32) uint32 { return applyRows(l1InvRows, x) }

// L2Inverse is the functional inverse of L2, the B-branch analogue of
// L1Inverse.
func L2Inverse(x uint32) uint32 { return applyRows(l2InvRows, x) }

// L1InverseTranspose is L1Inverse's adjoint, used to pull a linear mask
// backward through a forward application of L1Inverse.
func L1InverseTranspose(mask uint32) uint32 { return applyRows(l1InvTRows, mask) }

// L2InverseTranspose is L2Inverse's adjoint, the B-branch analogue of
// L1InverseTranspose.
func L2InverseTranspose(mask uint32) uint32 { return applyRows(l2InvTRows, mask) }

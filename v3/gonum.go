/*
 * gonum.go, part of goptm.
 *
 * Copyright 2025 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package v3 implements matrices of 3D coordinate row vectors, as a thin
//layer over gonum's mat.Dense. Every matrix in the package has exactly
//3 columns; each row is one point in space.
package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is an Nx3 matrix of coordinate row vectors.
type Matrix struct {
	*mat.Dense
}

//NewMatrix builds a Matrix from a slice of float64 in row-major order.
//The length of the slice must be a non-zero multiple of 3.
func NewMatrix(data []float64) (*Matrix, error) {
	if len(data) == 0 || len(data)%3 != 0 {
		return nil, Error{fmt.Sprintf("invalid data length %d for an Nx3 matrix", len(data)), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(len(data)/3, 3, data)}, nil
}

//Zeros returns a zero-valued matrix with vecs rows.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//Dense2Matrix wraps a 3-column Dense into a Matrix, sharing the backing data.
func Dense2Matrix(d *mat.Dense) (*Matrix, error) {
	_, c := d.Dims()
	if c != 3 {
		return nil, Error{fmt.Sprintf("can not wrap a Dense with %d columns", c), []string{"Dense2Matrix"}}
	}
	return &Matrix{d}, nil
}

//NVecs returns the number of row vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dense.Dims()
	return r
}

//VecView returns a view (not a copy) of the i-th row vector.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Vec returns a copy of the i-th row vector as a slice.
func (F *Matrix) Vec(i int) []float64 {
	return []float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVecs sets the rows of F indexed by clist to the corresponding rows of A.
//A must have at least len(clist) rows.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	for j, i := range clist {
		F.Set(i, 0, A.At(j, 0))
		F.Set(i, 1, A.At(j, 1))
		F.Set(i, 2, A.At(j, 2))
	}
}

//SomeVecs copies the rows of A indexed by clist into F, in order.
//F must have exactly len(clist) rows.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	for i, j := range clist {
		F.Set(i, 0, A.At(j, 0))
		F.Set(i, 1, A.At(j, 1))
		F.Set(i, 2, A.At(j, 2))
	}
}

//AddVec adds the 1x3 vector vec to each row of A, putting the result in F.
func (F *Matrix) AddVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		F.Set(i, 0, A.At(i, 0)+vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)+vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)+vec.At(0, 2))
	}
}

//SubVec subtracts the 1x3 vector vec from each row of A, putting the result in F.
func (F *Matrix) SubVec(A, vec *Matrix) {
	for i := 0; i < A.NVecs(); i++ {
		F.Set(i, 0, A.At(i, 0)-vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)-vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)-vec.At(0, 2))
	}
}

//Add puts the element-wise sum of A and B in F.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts the element-wise difference A-B in F.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts A scaled by v in F.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//String returns a printable representation of F.
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense))
}

//Error is the v3 implementation of the goptm error convention.
type Error struct {
	message string
	deco    []string
}

func (e Error) Error() string { return e.message }

//Decorate appends dec to the decoration trail and returns the trail.
//An empty dec inspects the trail without growing it.
func (e Error) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

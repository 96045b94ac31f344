/*
 * v3_test.go, part of goptm.
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

package v3

import "testing"

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element at 1,2: %f", A.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("a 2-element slice should not build an Nx3 matrix")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("an empty slice should not build a matrix")
	}
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := A.VecView(1)
	if v.At(0, 0) != 4 || v.At(0, 2) != 6 {
		Te.Errorf("wrong view: %v", v)
	}
	//views share the backing data
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("view does not share data with its matrix")
	}
}

func TestVecArithmetic(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	vec, _ := NewMatrix([]float64{1, 2, 3})
	B := Zeros(2)
	B.AddVec(A, vec)
	if B.At(0, 0) != 2 || B.At(0, 1) != 3 || B.At(0, 2) != 4 {
		Te.Errorf("AddVec row 0 wrong: %v", B.Vec(0))
	}
	B.SubVec(B, vec)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if B.At(i, j) != A.At(i, j) {
				Te.Errorf("SubVec did not undo AddVec at %d,%d", i, j)
			}
		}
	}
}

func TestSomeAndSetVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	picked := Zeros(2)
	picked.SomeVecs(A, []int{0, 2})
	if picked.At(1, 0) != 3 {
		Te.Errorf("SomeVecs picked the wrong row: %v", picked.Vec(1))
	}
	B := Zeros(3)
	B.SetVecs(picked, []int{2, 0})
	if B.At(2, 0) != 1 || B.At(0, 0) != 3 {
		Te.Errorf("SetVecs put rows in the wrong places: %v", B)
	}
}

func TestCopyIndependence(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3})
	B := A.Copy()
	B.Set(0, 0, 99)
	if A.At(0, 0) != 1 {
		Te.Error("Copy shares data with the original")
	}
}

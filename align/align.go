/*
 * align.go, part of goptm.
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

//Package align computes weighted rigid-body superpositions between sets
//of coordinate row vectors. The rotation returned is always a proper
//rotation: when the best orthogonal map is a reflection, the axis of
//the smallest singular value is flipped.
package align

import (
	"fmt"

	"github.com/rmera/goptm"
	"github.com/rmera/goptm/v3"
	"gonum.org/v1/gonum/mat"
)

//RotationTranslation returns the rotation matrix and translation vector
//that superimpose tmpl onto ref, minimizing the weighted sum of squared
//distances between paired rows. A nil or empty weights slice means
//uniform weighting. The translation is a 1x3 row vector; the pair is
//meant to be fed to Apply.
func RotationTranslation(ref, tmpl *v3.Matrix, weights []float64) (*mat.Dense, *v3.Matrix, error) {
	n := ref.NVecs()
	if n == 0 {
		return nil, nil, ptm.NewError(ptm.Mapping, "align.RotationTranslation", "need at least one pair of points")
	}
	if tmpl.NVecs() != n {
		return nil, nil, ptm.NewError(ptm.Mapping, "align.RotationTranslation", fmt.Sprintf("mismatched point sets: %d reference vs %d template", n, tmpl.NVecs()))
	}
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}
	}
	if len(weights) != n {
		return nil, nil, ptm.NewError(ptm.Mapping, "align.RotationTranslation", fmt.Sprintf("%d weights for %d points", len(weights), n))
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return nil, nil, ptm.NewError(ptm.Mapping, "align.RotationTranslation", "weights add up to zero")
	}
	cref := centroid(ref, weights, total)
	ctmpl := centroid(tmpl, weights, total)
	//Weighted cross-covariance between the centered sets.
	cov := mat.NewDense(3, 3, nil)
	for i := 0; i < n; i++ {
		w := weights[i]
		if w == 0 {
			continue
		}
		for a := 0; a < 3; a++ {
			p := tmpl.At(i, a) - ctmpl.At(0, a)
			for b := 0; b < 3; b++ {
				q := ref.At(i, b) - cref.At(0, b)
				cov.Set(a, b, cov.At(a, b)+w*p*q)
			}
		}
	}
	var svd mat.SVD
	if ok := svd.Factorize(cov, mat.SVDFull); !ok {
		return nil, nil, ptm.NewError(ptm.Mapping, "align.RotationTranslation", "SVD of the covariance matrix failed")
	}
	U := new(mat.Dense)
	V := new(mat.Dense)
	svd.UTo(U)
	svd.VTo(V)
	rot := new(mat.Dense)
	rot.Mul(V, U.T())
	if mat.Det(rot) < 0 {
		//Flip the axis of the smallest singular value so the map is a
		//rotation, not a reflection.
		for i := 0; i < 3; i++ {
			V.Set(i, 2, -V.At(i, 2))
		}
		rot.Mul(V, U.T())
	}
	//t = cref - R*ctmpl, kept as a row vector.
	trans := v3.Zeros(1)
	for b := 0; b < 3; b++ {
		s := 0.0
		for a := 0; a < 3; a++ {
			s += rot.At(b, a) * ctmpl.At(0, a)
		}
		trans.Set(0, b, cref.At(0, b)-s)
	}
	return rot, trans, nil
}

//Apply maps every row p of points to R*p + t and returns the result as a
//new matrix. points is not modified.
func Apply(points *v3.Matrix, rot *mat.Dense, trans *v3.Matrix) *v3.Matrix {
	n := points.NVecs()
	out := v3.Zeros(n)
	out.Dense.Mul(points.Dense, rot.T())
	out.AddVec(out, trans)
	return out
}

func centroid(points *v3.Matrix, weights []float64, total float64) *v3.Matrix {
	c := v3.Zeros(1)
	for i := 0; i < points.NVecs(); i++ {
		w := weights[i]
		c.Set(0, 0, c.At(0, 0)+w*points.At(i, 0))
		c.Set(0, 1, c.At(0, 1)+w*points.At(i, 1))
		c.Set(0, 2, c.At(0, 2)+w*points.At(i, 2))
	}
	c.Scale(1/total, c)
	return c
}

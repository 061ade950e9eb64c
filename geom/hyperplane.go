// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Hyperplane - площина розмірності N-1, задана точкою та одиничною нормаллю
type Hyperplane[T constraints.Float, V Vector[T, V]] struct {
	Origin V
	Normal V
}

func (h Hyperplane[T, V]) Kind() Kind { return KindHyperplane }

// NewHyperplane нормалізує normal
func NewHyperplane[T constraints.Float, V Vector[T, V]](origin, normal V) Hyperplane[T, V] {
	return Hyperplane[T, V]{Origin: origin, Normal: Normalize[T, V](normal)}
}

// HyperplaneFromSimplex будує опорну площину грані з N точок.
//
// Нормаль - узагальнений векторний добуток ребер Points[1:]-Points[0]
// (кофактори останнього рядка), тому її напрямок залежить від порядку
// вершин: у 3D для трикутника a, b, c це (b-a)×(c-a).
func HyperplaneFromSimplex[T constraints.Float, V Vector[T, V]](s Simplex[T, V]) Hyperplane[T, V] {
	origin := s.Points[0]
	n := origin.Dim()
	debugAssert(len(s.Points) == n, "hyperplane needs a simplex with N points")

	edges := mat.NewDense(n-1, n, nil)
	for r := 1; r < n; r++ {
		e := s.Points[r].Sub(origin)
		for c := 0; c < n; c++ {
			edges.Set(r-1, c, float64(e.At(c)))
		}
	}

	var normal V
	minor := mat.NewDense(n-1, n-1, nil)
	for i := 0; i < n; i++ {
		// Мінор без стовпця i
		for r := 0; r < n-1; r++ {
			col := 0
			for c := 0; c < n; c++ {
				if c == i {
					continue
				}
				minor.Set(r, col, edges.At(r, c))
				col++
			}
		}
		cofactor := mat.Det(minor)
		if (n-1+i)%2 == 1 {
			cofactor = -cofactor
		}
		normal = normal.With(i, T(cofactor))
	}
	return NewHyperplane[T, V](origin, normal)
}

// SignedDistance повертає відстань від точки до площини зі знаком:
// додатна з боку нормалі
func (h Hyperplane[T, V]) SignedDistance(p V) T {
	return p.Sub(h.Origin).Dot(h.Normal)
}

// Flip повертає ту саму площину з протилежною нормаллю
func (h Hyperplane[T, V]) Flip() Hyperplane[T, V] {
	return Hyperplane[T, V]{Origin: h.Origin, Normal: h.Normal.Mul(-1)}
}

// Transform рухає площину. Нормаль перетворюється як вектор,
// тому m має бути жорстким, інакше нормаль перестане бути перпендикулярною.
func (h Hyperplane[T, V]) Transform(m Transform[V]) Hyperplane[T, V] {
	return NewHyperplane[T, V](m.TransformPoint(h.Origin), m.TransformVector(h.Normal))
}

// Validate перевіряє, що нормаль одинична
func (h Hyperplane[T, V]) Validate() error {
	if l2 := h.Normal.Dot(h.Normal); abs(l2-1) > Epsilon {
		return fmt.Errorf("%w: |normal|^2 = %v", ErrNonUnitNormal, l2)
	}
	return nil
}

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

// Симплекс - опукла оболонка k афінно незалежних точок:
// k=1 точка, k=2 відрізок, k=3 трикутник, k=4 тетраедр...
// Тут живе перетворення між світовими та барицентричними координатами.

package geom

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Simplex - k впорядкованих точок, k <= N+1
type Simplex[T constraints.Float, V Vector[T, V]] struct {
	Points []V
}

func (s Simplex[T, V]) Kind() Kind { return KindSimplex }

// NewSimplex копіює точки, щоб симплекс поводився як значення
func NewSimplex[T constraints.Float, V Vector[T, V]](points ...V) Simplex[T, V] {
	debugAssert(len(points) > 0, "empty simplex")
	debugAssert(len(points) == 0 || len(points) <= points[0].Dim()+1, "simplex has more than N+1 points")
	return Simplex[T, V]{Points: slices.Clone(points)}
}

// Len повертає кількість вершин k
func (s Simplex[T, V]) Len() int { return len(s.Points) }

// Face повертає грань без вершини i
func (s Simplex[T, V]) Face(i int) Simplex[T, V] {
	points := make([]V, 0, len(s.Points)-1)
	for j, p := range s.Points {
		if j != i {
			points = append(points, p)
		}
	}
	return Simplex[T, V]{Points: points}
}

// Reversed міняє місцями дві перші вершини.
// Непарна перестановка змінює орієнтацію, тобто напрямок нормалі грані.
func (s Simplex[T, V]) Reversed() Simplex[T, V] {
	points := slices.Clone(s.Points)
	if len(points) > 1 {
		points[0], points[1] = points[1], points[0]
	}
	return Simplex[T, V]{Points: points}
}

// Transform перетворює кожну вершину як точку
func (s Simplex[T, V]) Transform(m Transform[V]) Simplex[T, V] {
	points := make([]V, len(s.Points))
	for i, p := range s.Points {
		points[i] = m.TransformPoint(p)
	}
	return Simplex[T, V]{Points: points}
}

// basis повертає матрицю N×(k-1), стовпці якої - Points[i] - Points[k-1]
func (s Simplex[T, V]) basis() *mat.Dense {
	k := len(s.Points)
	last := s.Points[k-1]
	n := last.Dim()
	e := mat.NewDense(n, k-1, nil)
	for j := 0; j < k-1; j++ {
		d := s.Points[j].Sub(last)
		for i := 0; i < n; i++ {
			e.Set(i, j, float64(d.At(i)))
		}
	}
	return e
}

// ToBarycentricReduced повертає перші k-1 барицентричних координат точки p.
// Остання координата не зберігається: вона дорівнює 1 - сума решти.
//
// Система розв'язується методом найменших квадратів, тож якщо p не лежить
// в афінній оболонці симплекса, координати описують її найближчу точку.
// Для виродженого симплекса всі координати - NaN.
func (s Simplex[T, V]) ToBarycentricReduced(p V) []T {
	k := len(s.Points)
	if k == 0 {
		return nil
	}
	coords := make([]T, k-1)
	if k == 1 {
		return coords
	}
	last := s.Points[k-1]
	d := p.Sub(last)
	rhs := mat.NewVecDense(d.Dim(), nil)
	for i := 0; i < d.Dim(); i++ {
		rhs.SetVec(i, float64(d.At(i)))
	}

	var c mat.VecDense
	if err := c.SolveVec(s.basis(), rhs); err != nil {
		for i := range coords {
			coords[i] = nan[T]()
		}
		return coords
	}
	for i := range coords {
		coords[i] = T(c.AtVec(i))
	}
	return coords
}

// ToBarycentric повертає всі k координат, сума яких 1
func (s Simplex[T, V]) ToBarycentric(p V) []T {
	reduced := s.ToBarycentricReduced(p)
	final := T(1)
	for _, c := range reduced {
		final -= c
	}
	return append(reduced, final)
}

// ToWorld - обернене до ToBarycentricReduced:
// Points[k-1] + Σ coords[i] * (Points[i] - Points[k-1])
func (s Simplex[T, V]) ToWorld(coords []T) V {
	k := len(s.Points)
	debugAssert(len(coords) == k-1, "ToWorld takes reduced coordinates")
	last := s.Points[k-1]
	out := last
	for i, c := range coords {
		out = out.Add(s.Points[i].Sub(last).Mul(c))
	}
	return out
}

// Validate перевіряє кількість точок і їх афінну незалежність
func (s Simplex[T, V]) Validate() error {
	k := len(s.Points)
	if k == 0 {
		return fmt.Errorf("%w: no points", ErrDegenerateSimplex)
	}
	if n := s.Points[0].Dim(); k > n+1 {
		return fmt.Errorf("%w: %d points in %d dimensions", ErrTooManyPoints, k, n)
	}
	if k == 1 {
		return nil
	}
	// Ребра незалежні тоді й лише тоді, коли матриця Грама невироджена
	e := s.basis()
	var gram mat.Dense
	gram.Mul(e.T(), e)
	if det := mat.Det(&gram); abs(T(det)) <= Epsilon*Epsilon {
		return fmt.Errorf("%w: gram determinant %v", ErrDegenerateSimplex, det)
	}
	return nil
}

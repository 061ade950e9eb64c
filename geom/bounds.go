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

// Цей файл містить обмежувальні об'єми нашої алгебри:
// - Bounds (AABB) - прямокутники/куби, вирівняні по осях
// - Radial - кола/сфери/кулі будь-якої розмірності

package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bounds - прямокутник або куб, вирівняний по осях координат
// Інваріант: Min[i] <= Max[i] для кожної осі
type Bounds[T constraints.Float, V Vector[T, V]] struct {
	Min, Max V // Нижній та верхній кути
}

func (b Bounds[T, V]) Kind() Kind { return KindBounds }

// BoundsOf повертає найменший AABB, що містить всі точки
func BoundsOf[T constraints.Float, V Vector[T, V]](points ...V) Bounds[T, V] {
	debugAssert(len(points) > 0, "BoundsOf needs at least one point")
	b := Bounds[T, V]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center повертає центр AABB
func (b Bounds[T, V]) Center() V { return b.Min.Add(b.Max).Mul(0.5) }

// Size повертає розміри AABB по кожній осі
func (b Bounds[T, V]) Size() V { return b.Max.Sub(b.Min) }

// Union повертає найменший AABB, що містить обидва вхідні AABB
func (b Bounds[T, V]) Union(other Bounds[T, V]) Bounds[T, V] {
	return Bounds[T, V]{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Surface повертає площу поверхні (для 2D - периметр)
func (b Bounds[T, V]) Surface() T {
	size := b.Size()
	n := size.Dim()
	var total T
	// Кожна пара протилежних граней - добуток усіх розмірів, крім однієї осі
	for skip := 0; skip < n; skip++ {
		face := T(1)
		for i := 0; i < n; i++ {
			if i != skip {
				face *= size.At(i)
			}
		}
		total += face
	}
	return total * 2
}

// NumCorners повертає кількість вершин: 2^N
func (b Bounds[T, V]) NumCorners() int { return 1 << b.Min.Dim() }

// Corner повертає вершину з номером i
// Біт a в i вибирає Max по осі a, інакше Min
func (b Bounds[T, V]) Corner(i int) V {
	c := b.Min
	for axis := 0; axis < c.Dim(); axis++ {
		if i&(1<<axis) != 0 {
			c = c.With(axis, b.Max.At(axis))
		}
	}
	return c
}

// Distance2 повертає квадрат відстані від точки до AABB
// Якщо точка всередині - нуль
func (b Bounds[T, V]) Distance2(p V) T {
	var out T
	for i := 0; i < p.Dim(); i++ {
		v := p.At(i)
		if lo := b.Min.At(i); v < lo {
			out += (lo - v) * (lo - v)
		}
		if hi := b.Max.At(i); v > hi {
			out += (v - hi) * (v - hi)
		}
	}
	return out
}

// Transform повертає AABB, що охоплює перетворені вершини
// Для обертань результат більший за оригінал - це нормально
func (b Bounds[T, V]) Transform(m Transform[V]) Bounds[T, V] {
	out := Bounds[T, V]{Min: m.TransformPoint(b.Corner(0))}
	out.Max = out.Min
	for i := 1; i < b.NumCorners(); i++ {
		p := m.TransformPoint(b.Corner(i))
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

// Validate перевіряє інваріант Min <= Max
func (b Bounds[T, V]) Validate() error {
	for i := 0; i < b.Min.Dim(); i++ {
		if b.Min.At(i) > b.Max.At(i) {
			return fmt.Errorf("%w: axis %d: %v > %v", ErrInvertedBounds, i, b.Min.At(i), b.Max.At(i))
		}
	}
	return nil
}

// Radial - коло, сфера або куля будь-якої розмірності
// Інваріант: Radius >= 0
type Radial[T constraints.Float, V Vector[T, V]] struct {
	Center V // Центр сфери
	Radius T // Радіус сфери
}

func (r Radial[T, V]) Kind() Kind { return KindRadial }

// Radius2 повертає квадрат радіуса
func (r Radial[T, V]) Radius2() T { return r.Radius * r.Radius }

// Union повертає найменшу сферу, що містить обидві вхідні сфери
func (r Radial[T, V]) Union(other Radial[T, V]) Radial[T, V] {
	d := Length[T, V](other.Center.Sub(r.Center))
	// Одна сфера вже містить іншу
	if d+other.Radius <= r.Radius {
		return r
	}
	if d+r.Radius <= other.Radius {
		return other
	}
	radius := (d + r.Radius + other.Radius) / 2
	// Зсуваємо центр від r у бік other
	center := r.Center.Add(other.Center.Sub(r.Center).Mul((radius - r.Radius) / d))
	return Radial[T, V]{Center: center, Radius: radius}
}

// Transform переносить центр. Радіус не змінюється,
// тому перетворення має бути жорстким (обертання + перенос).
func (r Radial[T, V]) Transform(m Transform[V]) Radial[T, V] {
	return Radial[T, V]{Center: m.TransformPoint(r.Center), Radius: r.Radius}
}

// Validate перевіряє інваріант Radius >= 0
func (r Radial[T, V]) Validate() error {
	if r.Radius < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeRadius, r.Radius)
	}
	return nil
}

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

import "golang.org/x/exp/constraints"

// Transform - перетворення простору, яким можна рухати фігури.
// Точка перетворюється з однорідною координатою 1, вектор - з 0,
// тобто перенос на вектори не діє.
type Transform[V any] interface {
	TransformPoint(V) V
	TransformVector(V) V
}

// Linear - лінійне відображення N×N, Rows[i] - рядок i матриці
type Linear[T constraints.Float, V Vector[T, V]] struct {
	Rows []V
}

// Identity повертає одиничну матрицю розмірності вектора V
func Identity[T constraints.Float, V Vector[T, V]]() Linear[T, V] {
	var zero V
	rows := make([]V, zero.Dim())
	for i := range rows {
		rows[i] = zero.With(i, 1)
	}
	return Linear[T, V]{Rows: rows}
}

func (l Linear[T, V]) TransformVector(v V) V {
	var out V
	for i, row := range l.Rows {
		out = out.With(i, row.Dot(v))
	}
	return out
}

// TransformPoint для лінійного відображення збігається з TransformVector
func (l Linear[T, V]) TransformPoint(p V) V { return l.TransformVector(p) }

// Affine - афінне відображення: матриця (N+1)×(N+1),
// у якої останній рядок 0…0 1
type Affine[T constraints.Float, V Vector[T, V]] struct {
	Linear      Linear[T, V]
	Translation V
}

// Translate повертає чистий перенос на offset
func Translate[T constraints.Float, V Vector[T, V]](offset V) Affine[T, V] {
	return Affine[T, V]{Linear: Identity[T, V](), Translation: offset}
}

func (a Affine[T, V]) TransformPoint(p V) V {
	return a.Linear.TransformVector(p).Add(a.Translation)
}

func (a Affine[T, V]) TransformVector(v V) V {
	return a.Linear.TransformVector(v)
}

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

// Йоу, чат! Сьогодні ми розберемо як працюють вектори в нашій геометрії!
// Розмірність задається типом вектора: Vec2 для площини, Vec3 для простору,
// Vec4 для чотиривимірних задач. Всі вони - масиви фіксованого розміру,
// тому ніяких алокацій на гарячому шляху.

package geom

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Vector - обмеження для типу вектора розмірності N
// T - скалярний тип (float32 або float64)
// V - сам тип вектора (Vec2, Vec3, Vec4)
type Vector[T constraints.Float, V any] interface {
	comparable
	Dim() int          // Кількість компонент
	At(i int) T        // Компонента i
	With(i int, x T) V // Копія з заміненою компонентою i
	Add(V) V           // Додавання векторів
	Sub(V) V           // Віднімання векторів
	Mul(T) V           // Множення на скаляр
	Dot(V) T           // Скалярний добуток
	Min(V) V           // Мінімум по компонентах
	Max(V) V           // Максимум по компонентах
	Kind() Kind        // Вектор сам по собі - це точка
}

// Vec2 - двовимірний вектор
type Vec2[T constraints.Float] [2]T

func (v Vec2[T]) Dim() int                { return 2 }
func (v Vec2[T]) At(i int) T              { return v[i] }
func (v Vec2[T]) With(i int, x T) Vec2[T] { v[i] = x; return v }
func (v Vec2[T]) Kind() Kind              { return KindPoint }

// Add додає інший вектор до поточного
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + other[0], v[1] + other[1]} }

// Sub віднімає інший вектор від поточного
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - other[0], v[1] - other[1]} }

// Mul множить вектор на скаляр
func (v Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Dot повертає скалярний добуток
func (v Vec2[T]) Dot(other Vec2[T]) T { return v[0]*other[0] + v[1]*other[1] }

// Max повертає вектор з максимальними координатами
func (v Vec2[T]) Max(other Vec2[T]) Vec2[T] { return Vec2[T]{max(v[0], other[0]), max(v[1], other[1])} }

// Min повертає вектор з мінімальними координатами
func (v Vec2[T]) Min(other Vec2[T]) Vec2[T] { return Vec2[T]{min(v[0], other[0]), min(v[1], other[1])} }

// Vec3 - тривимірний вектор
type Vec3[T constraints.Float] [3]T

func (v Vec3[T]) Dim() int                { return 3 }
func (v Vec3[T]) At(i int) T              { return v[i] }
func (v Vec3[T]) With(i int, x T) Vec3[T] { v[i] = x; return v }
func (v Vec3[T]) Kind() Kind              { return KindPoint }

// Add додає інший вектор до поточного
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub віднімає інший вектор від поточного
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Mul множить вектор на скаляр
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Dot повертає скалярний добуток
func (v Vec3[T]) Dot(other Vec3[T]) T { return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] }

// Cross повертає векторний добуток (є тільки в 3D)
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Max повертає вектор з максимальними координатами
func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2])}
}

// Min повертає вектор з мінімальними координатами
func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2])}
}

// Vec4 - чотиривимірний вектор
type Vec4[T constraints.Float] [4]T

func (v Vec4[T]) Dim() int                { return 4 }
func (v Vec4[T]) At(i int) T              { return v[i] }
func (v Vec4[T]) With(i int, x T) Vec4[T] { v[i] = x; return v }
func (v Vec4[T]) Kind() Kind              { return KindPoint }

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

func (v Vec4[T]) Mul(s T) Vec4[T] { return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

func (v Vec4[T]) Dot(other Vec4[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

func (v Vec4[T]) Max(other Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2]), max(v[3], other[3])}
}

func (v Vec4[T]) Min(other Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2]), min(v[3], other[3])}
}

// Допоміжні функції, що працюють з будь-яким типом вектора

// Length2 повертає квадрат довжини вектора
func Length2[T constraints.Float, V Vector[T, V]](v V) T { return v.Dot(v) }

// Length повертає довжину вектора
func Length[T constraints.Float, V Vector[T, V]](v V) T { return sqrt(v.Dot(v)) }

// Distance2 повертає квадрат відстані між двома точками
func Distance2[T constraints.Float, V Vector[T, V]](a, b V) T {
	d := a.Sub(b)
	return d.Dot(d)
}

// Normalize повертає одиничний вектор того ж напрямку
// Для нульового вектора результат - NaN
func Normalize[T constraints.Float, V Vector[T, V]](v V) V {
	return v.Mul(1 / sqrt(v.Dot(v)))
}

// sqrt обчислює квадратний корінь
// float32 рахуємо через math32, щоб не ганяти через float64
func sqrt[T constraints.Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(v)))
}

// abs повертає модуль числа
func abs[T constraints.Float](v T) T {
	if f, ok := any(v).(float32); ok {
		return T(math32.Abs(f))
	}
	return T(math.Abs(float64(v)))
}

func inf[T constraints.Float](sign int) T {
	return T(math.Inf(sign))
}

func nan[T constraints.Float]() T {
	return T(math.NaN())
}

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

// Адаптери для матриць mathgl, щоб камера і сцена могли рухати
// наші фігури своїми mgl64/mgl32 матрицями без конвертацій.
// Vec3[float64] і mgl64.Vec3 мають однаковий базовий тип [3]float64,
// тому перетворюються один в одний напряму.

package geom

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 - лінійне перетворення 3×3 для Vec3[float64]
type Mat3 mgl64.Mat3

func (m Mat3) TransformVector(v Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Mat3(m).Mul3x1(mgl64.Vec3(v)))
}

func (m Mat3) TransformPoint(p Vec3[float64]) Vec3[float64] { return m.TransformVector(p) }

// Mat4 - афінне перетворення 4×4 для Vec3[float64]
// Проєктивна частина (w) ігнорується
type Mat4 mgl64.Mat4

func (m Mat4) TransformPoint(p Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Mat4(m).Mul4x1(mgl64.Vec3(p).Vec4(1)).Vec3())
}

func (m Mat4) TransformVector(v Vec3[float64]) Vec3[float64] {
	return Vec3[float64](mgl64.Mat4(m).Mul4x1(mgl64.Vec3(v).Vec4(0)).Vec3())
}

// Mat3f - те саме, що Mat3, але для float32
type Mat3f mgl32.Mat3

func (m Mat3f) TransformVector(v Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Mat3(m).Mul3x1(mgl32.Vec3(v)))
}

func (m Mat3f) TransformPoint(p Vec3[float32]) Vec3[float32] { return m.TransformVector(p) }

// Mat4f - те саме, що Mat4, але для float32
type Mat4f mgl32.Mat4

func (m Mat4f) TransformPoint(p Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Mat4(m).Mul4x1(mgl32.Vec3(p).Vec4(1)).Vec3())
}

func (m Mat4f) TransformVector(v Vec3[float32]) Vec3[float32] {
	return Vec3[float32](mgl32.Mat4(m).Mul4x1(mgl32.Vec3(v).Vec4(0)).Vec3())
}

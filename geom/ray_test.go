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
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRay_Equal(t *testing.T) {
	r := Ray[float64, Vec3d]{Origin: Vec3d{1, 2, 3}, Direction: Vec3d{0, 0, 1}}
	assert.True(t, r.Equal(r))
	other := r
	other.Direction = Vec3d{0, 0, 1 + 1e-12}
	assert.False(t, r.Equal(other), "equality has no tolerance")
}

func TestRay_At(t *testing.T) {
	r := Ray[float64, Vec2d]{Origin: Vec2d{1, 1}, Direction: Vec2d{2, 0}}
	assert.Equal(t, Vec2d{1, 1}, r.At(0))
	assert.Equal(t, Vec2d{4, 1}, r.At(1.5))
}

func TestRay_Validate(t *testing.T) {
	require.NoError(t, Ray[float64, Vec3d]{Direction: Vec3d{0, 1, 0}}.Validate())
	assert.ErrorIs(t, Ray[float64, Vec3d]{Origin: Vec3d{1, 1, 1}}.Validate(), ErrZeroDirection)
}

func TestRay_TransformAffine(t *testing.T) {
	r := Ray[float64, Vec2d]{Origin: Vec2d{1, 0}, Direction: Vec2d{1, 0}}

	// Перенос діє на початок, але не на напрямок
	moved := r.Transform(Translate[float64](Vec2d{5, 5}))
	assert.Equal(t, Vec2d{6, 5}, moved.Origin)
	assert.Equal(t, Vec2d{1, 0}, moved.Direction)

	// Поворот на 90° проти годинникової стрілки
	rot := Linear[float64, Vec2d]{Rows: []Vec2d{{0, -1}, {1, 0}}}
	turned := r.Transform(rot)
	assert.Equal(t, Vec2d{0, 1}, turned.Origin)
	assert.Equal(t, Vec2d{0, 1}, turned.Direction)

	full := Affine[float64, Vec2d]{Linear: rot, Translation: Vec2d{0, -1}}
	for _, tt := range []float64{0, 0.5, 3} {
		requireVecNear(t, full.TransformPoint(r.At(tt)), r.Transform(full).At(tt))
	}

	id := Identity[float64, Vec2d]()
	assert.True(t, r.Transform(id).Equal(r))
}

func TestRay_TransformMathgl(t *testing.T) {
	r := Ray[float64, Vec3d]{Origin: Vec3d{1, 0, 0}, Direction: Vec3d{0, 0, -1}}
	m := mgl64.Translate3D(0, 10, 0).Mul4(mgl64.HomogRotate3DY(math.Pi / 2))

	out := r.Transform(Mat4(m))
	requireVecNear(t, Vec3d{0, 10, -1}, out.Origin)
	requireVecNear(t, Vec3d{-1, 0, 0}, out.Direction)

	lin := r.Transform(Mat3(mgl64.Rotate3DY(math.Pi / 2)))
	requireVecNear(t, Vec3d{0, 0, -1}, lin.Origin)
	requireVecNear(t, Vec3d{-1, 0, 0}, lin.Direction)

	rf := Ray[float32, Vec3[float32]]{Origin: Vec3[float32]{1, 0, 0}, Direction: Vec3[float32]{0, 1, 0}}
	outf := rf.Transform(Mat4f(mgl32.Translate3D(1, 2, 3)))
	assert.Equal(t, Vec3[float32]{2, 2, 3}, outf.Origin)
	assert.Equal(t, Vec3[float32]{0, 1, 0}, outf.Direction)
	linf := rf.Transform(Mat3f(mgl32.Ident3()))
	assert.Equal(t, rf, linf)
}

func TestShapes_Transform(t *testing.T) {
	m := Translate[float64](Vec3d{1, 2, 3})

	b := Bounds[float64, Vec3d]{Min: Vec3d{0, 0, 0}, Max: Vec3d{1, 1, 1}}
	moved := b.Transform(m)
	assert.Equal(t, Vec3d{1, 2, 3}, moved.Min)
	assert.Equal(t, Vec3d{2, 3, 4}, moved.Max)

	// Поворот на 45° навколо z розширює AABB
	turned := b.Transform(Mat4(mgl64.HomogRotate3DZ(math.Pi / 4)))
	assert.InDelta(t, -math.Sqrt2/2, turned.Min[0], 1e-9)
	assert.InDelta(t, math.Sqrt2/2, turned.Max[0], 1e-9)
	assert.InDelta(t, math.Sqrt2, turned.Max[1], 1e-9)

	r := Radial[float64, Vec3d]{Center: Vec3d{1, 1, 1}, Radius: 2}
	assert.Equal(t, Radial[float64, Vec3d]{Center: Vec3d{2, 3, 4}, Radius: 2}, r.Transform(m))

	h := NewHyperplane[float64](Vec3d{0, 0, 0}, Vec3d{0, 1, 0})
	hm := h.Transform(m)
	assert.Equal(t, Vec3d{1, 2, 3}, hm.Origin)
	assert.Equal(t, Vec3d{0, 1, 0}, hm.Normal)

	s := NewSimplex[float64](Vec3d{0, 0, 0}, Vec3d{1, 0, 0})
	assert.Equal(t, []Vec3d{{1, 2, 3}, {2, 2, 3}}, s.Transform(m).Points)
}

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

package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"FlowyGeom/geom"
)

type Plane = geom.Hyperplane[float64, Vec]

// Frustum - шість площин піраміди видимості, нормалі дивляться всередину.
// Порядок: ліва, права, нижня, верхня, ближня, дальня.
type Frustum [6]Plane

// NewFrustum дістає площини з матриці view-projection (метод Gribb-Hartmann).
// Точка всередині, коли -w <= x, y, z <= w у clip space.
func NewFrustum(m mgl64.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	rows := [6]mgl64.Vec4{
		r3.Add(r0), r3.Sub(r0),
		r3.Add(r1), r3.Sub(r1),
		r3.Add(r2), r3.Sub(r2),
	}
	var f Frustum
	for i, p := range rows {
		// n·x + d = 0, найближча до початку координат точка: -d·n/|n|²
		n := p.Vec3()
		origin := n.Mul(-p[3] / n.Dot(n))
		f[i] = geom.NewHyperplane[float64](Vec(origin), Vec(n))
	}
	return f
}

// Contains повертає false, якщо фігура повністю позаду хоча б однієї площини.
// Тест консервативний: біля кутів піраміди можливі хибні "видно".
func (f Frustum) Contains(shape geom.Shape) bool {
	for _, p := range f {
		if outside(p, shape) {
			return false
		}
	}
	return true
}

func outside(p Plane, shape geom.Shape) bool {
	switch s := shape.(type) {
	case Vec:
		return p.SignedDistance(s) < -geom.Epsilon
	case geom.Bounds[float64, Vec]:
		return !geom.HyperplaneBounds(p, s) && p.SignedDistance(s.Center()) < 0
	case geom.Radial[float64, Vec]:
		return !geom.HyperplaneRadial(p, s) && p.SignedDistance(s.Center) < 0
	case geom.Simplex[float64, Vec]:
		for _, v := range s.Points {
			if p.SignedDistance(v) >= -geom.Epsilon {
				return false
			}
		}
		return true
	}
	// Нескінченні площини і промені завжди десь перетинають піраміду
	return false
}

// Frustum камери сцени
func (s *Scene) Frustum() Frustum {
	return NewFrustum(s.camera.ViewProjection())
}

// Visible повертає об'єкти, які потрапляють у поле зору камери
func (s *Scene) Visible() []Entity {
	f := s.Frustum()
	var out []Entity
	for _, e := range s.entities {
		if f.Contains(e.World) {
			out = append(out, e)
		}
	}
	s.log.Named("cull").Debug("Frustum culling",
		zap.Int("visible", len(out)),
		zap.Int("total", len(s.entities)),
	)
	return out
}

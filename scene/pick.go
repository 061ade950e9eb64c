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
	"errors"

	"go.uber.org/zap"

	"FlowyGeom/geom"
)

// Hit - результат пікінгу
type Hit struct {
	Entity Entity
	// T - параметр вздовж світового променя, Point = ray.At(T)
	T     float64
	Point Vec
}

// Pick шукає найближчий об'єкт попереду променя.
//
// Промінь переводиться в локальні координати кожного об'єкта, тому
// повернута коробка перевіряється точно, а не через свій світовий AABB.
// Model жорстка, тож t однаковий в обох системах координат.
// Якщо початок променя всередині об'єкта, T = 0.
func (s *Scene) Pick(ray Ray) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, e := range s.entities {
		local := ray.Transform(geom.Mat4(e.inverse))
		tmin, tmax, ok, err := geom.Raycast(local, e.Shape)
		if err != nil {
			s.log.Named("pick").Debug("Skip object", zap.String("name", e.Name), zap.Error(err))
			continue
		}
		if !ok || tmax < 0 {
			continue
		}
		t := max(tmin, 0)
		if !found || t < best.T {
			best = Hit{Entity: e, T: t, Point: ray.At(t)}
			found = true
		}
	}
	return best, found
}

// PickScreen - Pick для пікселя (x, y) камери сцени
func (s *Scene) PickScreen(x, y float64) (Hit, bool, error) {
	ray, err := s.camera.ScreenRay(x, y)
	if err != nil {
		return Hit{}, false, err
	}
	hit, ok := s.Pick(ray)
	if ok {
		s.log.Named("pick").Debug("Picked",
			zap.Float64("x", x),
			zap.Float64("y", y),
			zap.String("name", hit.Entity.Name),
			zap.Float64("t", hit.T),
		)
	}
	return hit, ok, nil
}

// Query повертає об'єкти, світова фігура яких перетинається з shape.
// Пари без тесту (наприклад площина з площиною) пропускаються.
func (s *Scene) Query(shape geom.Shape) []Entity {
	var out []Entity
	for _, e := range s.entities {
		hit, err := geom.Collide[float64, Vec](shape, e.World)
		if errors.Is(err, geom.ErrUnsupportedPair) {
			continue
		}
		if hit {
			out = append(out, e)
		}
	}
	return out
}

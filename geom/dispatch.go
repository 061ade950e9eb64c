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

// Диспетчеризація під час виконання: коли тип фігури відомий лише в рантаймі
// (наприклад, об'єкти сцени з конфігу), Collide вибирає потрібний тест
// за парою Kind. Там, де типи відомі під час компіляції, краще викликати
// конкретні функції напряму.

package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Collide перевіряє зіткнення двох довільних фігур.
// Пара спершу впорядковується за Kind, тому результат симетричний.
// Для променя з площиною, AABB чи сферою повертається тільки факт влучання.
func Collide[T constraints.Float, V Vector[T, V]](a, b Shape) (bool, error) {
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	switch x := a.(type) {
	case V:
		switch y := b.(type) {
		case Bounds[T, V]:
			return PointBounds(x, y), nil
		case Radial[T, V]:
			return PointRadial(x, y), nil
		case Hyperplane[T, V]:
			return PointHyperplane(x, y), nil
		case Simplex[T, V]:
			return PointSimplex(x, y), nil
		}
	case Bounds[T, V]:
		switch y := b.(type) {
		case Bounds[T, V]:
			return BoundsBounds(x, y), nil
		case Radial[T, V]:
			return BoundsRadial(x, y), nil
		case Hyperplane[T, V]:
			return BoundsHyperplane(x, y), nil
		case Ray[T, V]:
			_, _, ok := BoundsRay(x, y)
			return ok, nil
		}
	case Radial[T, V]:
		switch y := b.(type) {
		case Radial[T, V]:
			return RadialRadial(x, y), nil
		case Hyperplane[T, V]:
			return RadialHyperplane(x, y), nil
		case Ray[T, V]:
			_, _, ok := RadialRay(x, y)
			return ok, nil
		}
	case Hyperplane[T, V]:
		if y, isRay := b.(Ray[T, V]); isRay {
			_, ok := HyperplaneRay(x, y)
			return ok, nil
		}
	case Ray[T, V]:
		if y, isSimplex := b.(Simplex[T, V]); isSimplex {
			_, _, ok, err := raySimplex(x, y)
			return ok, err
		}
	}
	return false, fmt.Errorf("%w: %v and %v", ErrUnsupportedPair, a.Kind(), b.Kind())
}

// Raycast повертає параметричний перетин променя з фігурою.
// Для площини та грані симплекса tmin == tmax.
func Raycast[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Shape) (tmin, tmax T, ok bool, err error) {
	switch y := s.(type) {
	case Bounds[T, V]:
		tmin, tmax, ok = RayBounds(r, y)
	case Radial[T, V]:
		tmin, tmax, ok = RayRadial(r, y)
	case Hyperplane[T, V]:
		tmin, ok = RayHyperplane(r, y)
		tmax = tmin
	case Simplex[T, V]:
		return raySimplex(r, y)
	default:
		return 0, 0, false, fmt.Errorf("%w: %v and %v", ErrUnsupportedPair, KindRay, s.Kind())
	}
	return tmin, tmax, ok, nil
}

// raySimplex вибирає тест грані або об'єму за кількістю вершин.
// Для інших симплексів (відрізок у 3D тощо) тесту немає.
func raySimplex[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Simplex[T, V]) (tmin, tmax T, ok bool, err error) {
	var zero V
	switch len(s.Points) - zero.Dim() {
	case 0:
		t, hit := RaySimplexFace(r, s)
		return t, t, hit, nil
	case 1:
		tmin, tmax, ok = RaySimplexVolume(r, s)
		return tmin, tmax, ok, nil
	}
	return 0, 0, false, fmt.Errorf("%w: %v and %d-point %v", ErrUnsupportedPair, KindRay, len(s.Points), KindSimplex)
}

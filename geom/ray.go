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
)

// Ray - промінь: Origin + t*Direction, t >= 0
// Direction не обов'язково одиничний, але нульовий напрямок
// робить усі тести виродженими.
type Ray[T constraints.Float, V Vector[T, V]] struct {
	Origin    V
	Direction V
}

func (r Ray[T, V]) Kind() Kind { return KindRay }

// At повертає точку променя з параметром t
func (r Ray[T, V]) At(t T) V { return r.Origin.Add(r.Direction.Mul(t)) }

// Equal порівнює компоненти точно, без допуску.
// Це перевірка "чи той самий промінь", а не геометричний збіг.
func (r Ray[T, V]) Equal(other Ray[T, V]) bool { return r == other }

// Transform перетворює Origin як точку, а Direction як вектор.
// Параметр t при цьому зберігається: точка r.At(t) переходить у
// r.Transform(m).At(t) для будь-якого афінного m.
func (r Ray[T, V]) Transform(m Transform[V]) Ray[T, V] {
	return Ray[T, V]{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformVector(r.Direction),
	}
}

// Validate перевіряє, що напрямок ненульовий
func (r Ray[T, V]) Validate() error {
	var zero V
	if r.Direction == zero {
		return fmt.Errorf("%w: origin %v", ErrZeroDirection, r.Origin)
	}
	return nil
}

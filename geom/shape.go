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

import "strconv"

// Epsilon - абсолютний допуск для всіх граничних порівнянь.
// Дотик на межі вважається зіткненням.
const Epsilon = 1e-6

// Kind - тип фігури, потрібен для диспетчеризації під час виконання
type Kind uint8

// Порядок констант задає канонічний порядок пар у Collide
const (
	KindPoint Kind = iota
	KindBounds
	KindRadial
	KindHyperplane
	KindRay
	KindSimplex
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindBounds:
		return "bounds"
	case KindRadial:
		return "radial"
	case KindHyperplane:
		return "hyperplane"
	case KindRay:
		return "ray"
	case KindSimplex:
		return "simplex"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Shape - будь-яка фігура нашої алгебри, включно з точкою (вектором)
type Shape interface {
	Kind() Kind
}

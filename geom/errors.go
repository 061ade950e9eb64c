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

import "errors"

// Помилки перевірки інваріантів. Функції зіткнень їх ніколи не повертають:
// за некоректні фігури відповідає той, хто їх створив. Validate - це
// опціональна перевірка для місць, де дані приходять ззовні.
var (
	ErrInvertedBounds    = errors.New("bounds min exceeds max")
	ErrNegativeRadius    = errors.New("negative radius")
	ErrNonUnitNormal     = errors.New("hyperplane normal is not unit length")
	ErrZeroDirection     = errors.New("ray direction is zero")
	ErrTooManyPoints     = errors.New("simplex has more than N+1 points")
	ErrDegenerateSimplex = errors.New("simplex points are affinely dependent")
	ErrUnsupportedPair   = errors.New("no collision test for shape pair")
)

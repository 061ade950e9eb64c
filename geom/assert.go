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

// debugAssert панікує, тільки якщо пакет зібрано з -tags geomdebug.
// Аргументи обчислюються і в релізній збірці, тому умова не повинна
// сама панікувати (індексувати порожній зріз тощо).
func debugAssert(cond bool, msg string) {
	if debugAsserts && !cond {
		panic("geom: " + msg)
	}
}

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

// Йоу, чат! Тут уся алгебра зіткнень: по одній функції на кожну пару фігур.
// Функції з оберненим порядком аргументів просто викликають канонічну,
// тому Collide(A, B) і Collide(B, A) завжди дають однаковий результат.
// Параметричні тести повертають (значення, ok): значення має сенс тільки при ok.

package geom

import "golang.org/x/exp/constraints"

// RadialRadial перевіряє, чи перетинаються дві сфери.
// Дотик зовні теж рахується.
func RadialRadial[T constraints.Float, V Vector[T, V]](a, b Radial[T, V]) bool {
	combined := (a.Radius + b.Radius) * (a.Radius + b.Radius)
	return Distance2[T, V](a.Center, b.Center)-combined <= Epsilon
}

// BoundsRadial перевіряє, чи перетинається AABB зі сферою
func BoundsRadial[T constraints.Float, V Vector[T, V]](b Bounds[T, V], r Radial[T, V]) bool {
	return b.Distance2(r.Center)-r.Radius2() <= Epsilon
}

func RadialBounds[T constraints.Float, V Vector[T, V]](r Radial[T, V], b Bounds[T, V]) bool {
	return BoundsRadial(b, r)
}

// BoundsBounds - класичний тест розділяючих осей для AABB
func BoundsBounds[T constraints.Float, V Vector[T, V]](a, b Bounds[T, V]) bool {
	for i := 0; i < a.Min.Dim(); i++ {
		if a.Max.At(i)+Epsilon < b.Min.At(i) || b.Max.At(i)+Epsilon < a.Min.At(i) {
			return false
		}
	}
	return true
}

// PointRadial перевіряє, чи лежить точка в кулі
func PointRadial[T constraints.Float, V Vector[T, V]](p V, r Radial[T, V]) bool {
	return Distance2[T, V](p, r.Center)-r.Radius2() <= Epsilon
}

func RadialPoint[T constraints.Float, V Vector[T, V]](r Radial[T, V], p V) bool {
	return PointRadial(p, r)
}

// PointBounds перевіряє, чи лежить точка в AABB (межі включно)
func PointBounds[T constraints.Float, V Vector[T, V]](p V, b Bounds[T, V]) bool {
	for i := 0; i < p.Dim(); i++ {
		if v := p.At(i); v < b.Min.At(i)-Epsilon || v > b.Max.At(i)+Epsilon {
			return false
		}
	}
	return true
}

func BoundsPoint[T constraints.Float, V Vector[T, V]](b Bounds[T, V], p V) bool {
	return PointBounds(p, b)
}

// PointSimplex перевіряє, чи лежить точка в опуклій оболонці симплекса.
//
// Барицентричні координати шукаються з проєкцією на афінну оболонку,
// тому окремо перевіряємо, що зворотне перетворення повертає ту саму точку.
// Інакше точка над трикутником у 3D вважалась би всередині.
func PointSimplex[T constraints.Float, V Vector[T, V]](p V, s Simplex[T, V]) bool {
	if len(s.Points) == 0 {
		return false
	}
	reduced := s.ToBarycentricReduced(p)
	final := T(1)
	for _, c := range reduced {
		// NaN не проходить жодне порівняння, тому перевіряємо "всередині"
		if !(c >= -Epsilon && c <= 1+Epsilon) {
			return false
		}
		final -= c
	}
	if final < -Epsilon || final > 1+Epsilon {
		return false
	}
	return Distance2[T, V](s.ToWorld(reduced), p) <= Epsilon
}

func SimplexPoint[T constraints.Float, V Vector[T, V]](s Simplex[T, V], p V) bool {
	return PointSimplex(p, s)
}

// PointHyperplane перевіряє, чи лежить точка на площині
func PointHyperplane[T constraints.Float, V Vector[T, V]](p V, h Hyperplane[T, V]) bool {
	return abs(h.SignedDistance(p)) <= Epsilon
}

func HyperplanePoint[T constraints.Float, V Vector[T, V]](h Hyperplane[T, V], p V) bool {
	return PointHyperplane(p, h)
}

// RayHyperplane шукає перетин променя з площиною.
// Площина одностороння: промінь має йти назустріч нормалі.
// Паралельний промінь або промінь, що йде від площини, не влучає.
func RayHyperplane[T constraints.Float, V Vector[T, V]](r Ray[T, V], h Hyperplane[T, V]) (t T, ok bool) {
	denom := r.Direction.Dot(h.Normal)
	if denom > -Epsilon {
		return 0, false
	}
	t = h.Origin.Sub(r.Origin).Dot(h.Normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

func HyperplaneRay[T constraints.Float, V Vector[T, V]](h Hyperplane[T, V], r Ray[T, V]) (t T, ok bool) {
	return RayHyperplane(r, h)
}

// RayBounds - тест плит (slab test).
// Для кожної осі рахуємо t входу та виходу з плити цієї осі і звужуємо
// інтервал [tmin, tmax]. Промінь трактується як пряма: tmin може бути від'ємним.
func RayBounds[T constraints.Float, V Vector[T, V]](r Ray[T, V], b Bounds[T, V]) (tmin, tmax T, ok bool) {
	tmin, tmax = inf[T](-1), inf[T](1)
	for i := 0; i < r.Origin.Dim(); i++ {
		o, d := r.Origin.At(i), r.Direction.At(i)
		lo, hi := b.Min.At(i), b.Max.At(i)
		if d == 0 {
			// Паралельно плиті: або всередині неї на всьому промені, або ніколи
			if o < lo-Epsilon || o > hi+Epsilon {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		tmin = max(tmin, min(t1, t2))
		tmax = min(tmax, max(t1, t2))
	}
	if tmax < tmin {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func BoundsRay[T constraints.Float, V Vector[T, V]](b Bounds[T, V], r Ray[T, V]) (tmin, tmax T, ok bool) {
	return RayBounds(r, b)
}

// RayBoundsSegment повертає відрізок променя всередині AABB
func RayBoundsSegment[T constraints.Float, V Vector[T, V]](r Ray[T, V], b Bounds[T, V]) (Simplex[T, V], bool) {
	tmin, tmax, ok := RayBounds(r, b)
	if !ok {
		return Simplex[T, V]{}, false
	}
	return segment(r, tmin, tmax), true
}

func BoundsRaySegment[T constraints.Float, V Vector[T, V]](b Bounds[T, V], r Ray[T, V]) (Simplex[T, V], bool) {
	return RayBoundsSegment(r, b)
}

// RayRadial розв'язує квадратне рівняння промінь-сфера:
// a = |d|², b = 2·(o-c)·d, c = |o-c|² - r².
// Влучанням вважається тільки випадок, коли обидва корені строго додатні,
// тобто сфера повністю попереду. Сфера позаду або навколо початку променя - ні.
func RayRadial[T constraints.Float, V Vector[T, V]](ry Ray[T, V], rd Radial[T, V]) (tmin, tmax T, ok bool) {
	oc := ry.Origin.Sub(rd.Center)
	a := ry.Direction.Dot(ry.Direction)
	b := 2 * oc.Dot(ry.Direction)
	c := oc.Dot(oc) - rd.Radius2()
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sq := sqrt(discriminant)
	tmin = (-b - sq) / (2 * a)
	tmax = (-b + sq) / (2 * a)
	// Нульовий напрямок дає NaN, який теж має відсіятись
	if !(tmin > 0 && tmax > 0) {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func RadialRay[T constraints.Float, V Vector[T, V]](rd Radial[T, V], ry Ray[T, V]) (tmin, tmax T, ok bool) {
	return RayRadial(ry, rd)
}

// RayRadialSegment повертає хорду променя всередині сфери
func RayRadialSegment[T constraints.Float, V Vector[T, V]](ry Ray[T, V], rd Radial[T, V]) (Simplex[T, V], bool) {
	tmin, tmax, ok := RayRadial(ry, rd)
	if !ok {
		return Simplex[T, V]{}, false
	}
	return segment(ry, tmin, tmax), true
}

func RadialRaySegment[T constraints.Float, V Vector[T, V]](rd Radial[T, V], ry Ray[T, V]) (Simplex[T, V], bool) {
	return RayRadialSegment(ry, rd)
}

// RaySimplexFace перетинає промінь з гранню з N точок (трикутник у 3D,
// відрізок у 2D). Грань одностороння, як і площина: лицьова сторона -
// та, куди дивиться нормаль HyperplaneFromSimplex.
func RaySimplexFace[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Simplex[T, V]) (t T, ok bool) {
	return rayFace(r, s, HyperplaneFromSimplex(s))
}

func SimplexFaceRay[T constraints.Float, V Vector[T, V]](s Simplex[T, V], r Ray[T, V]) (t T, ok bool) {
	return RaySimplexFace(r, s)
}

func rayFace[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Simplex[T, V], h Hyperplane[T, V]) (t T, ok bool) {
	t, ok = RayHyperplane(r, h)
	if !ok {
		return 0, false
	}
	for _, c := range s.ToBarycentric(r.At(t)) {
		if !(c >= -Epsilon && c <= 1+Epsilon) {
			return 0, false
		}
	}
	return t, true
}

// RaySimplexVolume перетинає промінь з повновимірним симплексом (N+1 точок,
// трикутник у 2D, тетраедр у 3D). Симплекс розбивається на N+1 граней,
// кожна грань розвертається назустріч променю, і з усіх влучань беремо
// найближче та найдальше. Якщо початок променя всередині, влучає тільки
// вихідна грань і tmin == tmax.
func RaySimplexVolume[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Simplex[T, V]) (tmin, tmax T, ok bool) {
	debugAssert(len(s.Points) == 0 || len(s.Points) == s.Points[0].Dim()+1, "volume test needs a simplex with N+1 points")
	tmin, tmax = inf[T](1), inf[T](-1)
	for i := range s.Points {
		face := s.Face(i)
		h := HyperplaneFromSimplex(face)
		if h.Normal.Dot(r.Direction) > 0 {
			face = face.Reversed()
			h = h.Flip()
		}
		t, hit := rayFace(r, face, h)
		if !hit {
			continue
		}
		tmin = min(tmin, t)
		tmax = max(tmax, t)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func SimplexVolumeRay[T constraints.Float, V Vector[T, V]](s Simplex[T, V], r Ray[T, V]) (tmin, tmax T, ok bool) {
	return RaySimplexVolume(r, s)
}

// RaySimplexVolumeSegment повертає відрізок променя між найближчою
// та найдальшою гранню
func RaySimplexVolumeSegment[T constraints.Float, V Vector[T, V]](r Ray[T, V], s Simplex[T, V]) (Simplex[T, V], bool) {
	tmin, tmax, ok := RaySimplexVolume(r, s)
	if !ok {
		return Simplex[T, V]{}, false
	}
	return segment(r, tmin, tmax), true
}

func SimplexVolumeRaySegment[T constraints.Float, V Vector[T, V]](s Simplex[T, V], r Ray[T, V]) (Simplex[T, V], bool) {
	return RaySimplexVolumeSegment(r, s)
}

// HyperplaneBounds перевіряє, чи лежать вершини AABB по обидва боки площини
func HyperplaneBounds[T constraints.Float, V Vector[T, V]](h Hyperplane[T, V], b Bounds[T, V]) bool {
	front, behind := false, false
	for i := 0; i < b.NumCorners(); i++ {
		d := h.SignedDistance(b.Corner(i))
		if d >= -Epsilon {
			front = true
		}
		if d <= Epsilon {
			behind = true
		}
		if front && behind {
			return true
		}
	}
	return false
}

func BoundsHyperplane[T constraints.Float, V Vector[T, V]](b Bounds[T, V], h Hyperplane[T, V]) bool {
	return HyperplaneBounds(h, b)
}

// HyperplaneRadial перевіряє, чи перетинає площина кулю.
// Нормаль нормалізуємо тут, бо відстань порівнюється з радіусом.
func HyperplaneRadial[T constraints.Float, V Vector[T, V]](h Hyperplane[T, V], r Radial[T, V]) bool {
	d := r.Center.Sub(h.Origin).Dot(Normalize[T, V](h.Normal))
	return abs(d) <= r.Radius+Epsilon
}

func RadialHyperplane[T constraints.Float, V Vector[T, V]](r Radial[T, V], h Hyperplane[T, V]) bool {
	return HyperplaneRadial(h, r)
}

// segment будує відрізок променя між параметрами t0 та t1
func segment[T constraints.Float, V Vector[T, V]](r Ray[T, V], t0, t1 T) Simplex[T, V] {
	return Simplex[T, V]{Points: []V{r.At(t0), r.At(t1)}}
}

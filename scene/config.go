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

// Йоу, чат! Зараз розберемо конфігурацію нашої сцени!
// Тут описано камеру, об'єкти сцени і точки на екрані, які ми будемо пікати.

package scene

import (
	"time"

	"golang.org/x/time/rate"
)

// Config - головна структура з налаштуваннями сцени
// Поля з тегом `toml` читаються з конфіг файлу
type Config struct {
	// Камера, з якої дивимось на сцену
	Camera CameraConfig `toml:"camera"`

	// Об'єкти сцени, кожен - одна фігура геометрії
	Objects []ObjectConfig `toml:"object"`

	// Екранні координати, по яких запускаємо пікінг
	Picks []PickConfig `toml:"pick"`

	// Як часто можна пікати - наприклад один раз на кадр
	PickLimiter Limiter `toml:"pick-limiter"`
}

// CameraConfig - перспективна камера
type CameraConfig struct {
	Eye    [3]float64 `toml:"eye"`
	Target [3]float64 `toml:"target"`
	Up     [3]float64 `toml:"up"`

	// Вертикальний кут огляду в градусах
	FOV  float64 `toml:"fov"`
	Near float64 `toml:"near"`
	Far  float64 `toml:"far"`

	// Розмір вікна в пікселях
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ObjectConfig - один об'єкт сцени
// Які поля потрібні, залежить від Kind:
//   - bounds: min, max
//   - radial: center, radius
//   - hyperplane: origin, normal
//   - simplex: points (N точок - грань, N+1 - тетраедр)
type ObjectConfig struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`

	Min [3]float64 `toml:"min"`
	Max [3]float64 `toml:"max"`

	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`

	Origin [3]float64 `toml:"origin"`
	Normal [3]float64 `toml:"normal"`

	Points [][3]float64 `toml:"points,omitempty"`

	// Розміщення у світі: спочатку поворот (кути Ейлера в градусах,
	// порядок X, Y, Z), потім перенос
	Translate [3]float64 `toml:"translate"`
	Rotate    [3]float64 `toml:"rotate"`
}

// PickConfig - точка на екрані, від лівого верхнього кута
type PickConfig struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Limiter - структура для обмеження частоти дій
// Наприклад: не більше 1 пікінгу кожні 16 мілісекунд
type Limiter struct {
	// Як часто можна виконувати дію
	// Наприклад "16ms" - приблизно раз на кадр при 60 FPS
	Every duration `toml:"every"`

	// Скільки разів можна виконати дію за цей період
	N int `toml:"n"`
}

// Limiter перетворює наші налаштування в готовий rate.Limiter
// Порожній every означає "без обмежень"
func (l *Limiter) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(l.Every.Duration), max(l.N, 1))
}

// duration - обгортка навколо time.Duration
// Потрібна щоб читати тривалість з конфіг файлу
type duration struct {
	time.Duration
}

// UnmarshalText перетворює текст з конфігу в time.Duration
// Наприклад "5s" -> 5 секунд
func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}

// MarshalText потрібен, щоб tools/create_scene міг записати конфіг
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Every створює налаштування ліміту з кодом, а не з файлу
func Every(d time.Duration, n int) Limiter {
	return Limiter{Every: duration{d}, N: n}
}

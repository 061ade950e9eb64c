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
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"FlowyGeom/geom"
)

// Vec і Ray - конкретні типи геометрії, з якими працює сцена
type (
	Vec = geom.Vec3[float64]
	Ray = geom.Ray[float64, Vec]
)

var ErrInvalidCamera = errors.New("invalid camera")

// Camera - перспективна камера в стилі OpenGL
type Camera struct {
	Eye, Target, Up mgl64.Vec3

	FOV       float64 // в градусах
	Near, Far float64

	Width, Height int
}

// NewCamera перевіряє налаштування і створює камеру
func NewCamera(cfg CameraConfig) (Camera, error) {
	c := Camera{
		Eye:    cfg.Eye,
		Target: cfg.Target,
		Up:     cfg.Up,
		FOV:    cfg.FOV,
		Near:   cfg.Near,
		Far:    cfg.Far,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return c, fmt.Errorf("%w: viewport %dx%d", ErrInvalidCamera, c.Width, c.Height)
	case c.FOV <= 0 || c.FOV >= 180:
		return c, fmt.Errorf("%w: fov %v", ErrInvalidCamera, c.FOV)
	case c.Near <= 0 || c.Far <= c.Near:
		return c, fmt.Errorf("%w: near %v, far %v", ErrInvalidCamera, c.Near, c.Far)
	case c.Eye.ApproxEqual(c.Target):
		return c, fmt.Errorf("%w: eye and target coincide", ErrInvalidCamera)
	case c.Up.Len() == 0:
		return c, fmt.Errorf("%w: zero up vector", ErrInvalidCamera)
	}
	return c, nil
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c Camera) Projection() mgl64.Mat4 {
	aspect := float64(c.Width) / float64(c.Height)
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection - матриця зі світу в clip space
func (c Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// ScreenRay будує промінь через піксель (x, y).
// Координати рахуються від лівого верхнього кута, як у подій курсора,
// промінь починається на ближній площині.
func (c Camera) ScreenRay(x, y float64) (Ray, error) {
	winY := float64(c.Height) - y
	view, proj := c.View(), c.Projection()
	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return Ray{}, err
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return Ray{}, err
	}
	return Ray{
		Origin:    Vec(near),
		Direction: Vec(far.Sub(near).Normalize()),
	}, nil
}

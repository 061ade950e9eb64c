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
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FlowyGeom/geom"
)

func testCamera() CameraConfig {
	return CameraConfig{
		Eye:    [3]float64{0, 0, 10},
		Target: [3]float64{0, 0, 0},
		Up:     [3]float64{0, 1, 0},
		FOV:    60,
		Near:   0.1,
		Far:    100,
		Width:  800,
		Height: 600,
	}
}

func box(name string, translate, rotate [3]float64) ObjectConfig {
	return ObjectConfig{
		Name:      name,
		Kind:      "bounds",
		Min:       [3]float64{-1, -1, -1},
		Max:       [3]float64{1, 1, 1},
		Translate: translate,
		Rotate:    rotate,
	}
}

func newTestScene(t *testing.T, objects ...ObjectConfig) *Scene {
	t.Helper()
	s, err := New(zap.NewNop(), Config{Camera: testCamera(), Objects: objects})
	require.NoError(t, err)
	return s
}

func TestNew_Errors(t *testing.T) {
	for _, tt := range []struct {
		name string
		cfg  Config
		err  error
	}{
		{
			name: "zero viewport",
			cfg:  Config{Camera: CameraConfig{Eye: [3]float64{0, 0, 1}, Up: [3]float64{0, 1, 0}, FOV: 60, Near: 1, Far: 2}},
			err:  ErrInvalidCamera,
		},
		{
			name: "unknown kind",
			cfg:  Config{Camera: testCamera(), Objects: []ObjectConfig{{Name: "x", Kind: "torus"}}},
			err:  ErrUnknownKind,
		},
		{
			name: "inverted bounds",
			cfg: Config{Camera: testCamera(), Objects: []ObjectConfig{{
				Name: "x", Kind: "bounds", Min: [3]float64{1, 0, 0}, Max: [3]float64{0, 1, 1},
			}}},
			err: geom.ErrInvertedBounds,
		},
		{
			name: "negative radius",
			cfg:  Config{Camera: testCamera(), Objects: []ObjectConfig{{Name: "x", Kind: "radial", Radius: -1}}},
			err:  geom.ErrNegativeRadius,
		},
		{
			name: "zero normal",
			cfg:  Config{Camera: testCamera(), Objects: []ObjectConfig{{Name: "x", Kind: "hyperplane"}}},
			err:  geom.ErrNonUnitNormal,
		},
		{
			name: "degenerate simplex",
			cfg: Config{Camera: testCamera(), Objects: []ObjectConfig{{
				Name: "x", Kind: "simplex", Points: [][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
			}}},
			err: geom.ErrDegenerateSimplex,
		},
		{
			name: "empty simplex",
			cfg:  Config{Camera: testCamera(), Objects: []ObjectConfig{{Name: "x", Kind: "simplex"}}},
			err:  geom.ErrDegenerateSimplex,
		},
		{
			name: "duplicate name",
			cfg:  Config{Camera: testCamera(), Objects: []ObjectConfig{box("a", [3]float64{}, [3]float64{}), box("a", [3]float64{}, [3]float64{})}},
			err:  ErrDuplicateName,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(zap.NewNop(), tt.cfg)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNew_SimplexTooFewPoints(t *testing.T) {
	_, err := New(zap.NewNop(), Config{Camera: testCamera(), Objects: []ObjectConfig{{
		Name: "edge", Kind: "simplex", Points: [][3]float64{{0, 0, 0}, {1, 0, 0}},
	}}})
	require.Error(t, err)
}

func TestEntityID(t *testing.T) {
	assert.Equal(t, EntityID("crate"), EntityID("crate"))
	assert.NotEqual(t, EntityID("crate"), EntityID("barrel"))

	s := newTestScene(t, box("crate", [3]float64{}, [3]float64{}), ObjectConfig{Kind: "radial", Radius: 1})
	entities := s.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, EntityID("crate"), entities[0].ID)
	assert.Equal(t, "radial-1", entities[1].Name)

	e, ok := s.Lookup(EntityID("radial-1"))
	require.True(t, ok)
	assert.Equal(t, geom.KindRadial, e.Shape.Kind())
	_, ok = s.Lookup(EntityID("nope"))
	assert.False(t, ok)
}

func TestEntity_World(t *testing.T) {
	s := newTestScene(t,
		box("moved", [3]float64{5, 0, 0}, [3]float64{}),
		box("turned", [3]float64{}, [3]float64{0, 45, 0}),
	)
	entities := s.Entities()

	moved := entities[0].World.(geom.Bounds[float64, Vec])
	assert.InDelta(t, 4, moved.Min[0], 1e-9)
	assert.InDelta(t, 6, moved.Max[0], 1e-9)

	turned := entities[1].World.(geom.Bounds[float64, Vec])
	assert.InDelta(t, math.Sqrt2, turned.Max[0], 1e-9)
	assert.InDelta(t, math.Sqrt2, turned.Max[2], 1e-9)
	assert.InDelta(t, 1, turned.Max[1], 1e-9)
}

func TestCamera_ScreenRay(t *testing.T) {
	c, err := NewCamera(testCamera())
	require.NoError(t, err)

	r, err := c.ScreenRay(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, 0, r.Origin[0], 1e-9)
	assert.InDelta(t, 0, r.Origin[1], 1e-9)
	assert.InDelta(t, 9.9, r.Origin[2], 1e-9)
	assert.InDelta(t, -1, r.Direction[2], 1e-9)

	// Лівий верхній кут дивиться вліво і вгору
	r, err = c.ScreenRay(0, 0)
	require.NoError(t, err)
	assert.Less(t, r.Direction[0], 0.0)
	assert.Greater(t, r.Direction[1], 0.0)
	assert.InDelta(t, 1, geom.Length[float64](r.Direction), 1e-9)
}

func TestScene_PickScreen(t *testing.T) {
	s := newTestScene(t, box("crate", [3]float64{}, [3]float64{}))

	hit, ok, err := s.PickScreen(400, 300)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "crate", hit.Entity.Name)
	assert.InDelta(t, 8.9, hit.T, 1e-9)
	assert.InDelta(t, 1, hit.Point[2], 1e-9)

	_, ok, err = s.PickScreen(0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScene_Pick(t *testing.T) {
	down := func(x, y float64) Ray {
		return Ray{Origin: Vec{x, y, 10}, Direction: Vec{0, 0, -1}}
	}
	s := newTestScene(t,
		box("back", [3]float64{}, [3]float64{}),
		box("front", [3]float64{0, 0, 3}, [3]float64{}),
		box("turned", [3]float64{10, 0, 0}, [3]float64{0, 45, 0}),
		ObjectConfig{Name: "ball", Kind: "radial", Radius: 1, Translate: [3]float64{-5, 0, 0}},
		ObjectConfig{Name: "wall", Kind: "hyperplane", Normal: [3]float64{0, 0, 1}, Translate: [3]float64{0, 0, -20}},
		ObjectConfig{
			Name: "tri", Kind: "simplex",
			Points:    [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Translate: [3]float64{20, 0, 0},
		},
		ObjectConfig{
			Name: "tetra", Kind: "simplex",
			Points:    [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			Translate: [3]float64{30, 0, 0},
		},
	)

	for _, tt := range []struct {
		name string
		ray  Ray
		want string
		t    float64
	}{
		{name: "nearest of two", ray: down(0, 0), want: "front", t: 6},
		{name: "rotated box exact", ray: down(10, 0), want: "turned", t: 10 - math.Sqrt2},
		{name: "sphere", ray: down(-5, 0), want: "ball", t: 9},
		{name: "plane", ray: down(50, 50), want: "wall", t: 30},
		{name: "face", ray: down(20.2, 0.2), want: "tri", t: 10},
		{name: "volume", ray: down(30.2, 0.2), want: "tetra", t: 9.4},
		{name: "inside box", ray: Ray{Origin: Vec{0, 0, 3}, Direction: Vec{0, 0, -1}}, want: "front", t: 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.Pick(tt.ray)
			require.True(t, ok)
			assert.Equal(t, tt.want, hit.Entity.Name)
			assert.InDelta(t, tt.t, hit.T, 1e-9)
			assert.Equal(t, tt.ray.At(hit.T), hit.Point)
		})
	}

	// Промінь від стіни в інший бік нічого не знаходить
	_, ok := s.Pick(Ray{Origin: Vec{50, 50, 0}, Direction: Vec{0, 0, 1}})
	assert.False(t, ok)
}

func TestScene_PickRotatedMiss(t *testing.T) {
	// Світовий AABB повернутої коробки містить цей промінь, а сама коробка ні
	s := newTestScene(t, box("turned", [3]float64{}, [3]float64{0, 0, 45}))
	ray := Ray{Origin: Vec{1.3, 1.3, 10}, Direction: Vec{0, 0, -1}}

	world := s.Entities()[0].World.(geom.Bounds[float64, Vec])
	_, _, ok := geom.RayBounds(ray, world)
	require.True(t, ok)

	_, ok = s.Pick(ray)
	assert.False(t, ok)
}

func TestFrustum_Identity(t *testing.T) {
	// Одинична матриця - це куб [-1, 1]³
	f := NewFrustum(mgl64.Ident4())
	for _, p := range f {
		require.NoError(t, p.Validate())
	}
	assert.True(t, f.Contains(Vec{0, 0, 0}))
	assert.True(t, f.Contains(Vec{1, 1, 1}))
	assert.False(t, f.Contains(Vec{2, 0, 0}))
	assert.True(t, f.Contains(geom.Radial[float64, Vec]{Center: Vec{1.5, 0, 0}, Radius: 1}))
	assert.False(t, f.Contains(geom.Radial[float64, Vec]{Center: Vec{3, 0, 0}, Radius: 1}))
	assert.True(t, f.Contains(geom.Bounds[float64, Vec]{Min: Vec{0.5, 0.5, 0.5}, Max: Vec{4, 4, 4}}))
	assert.False(t, f.Contains(geom.Bounds[float64, Vec]{Min: Vec{0, 0, 2}, Max: Vec{1, 1, 3}}))
	assert.True(t, f.Contains(geom.NewSimplex[float64](Vec{0, 0, 0}, Vec{5, 0, 0}, Vec{0, 5, 0})))
	assert.False(t, f.Contains(geom.NewSimplex[float64](Vec{0, 0, 2}, Vec{5, 0, 2}, Vec{0, 5, 2})))
	assert.True(t, f.Contains(geom.NewHyperplane[float64](Vec{0, 0, 50}, Vec{0, 0, 1})))
}

func TestScene_Visible(t *testing.T) {
	s := newTestScene(t,
		box("front", [3]float64{}, [3]float64{}),
		ObjectConfig{Name: "behind", Kind: "radial", Radius: 1, Translate: [3]float64{0, 0, 20}},
		box("side", [3]float64{100, 0, 0}, [3]float64{}),
		box("far", [3]float64{0, 0, -200}, [3]float64{}),
		ObjectConfig{Name: "floor", Kind: "hyperplane", Normal: [3]float64{0, 1, 0}, Translate: [3]float64{0, -2, 0}},
	)

	var names []string
	for _, e := range s.Visible() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"front", "floor"}, names)
}

func TestScene_Query(t *testing.T) {
	s := newTestScene(t,
		box("a", [3]float64{}, [3]float64{}),
		box("b", [3]float64{3, 0, 0}, [3]float64{}),
		ObjectConfig{Name: "floor", Kind: "hyperplane", Normal: [3]float64{0, 1, 0}, Translate: [3]float64{0, -5, 0}},
	)

	got := s.Query(geom.Radial[float64, Vec]{Center: Vec{1.5, 0, 0}, Radius: 0.6})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)

	got = s.Query(Vec{3, 0.5, 0})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)

	// Площина з площиною не має тесту і просто пропускається
	got = s.Query(geom.NewHyperplane[float64](Vec{}, Vec{1, 0, 0}))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func BenchmarkScene_Pick(b *testing.B) {
	var objects []ObjectConfig
	for i := 0; i < 64; i++ {
		objects = append(objects, box(
			fmt.Sprintf("box-%d", i),
			[3]float64{float64(i%8) * 3, float64(i/8) * 3, 0},
			[3]float64{0, float64(i) * 5, 0},
		))
	}
	s, err := New(zap.NewNop(), Config{Camera: testCamera(), Objects: objects})
	require.NoError(b, err)
	ray := Ray{Origin: Vec{10.5, 10.5, 10}, Direction: Vec{0, 0, -1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Pick(ray)
	}
}

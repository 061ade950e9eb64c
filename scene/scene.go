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

// Йоу, чат! Це сцена - набір об'єктів з конфігу, камера і запити до них.
// Сцена незмінна після New, тому її можна читати з кількох горутин.

package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"FlowyGeom/geom"
)

var (
	ErrUnknownKind   = errors.New("unknown object kind")
	ErrDuplicateName = errors.New("duplicate object name")
)

// Entity - об'єкт сцени
type Entity struct {
	ID   uuid.UUID
	Name string

	// Shape - фігура в локальних координатах об'єкта
	Shape geom.Shape
	// Model переводить з локальних координат у світові
	Model mgl64.Mat4
	// World - та сама фігура у світових координатах.
	// Для bounds це AABB навколо повернутої коробки.
	World geom.Shape

	inverse mgl64.Mat4
}

// Scene - всі об'єкти і камера
type Scene struct {
	log      *zap.Logger
	camera   Camera
	entities []Entity
}

func New(log *zap.Logger, cfg Config) (*Scene, error) {
	camera, err := NewCamera(cfg.Camera)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		log:      log.Named("scene"),
		camera:   camera,
		entities: make([]Entity, 0, len(cfg.Objects)),
	}
	names := make(map[string]struct{}, len(cfg.Objects))
	for i, obj := range cfg.Objects {
		e, err := newEntity(i, obj)
		if err != nil {
			return nil, err
		}
		if _, ok := names[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		names[e.Name] = struct{}{}
		s.log.Debug("Object loaded",
			zap.Stringer("id", e.ID),
			zap.String("name", e.Name),
			zap.Stringer("kind", e.Shape.Kind()),
		)
		s.entities = append(s.entities, e)
	}
	s.log.Info("Scene loaded", zap.Int("objects", len(s.entities)))
	return s, nil
}

func (s *Scene) Camera() Camera { return s.camera }

// Entities повертає копію списку об'єктів
func (s *Scene) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

// Lookup шукає об'єкт за ID
func (s *Scene) Lookup(id uuid.UUID) (Entity, bool) {
	for _, e := range s.entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// EntityID - ID об'єкта за його ім'ям. Однакове ім'я завжди дає однаковий ID.
func EntityID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

func newEntity(i int, obj ObjectConfig) (Entity, error) {
	name := obj.Name
	if name == "" {
		name = fmt.Sprintf("%s-%d", obj.Kind, i)
	}
	shape, err := objectShape(obj)
	if err != nil {
		return Entity{}, fmt.Errorf("object %q: %w", name, err)
	}

	rx, ry, rz := mgl64.DegToRad(obj.Rotate[0]), mgl64.DegToRad(obj.Rotate[1]), mgl64.DegToRad(obj.Rotate[2])
	model := mgl64.Translate3D(obj.Translate[0], obj.Translate[1], obj.Translate[2]).
		Mul4(mgl64.HomogRotate3DZ(rz)).
		Mul4(mgl64.HomogRotate3DY(ry)).
		Mul4(mgl64.HomogRotate3DX(rx))

	return Entity{
		ID:      EntityID(name),
		Name:    name,
		Shape:   shape,
		Model:   model,
		World:   transformShape(shape, geom.Mat4(model)),
		inverse: model.Inv(),
	}, nil
}

// objectShape будує фігуру з конфігу і одразу перевіряє її інваріанти
func objectShape(obj ObjectConfig) (geom.Shape, error) {
	switch obj.Kind {
	case geom.KindBounds.String():
		b := geom.Bounds[float64, Vec]{Min: obj.Min, Max: obj.Max}
		return b, b.Validate()
	case geom.KindRadial.String():
		r := geom.Radial[float64, Vec]{Center: obj.Center, Radius: obj.Radius}
		return r, r.Validate()
	case geom.KindHyperplane.String():
		if geom.Length[float64](Vec(obj.Normal)) == 0 {
			return nil, geom.ErrNonUnitNormal
		}
		h := geom.NewHyperplane[float64](Vec(obj.Origin), Vec(obj.Normal))
		return h, h.Validate()
	case geom.KindSimplex.String():
		if len(obj.Points) == 0 {
			return nil, fmt.Errorf("%w: no points", geom.ErrDegenerateSimplex)
		}
		points := make([]Vec, len(obj.Points))
		for i, p := range obj.Points {
			points[i] = p
		}
		s := geom.NewSimplex[float64](points...)
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.Len() < points[0].Dim() {
			return nil, fmt.Errorf("simplex needs %d or %d points, got %d", points[0].Dim(), points[0].Dim()+1, s.Len())
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, obj.Kind)
}

func transformShape(shape geom.Shape, m geom.Transform[Vec]) geom.Shape {
	switch s := shape.(type) {
	case geom.Bounds[float64, Vec]:
		return s.Transform(m)
	case geom.Radial[float64, Vec]:
		return s.Transform(m)
	case geom.Hyperplane[float64, Vec]:
		return s.Transform(m)
	case geom.Simplex[float64, Vec]:
		return s.Transform(m)
	}
	return shape
}

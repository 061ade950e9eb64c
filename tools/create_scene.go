package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"FlowyGeom/scene"
)

var (
	output = flag.String("o", "config.toml", "Where to write the scene")
	grid   = flag.Int("grid", 3, "Crates per row")
)

func main() {
	flag.Parse()

	// Камера дивиться на центр сітки згори під кутом
	cfg := scene.Config{
		Camera: scene.CameraConfig{
			Eye:    [3]float64{0, 8, 16},
			Target: [3]float64{0, 0, 0},
			Up:     [3]float64{0, 1, 0},
			FOV:    60,
			Near:   0.1,
			Far:    100,
			Width:  1280,
			Height: 720,
		},
		PickLimiter: scene.Every(16*time.Millisecond, 1),
	}

	// Підлога
	cfg.Objects = append(cfg.Objects, scene.ObjectConfig{
		Name:      "floor",
		Kind:      "hyperplane",
		Normal:    [3]float64{0, 1, 0},
		Translate: [3]float64{0, -1, 0},
	})

	// Сітка ящиків, кожен повернутий трохи сильніше за попередній
	n := *grid
	for i := 0; i < n*n; i++ {
		x, z := i%n, i/n
		cfg.Objects = append(cfg.Objects, scene.ObjectConfig{
			Name:      fmt.Sprintf("crate-%d-%d", x, z),
			Kind:      "bounds",
			Min:       [3]float64{-0.5, -0.5, -0.5},
			Max:       [3]float64{0.5, 0.5, 0.5},
			Translate: [3]float64{float64(x-n/2) * 3, 0, float64(z-n/2) * 3},
			Rotate:    [3]float64{0, float64(i) * 15, 0},
		})
	}

	cfg.Objects = append(cfg.Objects,
		scene.ObjectConfig{
			Name:      "ball",
			Kind:      "radial",
			Radius:    1,
			Translate: [3]float64{0, 2, -6},
		},
		scene.ObjectConfig{
			Name:      "ramp",
			Kind:      "simplex",
			Points:    [][3]float64{{0, 0, 0}, {2, 0, 0}, {0, 0, -2}, {0, 1.5, 0}},
			Translate: [3]float64{5, -1, 4},
		},
	)

	// Центр екрану і кути
	for _, p := range [][2]float64{{640, 360}, {320, 540}, {960, 540}, {10, 10}} {
		cfg.Picks = append(cfg.Picks, scene.PickConfig{X: p[0], Y: p[1]})
	}

	f, err := os.Create(*output)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		panic(err)
	}
}

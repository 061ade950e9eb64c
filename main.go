// Йоу, чат! Сьогодні ми будемо розбирати як зібрати сцену і пікати об'єкти мишкою!
// Це ліцензія AGPL - означає що наш код має бути відкритим, і всі модифікації теж.
// Це важливо для спільноти, щоб всі могли вчитися і покращувати код!

// Пакет main - це точка входу нашої програми, звідси все починається!
package main

import (
	// context потрібен щоб зупиняти пікінг по Ctrl+C
	"context"
	// flag - це пакет для роботи з командним рядком, будемо використовувати для налаштувань
	"flag"
	// os і signal - щоб зловити сигнал переривання
	"os"
	"os/signal"
	// debug дозволяє отримати інформацію про збірку програми
	"runtime/debug"
	// strings потрібен для роботи з текстом, будемо використовувати для форматування помилок
	"strings"

	// toml - крутий формат для конфігів, як JSON але читабельніший
	"github.com/BurntSushi/toml"
	// zap - мегашвидкий логер, набагато швидший за fmt.Printf
	"go.uber.org/zap"

	// Наша сцена - камера, об'єкти, пікінг і відсікання
	"FlowyGeom/scene"
)

// isDebug - флаг який можна включити при запуску через -debug
// В дебаг режимі буде більше логів і інформації для розробки
var isDebug = flag.Bool("debug", false, "Enable debug log output")

// configPath - звідки читати сцену
var configPath = flag.String("config", "config.toml", "Path to the scene config")

func main() {
	// Парсимо командний рядок - шукаємо наші флаги
	flag.Parse()

	// Створюємо логер - він буде записувати все що відбувається
	// В дебаг режимі логи будуть детальніші, але повільніші
	var logger *zap.Logger
	if *isDebug {
		logger = unwrap(zap.NewDevelopment())
	} else {
		logger = unwrap(zap.NewProduction())
	}

	// Коли main закінчиться - скидаємо буфер логів
	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			panic(err)
		}
	}(logger)

	logger.Info("FlowyGeom start")
	printBuildInfo(logger)
	defer logger.Info("FlowyGeom exit")

	// Читаємо сцену з файлу - камера, об'єкти і точки для пікінгу
	config, err := readConfig(*configPath)
	if err != nil {
		logger.Error("Read config fail", zap.Error(err))
		return
	}

	// Будуємо сцену. Тут же перевіряються всі фігури з конфігу,
	// тому кривий AABB чи нульова нормаль зупинять нас одразу
	s, err := scene.New(logger, config)
	if err != nil {
		logger.Error("Build scene fail", zap.Error(err))
		return
	}

	// Що бачить камера
	for _, e := range s.Visible() {
		logger.Info("Visible",
			zap.Stringer("id", e.ID),
			zap.String("name", e.Name),
			zap.Stringer("kind", e.Shape.Kind()),
		)
	}

	// Ctrl+C перериває чергу пікінгу
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Пікаємо не частіше ніж дозволяє pick-limiter, як гра раз на кадр
	limiter := config.PickLimiter.Limiter()
	for _, p := range config.Picks {
		if err := limiter.Wait(ctx); err != nil {
			logger.Warn("Pick loop stopped", zap.Error(err))
			return
		}
		hit, ok, err := s.PickScreen(p.X, p.Y)
		if err != nil {
			logger.Error("Pick fail", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Error(err))
			continue
		}
		if !ok {
			logger.Info("Pick missed", zap.Float64("x", p.X), zap.Float64("y", p.Y))
			continue
		}
		logger.Info("Pick hit",
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Stringer("id", hit.Entity.ID),
			zap.String("name", hit.Entity.Name),
			zap.Float64("t", hit.T),
			zap.Float64s("point", hit.Point[:]),
		)
	}
}

// printBuildInfo виводить інформацію про збірку
// Це допомагає знайти проблеми з версіями бібліотек
func printBuildInfo(logger *zap.Logger) {
	binaryInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	settings := make(map[string]string)
	for _, v := range binaryInfo.Settings {
		settings[v.Key] = v.Value
	}
	logger.Debug("Build info", zap.Any("settings", settings))
}

// readConfig читає конфіг з файлу
// Якщо знайдемо невідомі налаштування - повернемо помилку
func readConfig(path string) (scene.Config, error) {
	var c scene.Config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return scene.Config{}, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err errUnknownConfig
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return scene.Config{}, err
	}

	return c, nil
}

// errUnknownConfig - це список невідомих налаштувань
// Коли знаходимо щось чого не очікували в конфігу
type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

// unwrap - хелпер функція яка спрощує обробку помилок
// Якщо є помилка - відразу панікуємо
func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

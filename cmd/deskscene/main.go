package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"runtime"
	"time"

	"deskscene/internal/config"
	"deskscene/internal/graphics/renderables/desk"
	renderer "deskscene/internal/graphics/renderer"
	"deskscene/internal/input"
	"deskscene/internal/scene"
	"deskscene/internal/timing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "deskscene.yaml", "path to the settings file")
		scenePath  = flag.String("scene", "", "scene description file (default: built-in desk)")
		logLevel   = flag.String("log-level", "", "log level: debug | info | warn | error")
		writeCfg   = flag.Bool("write-config", false, "write the effective settings to -config and exit")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	settings := loadSettings(*configPath)
	if *scenePath != "" {
		settings.ScenePath = *scenePath
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	setLogLevel(settings.LogLevel)

	if *writeCfg {
		if err := config.Save(*configPath, settings); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("write settings")
		}
		log.Info().Str("path", *configPath).Msg("settings written")
		return
	}

	desc, err := scene.Load(settings.ScenePath)
	if err != nil {
		log.Fatal().Err(err).Msg("load scene")
	}
	log.Info().
		Int("objects", len(desc.Objects)).
		Int("textures", len(desc.Textures)).
		Int("materials", len(desc.Materials)).
		Msg("scene description loaded")

	if err := run(settings, desc); err != nil {
		log.Fatal().Err(err).Msg("desk scene")
	}
}

func run(settings *config.Settings, desc *scene.Description) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	fbWidth, fbHeight := window.GetFramebufferSize()
	view := newView(settings, fbWidth, fbHeight)

	r, err := renderer.NewRenderer(view, desk.New(desc, settings.ShaderDir))
	if err != nil {
		return err
	}
	defer r.Dispose()
	r.UpdateViewport(fbWidth, fbHeight)

	state := input.NewState()
	loop := NewRenderLoop(window, r, view, state, timing.NewFPSLimiter(settings.FPSLimit))
	setupInputHandlers(window, loop, r, view, state, input.DefaultBindings())

	loop.Run()
	log.Info().Msg("window closed")
	return nil
}

// loadSettings falls back to the defaults when the file does not exist.
func loadSettings(path string) *config.Settings {
	s, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("settings file not found, using defaults")
		return config.Default()
	}
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("load settings")
	}
	return s
}

func setLogLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		log.Warn().Str("level", name).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

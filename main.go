package main

import (
	"embed"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v3/pkg/application"

	"swatch/internal/annotations"
	"swatch/internal/config"
	"swatch/internal/db"
	"swatch/internal/decorator"
	"swatch/internal/dialog"
	"swatch/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func init() {
	application.RegisterEvent[decorator.State](decorator.EventStateChanged)
	application.RegisterEvent[string](decorator.EventDeleted)
	application.RegisterEvent[dialog.State](dialog.EventStateChanged)
	application.RegisterEvent[annotations.Reload](annotations.EventReloaded)
}

func main() {
	paths, err := config.ResolvePaths("swatch")
	if err != nil {
		panic(err)
	}

	logFile, err := logging.Init(paths.LogPath, zerolog.InfoLevel)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	logger := logging.For("app")

	sqliteDB, err := db.Bootstrap(paths.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", paths.DBPath).Msg("open database")
	}
	defer sqliteDB.Close()

	scaleDomain := decorator.NewService(sqliteDB)
	dialogDomain := dialog.NewManager()
	sourceRegistry := annotations.NewRegistry(sqliteDB, annotations.DefaultDebounce)
	defer sourceRegistry.Close()

	colorScaleService := NewColorScaleService(scaleDomain, dialogDomain, sourceRegistry)
	dialogService := NewDialogService(dialogDomain, scaleDomain)
	presetService := NewPresetService(scaleDomain, paths.PresetDir)
	legendService := NewLegendService(scaleDomain, paths.LegendDir)
	annotationService := NewAnnotationService(sourceRegistry, scaleDomain)
	bootstrapService := NewBootstrapService(scaleDomain, sourceRegistry, presetService)

	assetMux := http.NewServeMux()
	assetMux.Handle("/legend.png", legendService)
	assetMux.Handle("/", application.AssetFileServerFS(assets))

	app := application.New(application.Options{
		Name:        "Swatch",
		Description: "Discrete colour scale editor",
		Services: []application.Service{
			application.NewService(bootstrapService),
			application.NewService(colorScaleService),
			application.NewService(dialogService),
			application.NewService(presetService),
			application.NewService(legendService),
			application.NewService(annotationService),
		},
		Assets: application.AssetOptions{
			Handler: assetMux,
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
	})

	emit := func(eventName string, payload any) {
		app.Event.Emit(eventName, payload)
	}
	scaleDomain.SetEmitter(emit)
	dialogDomain.SetEmitter(emit)
	annotationService.SetEmitter(emit)

	if err := sourceRegistry.StartAll(); err != nil {
		logger.Warn().Err(err).Msg("annotation watchers disabled")
	}

	app.Window.NewWithOptions(application.WebviewWindowOptions{
		Title: "Swatch",
		Mac: application.MacWindow{
			InvisibleTitleBarHeight: 50,
			Backdrop:                application.MacBackdropTranslucent,
			TitleBar:                application.MacTitleBarHiddenInset,
		},
		BackgroundColour: application.NewRGB(12, 18, 24),
		URL:              "/",
	})

	if err := app.Run(); err != nil {
		logger.Fatal().Err(err).Msg("run application")
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Paths struct {
	BaseDir   string
	DBPath    string
	PresetDir string
	LegendDir string
	LogPath   string
}

func ResolvePaths(appSlug string) (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve user config dir: %w", err)
	}

	return PathsUnder(filepath.Join(configDir, appSlug))
}

// PathsUnder lays the application files out below baseDir and creates the
// directories.
func PathsUnder(baseDir string) (Paths, error) {
	paths := Paths{
		BaseDir:   baseDir,
		DBPath:    filepath.Join(baseDir, "scales.db"),
		PresetDir: filepath.Join(baseDir, "presets"),
		LegendDir: filepath.Join(baseDir, "legends"),
		LogPath:   filepath.Join(baseDir, "logs", "swatch.log"),
	}

	for _, dir := range []string{paths.BaseDir, paths.PresetDir, paths.LegendDir, filepath.Dir(paths.LogPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("create app dir %s: %w", dir, err)
		}
	}

	return paths, nil
}

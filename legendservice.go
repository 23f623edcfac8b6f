package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"swatch/internal/decorator"
	"swatch/internal/legend"
)

type LegendService struct {
	scales    *decorator.Service
	legendDir string
}

func NewLegendService(scales *decorator.Service, legendDir string) *LegendService {
	return &LegendService{scales: scales, legendDir: strings.TrimSpace(legendDir)}
}

// ExportLegend renders the colour scale at key to a PNG in the legend
// directory and returns the path written.
func (s *LegendService) ExportLegend(key string, name string, title string) (string, error) {
	encoded, state, err := s.render(key, title)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = state.Key
	}
	if filepath.Ext(name) != ".png" {
		name += ".png"
	}
	path := filepath.Join(s.legendDir, filepath.Base(name))

	if err := os.MkdirAll(s.legendDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// ServeHTTP serves a live legend preview for ?key=<scale>.
func (s *LegendService) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		rw.Header().Set("Allow", "GET, HEAD")
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimSpace(req.URL.Query().Get("key"))
	if key == "" {
		http.Error(rw, "missing colour scale key", http.StatusBadRequest)
		return
	}

	encoded, _, err := s.render(key, req.URL.Query().Get("title"))
	if err != nil {
		http.Error(rw, "colour scale not found", http.StatusNotFound)
		return
	}

	rw.Header().Set("Content-Type", "image/png")
	rw.Header().Set("Cache-Control", "no-store")
	if req.Method == http.MethodHead {
		return
	}
	_, _ = rw.Write(encoded)
}

func (s *LegendService) render(key string, title string) ([]byte, decorator.State, error) {
	state, err := s.scales.Get(key)
	if err != nil {
		return nil, decorator.State{}, err
	}

	options := legend.DefaultOptions()
	options.Title = strings.TrimSpace(title)
	if options.Title == "" {
		options.Title = state.Attribute
	}

	var buffer bytes.Buffer
	if err := legend.WritePNG(&buffer, legend.Render(state.Swatches, options)); err != nil {
		return nil, decorator.State{}, err
	}

	return buffer.Bytes(), state, nil
}

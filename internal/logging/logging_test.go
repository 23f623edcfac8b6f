package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitWritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "swatch.log")

	closer, err := Init(logPath, zerolog.InfoLevel)
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	logger := For("decorator")
	logger.Info().Str("key", "tips:host").Msg("scale applied")
	logger.Debug().Msg("filtered out")

	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	body, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	contents := string(body)
	if !strings.Contains(contents, `"module":"decorator"`) || !strings.Contains(contents, "scale applied") {
		t.Fatalf("expected module entry in log, got %q", contents)
	}
	if strings.Contains(contents, "filtered out") {
		t.Fatalf("expected debug entry to be filtered, got %q", contents)
	}
}

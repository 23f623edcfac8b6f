package annotations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestWatcherReloadsAfterWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "traits.tsv")
	writeAnnotations(t, path, "taxon\thost\nA\thuman\n")

	reloads := make(chan []string, 4)
	watcher, err := Watch(path, "host", 20*time.Millisecond, func(values []string, err error) {
		if err != nil {
			t.Errorf("reload: %v", err)
			return
		}
		reloads <- values
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer watcher.Close()

	writeAnnotations(t, path, "taxon\thost\nA\thuman\nB\tbat\n")

	select {
	case values := <-reloads:
		if !reflect.DeepEqual(values, []string{"human", "bat"}) {
			t.Fatalf("unexpected reloaded values %v", values)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestRegistryAttachPersistsSource(t *testing.T) {
	t.Parallel()

	database := newDatabaseForTest(t)
	defer database.Close()

	path := filepath.Join(t.TempDir(), "traits.tsv")
	writeAnnotations(t, path, "taxon\thost\nA\thuman\nB\tpig\n")

	registry := NewRegistry(database, 20*time.Millisecond)
	defer registry.Close()

	source, values, err := registry.Attach("tips:host", path, "host")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if source.Path != path || !reflect.DeepEqual(values, []string{"human", "pig"}) {
		t.Fatalf("unexpected attach result %+v %v", source, values)
	}

	stored, err := NewSourceRepository(database).List(t.Context())
	if err != nil {
		t.Fatalf("list sources: %v", err)
	}
	if len(stored) != 1 || stored[0].Key != "tips:host" || stored[0].Attribute != "host" {
		t.Fatalf("unexpected stored sources %+v", stored)
	}

	if err := registry.Detach("tips:host"); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if err := registry.Detach("tips:host"); err == nil {
		t.Fatal("expected second detach to fail")
	}
}

func writeAnnotations(t *testing.T, path string, body string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write annotations: %v", err)
	}
}

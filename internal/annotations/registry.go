package annotations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"swatch/internal/logging"
)

const EventReloaded = "annotations:reloaded"

var ErrSourceNotFound = errors.New("annotation source not found")

// Source binds a colour scale to the annotation file column feeding it.
type Source struct {
	Key       string `json:"key"`
	Path      string `json:"path"`
	Attribute string `json:"attribute"`
	CreatedAt string `json:"createdAt"`
}

type Reload struct {
	Key       string   `json:"key"`
	Path      string   `json:"path"`
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
	Error     string   `json:"error,omitempty"`
	At        string   `json:"at"`
}

type ReloadHandler func(reload Reload)

type SourceRepository struct {
	db *sql.DB
}

func NewSourceRepository(database *sql.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

func (r *SourceRepository) List(ctx context.Context) ([]Source, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT scale_key, path, attribute, created_at FROM annotation_sources ORDER BY scale_key",
	)
	if err != nil {
		return nil, fmt.Errorf("list annotation sources: %w", err)
	}
	defer rows.Close()

	sources := make([]Source, 0)
	for rows.Next() {
		var source Source
		if err := rows.Scan(&source.Key, &source.Path, &source.Attribute, &source.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan annotation source row: %w", err)
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate annotation source rows: %w", err)
	}

	return sources, nil
}

func (r *SourceRepository) Put(ctx context.Context, source Source) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO annotation_sources(scale_key, path, attribute)
		VALUES (?, ?, ?)
		ON CONFLICT(scale_key) DO UPDATE SET
			path = excluded.path,
			attribute = excluded.attribute
	`, source.Key, source.Path, source.Attribute); err != nil {
		return fmt.Errorf("store annotation source %s: %w", source.Key, err)
	}

	return nil
}

func (r *SourceRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM annotation_sources WHERE scale_key = ?", key)
	if err != nil {
		return fmt.Errorf("delete annotation source %s: %w", key, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted annotation source count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSourceNotFound
	}

	return nil
}

// Registry keeps one watcher per colour scale that is fed from a file.
type Registry struct {
	mu       sync.Mutex
	repo     *SourceRepository
	watchers map[string]*Watcher
	sources  map[string]Source
	onReload ReloadHandler
	delay    time.Duration
	logger   zerolog.Logger
}

func NewRegistry(database *sql.DB, delay time.Duration) *Registry {
	registry := &Registry{
		watchers: make(map[string]*Watcher),
		sources:  make(map[string]Source),
		delay:    delay,
		logger:   logging.For("annotations"),
	}
	if database != nil {
		registry.repo = NewSourceRepository(database)
	}

	return registry
}

func (r *Registry) SetOnReload(handler ReloadHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReload = handler
}

// Attach reads the attribute column once, remembers the binding and starts
// watching the file. The initial values are returned to the caller.
func (r *Registry) Attach(key string, path string, attribute string) (Source, []string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Source{}, nil, errors.New("colour scale key is required")
	}

	absPath, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return Source{}, nil, fmt.Errorf("resolve annotation path: %w", err)
	}

	values, err := ReadFile(absPath, attribute)
	if err != nil {
		return Source{}, nil, err
	}

	source := Source{
		Key:       key,
		Path:      absPath,
		Attribute: strings.TrimSpace(attribute),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if r.repo != nil {
		if err := r.repo.Put(context.Background(), source); err != nil {
			return Source{}, nil, err
		}
	}

	if err := r.start(source); err != nil {
		return Source{}, nil, err
	}

	return source, values, nil
}

func (r *Registry) Detach(key string) error {
	r.mu.Lock()
	watcher, watching := r.watchers[key]
	delete(r.watchers, key)
	_, known := r.sources[key]
	delete(r.sources, key)
	r.mu.Unlock()

	if watching {
		if err := watcher.Close(); err != nil {
			r.logger.Warn().Err(err).Str("key", key).Msg("close annotation watcher")
		}
	}

	if r.repo != nil {
		err := r.repo.Delete(context.Background(), key)
		if errors.Is(err, ErrSourceNotFound) && known {
			return nil
		}
		return err
	}

	if !known {
		return ErrSourceNotFound
	}
	return nil
}

func (r *Registry) Sources() []Source {
	r.mu.Lock()
	defer r.mu.Unlock()

	sources := make([]Source, 0, len(r.sources))
	for _, source := range r.sources {
		sources = append(sources, source)
	}

	return sources
}

// StartAll resumes watching every stored source. Sources whose file cannot
// be watched are logged and skipped.
func (r *Registry) StartAll() error {
	if r.repo == nil {
		return nil
	}

	sources, err := r.repo.List(context.Background())
	if err != nil {
		return err
	}

	for _, source := range sources {
		if err := r.start(source); err != nil {
			r.logger.Warn().Err(err).Str("key", source.Key).Str("path", source.Path).Msg("annotation source not watched")
		}
	}

	return nil
}

func (r *Registry) Close() {
	r.mu.Lock()
	watchers := r.watchers
	r.watchers = make(map[string]*Watcher)
	r.mu.Unlock()

	for key, watcher := range watchers {
		if err := watcher.Close(); err != nil {
			r.logger.Warn().Err(err).Str("key", key).Msg("close annotation watcher")
		}
	}
}

func (r *Registry) start(source Source) error {
	watcher, err := Watch(source.Path, source.Attribute, r.delay, func(values []string, err error) {
		r.dispatch(source, values, err)
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	previous := r.watchers[source.Key]
	r.watchers[source.Key] = watcher
	r.sources[source.Key] = source
	r.mu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			r.logger.Warn().Err(err).Str("key", source.Key).Msg("close replaced annotation watcher")
		}
	}

	return nil
}

func (r *Registry) dispatch(source Source, values []string, err error) {
	reload := Reload{
		Key:       source.Key,
		Path:      source.Path,
		Attribute: source.Attribute,
		Values:    values,
		At:        time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		reload.Error = err.Error()
		r.logger.Warn().Err(err).Str("key", source.Key).Msg("annotation reload failed")
	}

	r.mu.Lock()
	handler := r.onReload
	r.mu.Unlock()

	if handler != nil {
		handler(reload)
	}
}

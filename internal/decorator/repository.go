package decorator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"swatch/internal/hsb"
	"swatch/internal/scale"
)

var ErrDecoratorNotFound = errors.New("colour scale not found")

// Record is the persisted form of a decorator: configuration and order only.
type Record struct {
	Key       string
	Attribute string
	Config    scale.Config
	Values    []string
	UpdatedAt time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT scale_key, attribute, primary_axis, secondary_count,
			hue_lower, hue_upper, saturation_lower, saturation_upper,
			brightness_lower, brightness_upper, updated_at
		FROM colour_scales
		ORDER BY scale_key
	`)
	if err != nil {
		return nil, fmt.Errorf("list colour scales: %w", err)
	}

	records := make([]Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate colour scale rows: %w", err)
	}
	rows.Close()

	for index := range records {
		values, err := r.listValues(ctx, records[index].Key)
		if err != nil {
			return nil, err
		}
		records[index].Values = values
	}

	return records, nil
}

func (r *Repository) Get(ctx context.Context, key string) (Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT scale_key, attribute, primary_axis, secondary_count,
			hue_lower, hue_upper, saturation_lower, saturation_upper,
			brightness_lower, brightness_upper, updated_at
		FROM colour_scales
		WHERE scale_key = ?
	`, key)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrDecoratorNotFound
		}
		return Record{}, err
	}

	values, err := r.listValues(ctx, key)
	if err != nil {
		return Record{}, err
	}
	record.Values = values

	return record, nil
}

// Save replaces the stored configuration and value order of record.Key.
func (r *Repository) Save(ctx context.Context, record Record) error {
	if strings.TrimSpace(record.Key) == "" {
		return errors.New("colour scale key is required")
	}

	config := record.Config.Normalized()
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start save tx %s: %w", record.Key, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO colour_scales(
			scale_key, attribute, primary_axis, secondary_count,
			hue_lower, hue_upper, saturation_lower, saturation_upper,
			brightness_lower, brightness_upper, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(scale_key) DO UPDATE SET
			attribute = excluded.attribute,
			primary_axis = excluded.primary_axis,
			secondary_count = excluded.secondary_count,
			hue_lower = excluded.hue_lower,
			hue_upper = excluded.hue_upper,
			saturation_lower = excluded.saturation_lower,
			saturation_upper = excluded.saturation_upper,
			brightness_lower = excluded.brightness_lower,
			brightness_upper = excluded.brightness_upper,
			updated_at = excluded.updated_at
	`,
		record.Key,
		record.Attribute,
		string(config.PrimaryAxis),
		config.SecondaryCount,
		config.Hue.Lower,
		config.Hue.Upper,
		config.Saturation.Lower,
		config.Saturation.Upper,
		config.Brightness.Lower,
		config.Brightness.Upper,
		updatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("upsert colour scale %s: %w", record.Key, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM colour_scale_values WHERE scale_key = ?", record.Key); err != nil {
		return fmt.Errorf("clear colour scale values %s: %w", record.Key, err)
	}

	for position, value := range record.Values {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO colour_scale_values(scale_key, position, value) VALUES (?, ?, ?)",
			record.Key,
			position,
			value,
		); err != nil {
			return fmt.Errorf("insert colour scale value %s[%d]: %w", record.Key, position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit colour scale %s: %w", record.Key, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start delete tx %s: %w", key, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM colour_scale_values WHERE scale_key = ?", key); err != nil {
		return fmt.Errorf("delete colour scale values %s: %w", key, err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM colour_scales WHERE scale_key = ?", key)
	if err != nil {
		return fmt.Errorf("delete colour scale %s: %w", key, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted colour scale count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrDecoratorNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %s: %w", key, err)
	}

	return nil
}

func (r *Repository) listValues(ctx context.Context, key string) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT value FROM colour_scale_values WHERE scale_key = ? ORDER BY position ASC",
		key,
	)
	if err != nil {
		return nil, fmt.Errorf("list colour scale values %s: %w", key, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan colour scale value %s: %w", key, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate colour scale values %s: %w", key, err)
	}

	return values, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		record      Record
		primaryAxis string
		updatedAt   string
	)
	if err := row.Scan(
		&record.Key,
		&record.Attribute,
		&primaryAxis,
		&record.Config.SecondaryCount,
		&record.Config.Hue.Lower,
		&record.Config.Hue.Upper,
		&record.Config.Saturation.Lower,
		&record.Config.Saturation.Upper,
		&record.Config.Brightness.Lower,
		&record.Config.Brightness.Upper,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan colour scale row: %w", err)
	}

	if axis, err := hsb.ParseAxis(primaryAxis); err == nil {
		record.Config.PrimaryAxis = axis
	}
	record.Config = record.Config.Normalized()

	if parsed, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		record.UpdatedAt = parsed.UTC()
	}

	return record, nil
}

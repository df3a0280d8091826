// Package uicopy хранит правки подписей интерфейса поверх встроенных значений по умолчанию.
//
// В базе это одна строка ui_copy (id = 1) с JSON-объектом. Чтение склеивает умолчания
// с сохранённым объектом, запись всегда заменяет объект целиком.
package uicopy

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Copy — действующие подписи: ключ -> текст. В шаблонах: {{.UI.brand_mark}}.
type Copy map[string]string

// Get возвращает текст по ключу.
func (c Copy) Get(k Key) string { return c[string(k)] }

// Entry — строка формы в админке.
type Entry struct {
	Key     Key
	Default string
	Value   string
}

// Entries раскладывает действующие подписи по порядку известных ключей.
func (c Copy) Entries() []Entry {
	out := make([]Entry, 0, len(defaults))
	for _, e := range defaults {
		out = append(out, Entry{Key: e.key, Default: e.def, Value: c.Get(e.key)})
	}
	return out
}

// Store читает и пишет строку ui_copy.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewStore(db *sqlx.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{db: db, logger: logger}
}

// load — сырое содержимое строки; ok=false, если строки ещё нет.
func (s *Store) load(ctx context.Context) (data string, ok bool, err error) {
	err = s.db.GetContext(ctx, &data, `SELECT data FROM ui_copy ORDER BY id LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("uicopy: load: %w", err)
	}
	return data, true, nil
}

// Effective — умолчания, поверх которых лежат сохранённые значения.
// Ключи из старых данных, которых нет среди умолчаний, тоже попадают в результат.
// Битый JSON считается пустым объектом. Чтение никогда ничего не пишет.
func (s *Store) Effective(ctx context.Context) (Copy, error) {
	out := Defaults()

	data, ok, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || data == "" {
		return out, nil
	}

	var overlay map[string]string
	if err := json.Unmarshal([]byte(data), &overlay); err != nil {
		s.logger.Warn("uicopy: stored overlay is not a string map, using defaults", "err", err)
		return out, nil
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out, nil
}

// Save заменяет сохранённый объект целиком: каждый известный ключ берётся из payload,
// отсутствующий становится пустой строкой, неизвестные отбрасываются.
func (s *Store) Save(ctx context.Context, payload map[string]string) error {
	filtered := make(map[string]string, len(defaults))
	for _, e := range defaults {
		filtered[string(e.key)] = payload[string(e.key)]
	}

	data, err := encode(filtered)
	if err != nil {
		return err
	}
	query := s.db.Rebind(`INSERT INTO ui_copy (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`)
	if _, err := s.db.ExecContext(ctx, query, data); err != nil {
		return fmt.Errorf("uicopy: save: %w", err)
	}
	return nil
}

// Initialized — есть ли уже строка ui_copy.
func (s *Store) Initialized(ctx context.Context) (bool, error) {
	_, ok, err := s.load(ctx)
	return ok, err
}

// encode пишет UTF-8 как есть: без \uXXXX и без экранирования <>&.
func encode(m map[string]string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("uicopy: encode: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate — нарушено уникальное ограничение (логин админа).
	ErrDuplicate = errors.New("already exists")
)

// Драйверы database/sql, которые мы умеем открывать.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store — доступ к контентным таблицам сайта.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open разбирает DATABASE_URL, открывает пул и проверяет соединение.
//
//	postgres://... | postgresql://... | "host=... dbname=..."  -> lib/pq
//	sqlite:///app.db | file:app.db | :memory:                 -> modernc sqlite
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	driver, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db: open failed: %w", err)
	}

	// пул коннектов
	if driver == DriverSQLite {
		// SQLite не любит параллельную запись, а :memory: живёт в одном соединении
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	// ping с таймаутом (не вешаем процесс)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: ping failed: %w", err)
	}

	if driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("db: enable foreign keys: %w", err)
		}
	}

	if logger != nil {
		logger.Info("db: connected", "driver", driver, "target", safeDSN(driver, dsn))
	}
	return &Store{db: db, driver: driver}, nil
}

// ParseURL выбирает драйвер по виду строки подключения.
func ParseURL(raw string) (driver, dsn string, err error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return "", "", errors.New("db: empty database url")
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		// sqlite:///app.db -> app.db, sqlite:////abs/app.db -> /abs/app.db
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite:///"), nil
	case strings.HasPrefix(raw, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(raw, "sqlite://"), nil
	case raw == ":memory:", strings.HasPrefix(raw, "file:"):
		return DriverSQLite, raw, nil
	case strings.Contains(raw, "host=") || strings.Contains(raw, "dbname="):
		return DriverPostgres, raw, nil
	default:
		return "", "", fmt.Errorf("db: unsupported database url %q", redact(raw))
	}
}

// safeDSN — только «куда», без пароля.
func safeDSN(driver, dsn string) string {
	if driver == DriverSQLite {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Host != "" {
		return u.Host + u.Path
	}
	var keep []string
	for _, kv := range strings.Fields(dsn) {
		if strings.HasPrefix(kv, "host=") || strings.HasPrefix(kv, "dbname=") || strings.HasPrefix(kv, "user=") {
			keep = append(keep, kv)
		}
	}
	return strings.Join(keep, " ")
}

func redact(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.User != nil {
		u.User = url.User(u.User.Username())
		return u.String()
	}
	return raw
}

// Driver — имя драйвера database/sql.
func (s *Store) Driver() string { return s.driver }

// DB отдаёт пул для пакетов, владеющих своими таблицами (uicopy).
func (s *Store) DB() *sqlx.DB { return s.db }

// Close закрывает пул.
func (s *Store) Close() error { return s.db.Close() }

// q переписывает плейсхолдеры ? под диалект драйвера.
func (s *Store) q(query string) string { return s.db.Rebind(query) }

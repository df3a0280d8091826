// Package storage сохраняет загруженные файлы (фото команды, медиа постов)
// локально или в бакет Google Cloud Storage и отдаёт публичный URL.
//
// Бэкенд выбирается один раз при старте и дальше не меняется.
package storage

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"AgenciaContable/internal/config"
)

var (
	// ErrInvalidFolder — имя папки не подходит под ^[a-z0-9][a-z0-9_-]*$.
	ErrInvalidFolder = errors.New("storage: invalid folder")
	// ErrMisconfigured — удалённое хранилище включено, но настроено неверно.
	ErrMisconfigured = errors.New("storage: remote storage misconfigured")
)

// Kind — куда легла загрузка.
type Kind string

const (
	KindLocal  Kind = "local"
	KindRemote Kind = "remote"
)

// Upload — результат одной загрузки.
type Upload struct {
	URL  string
	Kind Kind
}

// Backend кладёт объект {folder}/{name} и возвращает его публичный URL.
type Backend interface {
	Kind() Kind
	Put(ctx context.Context, object string, r io.Reader, contentType string) (string, error)
}

var folderRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Router — единая точка сохранения загрузок.
type Router struct {
	backend Backend
	files   afero.Fs
	logger  *slog.Logger
	newName func() string
}

// New собирает Router над готовым бэкендом. files — локальная папка загрузок,
// она раздаётся по /static/uploads даже при удалённом бэкенде (старые файлы).
func New(backend Backend, files afero.Fs, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{backend: backend, files: files, logger: logger, newName: randomName}
}

// NewRouter выбирает бэкенд по конфигурации. Удалённый включён, только если заданы
// и файл ключа сервисного аккаунта, и бакет; любая проблема с ними — ErrMisconfigured.
func NewRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Router, error) {
	files := afero.NewBasePathFs(afero.NewOsFs(), cfg.UploadDir)

	var backend Backend = NewLocalBackend(files)
	if cfg.RemoteStorageEnabled() {
		gcs, err := NewGCSBackend(ctx, cfg.RemoteCredentialsPath, cfg.RemoteBucketName, cfg.RemoteUploadTimeout)
		if err != nil {
			return nil, err
		}
		backend = gcs
	}

	r := New(backend, files, logger)
	r.logger.Info("storage: backend selected", "kind", backend.Kind())
	return r, nil
}

// Kind — активный бэкенд.
func (r *Router) Kind() Kind { return r.backend.Kind() }

// Close освобождает клиента удалённого бэкенда, если он есть.
func (r *Router) Close() error {
	if c, ok := r.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Files — локальная файловая система загрузок.
func (r *Router) Files() afero.Fs { return r.files }

// Store сохраняет поток под новым случайным именем в папку folder.
// Исходное имя файла используется только ради расширения.
func (r *Router) Store(ctx context.Context, src io.Reader, filename, contentType, folder string) (Upload, error) {
	if !folderRe.MatchString(folder) {
		return Upload{}, fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}
	object := folder + "/" + r.newName() + Extension(filename)

	url, err := r.backend.Put(ctx, object, src, contentType)
	if err != nil {
		return Upload{}, fmt.Errorf("storage: put %s: %w", object, err)
	}
	r.logger.Debug("storage: stored", "object", object, "kind", r.backend.Kind())
	return Upload{URL: url, Kind: r.backend.Kind()}, nil
}

// Extension — ".ext" в нижнем регистре из последнего элемента пути, или "".
// Расширения с символами вне [a-z0-9] отбрасываются.
func Extension(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(filename[i+1:])
	if ext == "" {
		return ""
	}
	for _, c := range ext {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return "." + ext
}

// randomName — 128 бит случайности в hex (uuid v4 без дефисов).
func randomName() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// NormalizeBucket: "gs://bucket/" -> "bucket".
func NormalizeBucket(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, "://"); i >= 0 {
		name = name[i+3:]
	}
	return strings.TrimRight(name, "/")
}

package storage

import (
	"context"
	"io"
	"path"

	"github.com/spf13/afero"
)

// LocalURLPrefix — под этим путём сервер раздаёт локальные загрузки.
const LocalURLPrefix = "/static/uploads/"

// LocalBackend пишет в afero.Fs, корень которой — папка загрузок.
type LocalBackend struct {
	fs afero.Fs
}

func NewLocalBackend(fs afero.Fs) *LocalBackend {
	return &LocalBackend{fs: fs}
}

func (b *LocalBackend) Kind() Kind { return KindLocal }

func (b *LocalBackend) Put(_ context.Context, object string, r io.Reader, _ string) (string, error) {
	// путь от корня fs: так же его потом запрашивает http.FileServer
	name := "/" + object
	if err := b.fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return "", err
	}
	if err := afero.WriteReader(b.fs, name, r); err != nil {
		// недописанный файл не оставляем
		_ = b.fs.Remove(name)
		return "", err
	}
	return LocalURLPrefix + object, nil
}

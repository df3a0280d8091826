package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgenciaContable/internal/config"
	"AgenciaContable/internal/logging"
)

// fakeRemote запоминает объекты в памяти и отвечает URL как у бакета.
type fakeRemote struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeRemote) Kind() Kind { return KindRemote }

func (f *fakeRemote) Put(_ context.Context, object string, r io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[object] = data
	f.types[object] = contentType
	return PublicURL("agencia.appspot.com", object), nil
}

func newLocalRouter(t *testing.T) (*Router, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(NewLocalBackend(fs), fs, logging.Discard()), fs
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":          ".jpg",
		"archive.tar.gz":     ".gz",
		"noext":              "",
		"":                   "",
		"trailing.":          "",
		"../../etc/passwd":   "",
		`C:\fotos\Ana.PNG`:   ".png",
		"dir.v2/file":        "",
		"evil.ph p":          "",
		"clip.mp4":           ".mp4",
		"weird.j/pg":         "",
		"nombre.jpg?x=1":     "",
		"folder/sub/img.Web": ".web",
	}
	for in, want := range cases {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestNormalizeBucket(t *testing.T) {
	assert.Equal(t, "agencia.appspot.com", NormalizeBucket("gs://agencia.appspot.com/"))
	assert.Equal(t, "agencia.appspot.com", NormalizeBucket("agencia.appspot.com"))
	assert.Equal(t, "bucket", NormalizeBucket(" https://bucket// "))
}

func TestLocalStoreLowercasesExtensionAndRenames(t *testing.T) {
	r, fs := newLocalRouter(t)

	up, err := r.Store(context.Background(), strings.NewReader("jpeg-bytes"), "photo.JPG", "image/jpeg", "team")
	require.NoError(t, err)

	assert.Equal(t, KindLocal, up.Kind)
	assert.True(t, strings.HasPrefix(up.URL, "/static/uploads/team/"), up.URL)
	assert.True(t, strings.HasSuffix(up.URL, ".jpg"), up.URL)
	assert.NotContains(t, up.URL, "photo")

	name := strings.TrimSuffix(strings.TrimPrefix(up.URL, "/static/uploads/team/"), ".jpg")
	assert.Len(t, name, 32)

	data, err := afero.ReadFile(fs, "/"+strings.TrimPrefix(up.URL, LocalURLPrefix))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalStoreRemovesPartialFile(t *testing.T) {
	r, fs := newLocalRouter(t)
	broken := errors.New("client went away")

	src := io.MultiReader(strings.NewReader("half-a-photo"), iotest.ErrReader(broken))
	_, err := r.Store(context.Background(), src, "photo.jpg", "image/jpeg", "team")
	require.ErrorIs(t, err, broken)

	var files []string
	require.NoError(t, afero.Walk(fs, "/", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, p)
		}
		return err
	}))
	assert.Empty(t, files)
}

func TestConcurrentStoresDoNotCollide(t *testing.T) {
	r, _ := newLocalRouter(t)

	const n = 16
	urls := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			up, err := r.Store(context.Background(), strings.NewReader("x"), "photo.jpg", "image/jpeg", "team")
			assert.NoError(t, err)
			urls[i] = up.URL
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, u := range urls {
		assert.False(t, seen[u], "duplicate url %s", u)
		seen[u] = true
	}
}

func TestInvalidFolderRejected(t *testing.T) {
	r, _ := newLocalRouter(t)
	for _, folder := range []string{"", "../etc", "Team", "a/b", "-x", "posts "} {
		_, err := r.Store(context.Background(), strings.NewReader("x"), "a.png", "image/png", folder)
		assert.ErrorIs(t, err, ErrInvalidFolder, folder)
	}
}

func TestRemoteBackendURLAndKind(t *testing.T) {
	remote := newFakeRemote()
	r := New(remote, afero.NewMemMapFs(), logging.Discard())
	r.newName = func() string { return "0123456789abcdef0123456789abcdef" }

	up, err := r.Store(context.Background(), bytes.NewReader([]byte("mp4")), "Clip.MP4", "video/mp4", "posts")
	require.NoError(t, err)

	assert.Equal(t, KindRemote, up.Kind)
	assert.Equal(t, KindRemote, r.Kind())
	assert.Equal(t, "https://storage.googleapis.com/agencia.appspot.com/posts/0123456789abcdef0123456789abcdef.mp4", up.URL)
	assert.Equal(t, "video/mp4", remote.types["posts/0123456789abcdef0123456789abcdef.mp4"])
}

func TestBackendErrorIsWrapped(t *testing.T) {
	remote := newFakeRemote()
	remote.err = errors.New("boom")
	r := New(remote, afero.NewMemMapFs(), logging.Discard())

	_, err := r.Store(context.Background(), strings.NewReader("x"), "a.png", "image/png", "team")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNewRouterLocalWhenRemoteDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{UploadDir: dir, RemoteCredentialsPath: "creds.json"}

	r, err := NewRouter(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, KindLocal, r.Kind())

	up, err := r.Store(context.Background(), strings.NewReader("hi"), "nota.txt", "text/plain", "posts")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(up.URL, LocalURLPrefix)))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
	assert.NoError(t, r.Close())
}

func TestNewRouterFailsFastOnMissingCredentials(t *testing.T) {
	cfg := &config.Config{
		UploadDir:             t.TempDir(),
		RemoteCredentialsPath: filepath.Join(t.TempDir(), "missing.json"),
		RemoteBucketName:      "gs://agencia.appspot.com",
	}
	_, err := NewRouter(context.Background(), cfg, logging.Discard())
	assert.ErrorIs(t, err, ErrMisconfigured)

	cfg.RemoteCredentialsPath = t.TempDir()
	_, err = NewRouter(context.Background(), cfg, logging.Discard())
	assert.ErrorIs(t, err, ErrMisconfigured)
}

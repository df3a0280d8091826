package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FIREBASE_CREDENTIALS", "")
	t.Setenv("FIREBASE_BUCKET", "")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Agencia Contable", cfg.AppName)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "sqlite:///app.db", cfg.DatabaseURL)
	assert.Equal(t, "admin_session", cfg.SessionName)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 30*time.Second, cfg.RemoteUploadTimeout)
	assert.True(t, cfg.UsesInsecureSecret())
	assert.False(t, cfg.RemoteStorageEnabled())
	assert.False(t, cfg.SMTPConfigured())
}

func TestLoadLegacyEnvNames(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("FIREBASE_CREDENTIALS", "creds.json")
	t.Setenv("FIREBASE_BUCKET", "gs://agencia.appspot.com/")
	t.Setenv("PORT", "9090")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.RemoteStorageEnabled())
	// нормализация имени бакета — забота storage
	assert.Equal(t, "gs://agencia.appspot.com/", cfg.RemoteBucketName)
}

func TestRemoteStorageNeedsBoth(t *testing.T) {
	cfg := &Config{RemoteCredentialsPath: "creds.json"}
	assert.False(t, cfg.RemoteStorageEnabled())
	cfg = &Config{RemoteBucketName: "bucket"}
	assert.False(t, cfg.RemoteStorageEnabled())
}

func TestPostgresFallbackDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PASSWORD", "pw")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5432 user=postgres dbname=agencia sslmode=disable password=pw", cfg.DatabaseURL)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agencia.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: Despacho\nport: 7070\nupload_dir: /tmp/up\n"), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Despacho", cfg.AppName)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/tmp/up", cfg.UploadDir)
}

func TestValidate(t *testing.T) {
	cfg := &Config{SessionSecret: "", Port: 8080, UploadDir: "uploads"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{SessionSecret: "x", Port: 0, UploadDir: "uploads"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{SessionSecret: "x", Port: 80, UploadDir: "uploads"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.RemoteUploadTimeout)
}

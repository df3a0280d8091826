package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InsecureSecret — значение по умолчанию; с ним сервер стартует, но пишет предупреждение.
const InsecureSecret = "dev-insecure-secret-change-me-now"

// Config — вся конфигурация процесса. Собирается один раз при старте и дальше не меняется.
type Config struct {
	AppName string
	Host    string
	Port    int

	DatabaseURL string

	SessionSecret string
	SessionName   string
	SessionSecure bool

	SuperAdminUsername string
	SuperAdminPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	RemoteCredentialsPath string
	RemoteBucketName      string
	RemoteUploadTimeout   time.Duration
	UploadDir             string

	LogLevel string
	LogJSON  bool
}

// ключ viper -> переменные окружения (первая найденная побеждает)
var envBindings = map[string][]string{
	"app_name":                {"APP_NAME"},
	"host":                    {"HOST"},
	"port":                    {"PORT"},
	"database_url":            {"DATABASE_URL", "POSTGRES_DSN"},
	"session_secret":          {"SESSION_SECRET", "SECRET_KEY"},
	"session_name":            {"ADMIN_SESSION_KEY"},
	"session_secure":          {"APP_HTTPS"},
	"super_admin_username":    {"SUPER_ADMIN_USERNAME"},
	"super_admin_password":    {"SUPER_ADMIN_PASSWORD"},
	"smtp_host":               {"SMTP_HOST"},
	"smtp_port":               {"SMTP_PORT"},
	"smtp_user":               {"SMTP_USER"},
	"smtp_password":           {"SMTP_PASSWORD"},
	"smtp_from":               {"SMTP_FROM"},
	"remote_credentials_path": {"REMOTE_CREDENTIALS_PATH", "FIREBASE_CREDENTIALS"},
	"remote_bucket_name":      {"REMOTE_BUCKET_NAME", "FIREBASE_BUCKET"},
	"remote_upload_timeout":   {"REMOTE_UPLOAD_TIMEOUT"},
	"upload_dir":              {"UPLOAD_DIR"},
	"log_level":               {"LOG_LEVEL"},
	"log_json":                {"LOG_JSON"},
	"postgres.host":           {"POSTGRES_HOST"},
	"postgres.port":           {"POSTGRES_PORT"},
	"postgres.user":           {"POSTGRES_USER"},
	"postgres.password":       {"POSTGRES_PASSWORD"},
	"postgres.db":             {"POSTGRES_DB"},
	"postgres.sslmode":        {"POSTGRES_SSLMODE"},
}

// NewViper готовит viper с дефолтами и привязкой к окружению.
// cfgFile может быть пустым: тогда ищем ./agencia.yaml, его отсутствие не ошибка.
func NewViper(cfgFile string) (*viper.Viper, error) {
	// .env — как в исходном приложении; нет файла — нет проблемы
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return v, nil
	}

	v.SetConfigName("agencia")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "Agencia Contable")
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", 8080)
	v.SetDefault("session_secret", InsecureSecret)
	v.SetDefault("session_name", "admin_session")
	v.SetDefault("session_secure", false)
	v.SetDefault("super_admin_username", "superadmin")
	v.SetDefault("super_admin_password", "ChangeMe123!")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("remote_upload_timeout", 30*time.Second)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("log_level", "info")
}

// Load читает Config из подготовленного viper.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:               v.GetString("app_name"),
		Host:                  v.GetString("host"),
		Port:                  v.GetInt("port"),
		DatabaseURL:           databaseURL(v),
		SessionSecret:         v.GetString("session_secret"),
		SessionName:           v.GetString("session_name"),
		SessionSecure:         v.GetBool("session_secure"),
		SuperAdminUsername:    v.GetString("super_admin_username"),
		SuperAdminPassword:    v.GetString("super_admin_password"),
		SMTPHost:              v.GetString("smtp_host"),
		SMTPPort:              v.GetInt("smtp_port"),
		SMTPUser:              v.GetString("smtp_user"),
		SMTPPassword:          v.GetString("smtp_password"),
		SMTPFrom:              v.GetString("smtp_from"),
		RemoteCredentialsPath: strings.TrimSpace(v.GetString("remote_credentials_path")),
		RemoteBucketName:      strings.TrimSpace(v.GetString("remote_bucket_name")),
		RemoteUploadTimeout:   v.GetDuration("remote_upload_timeout"),
		UploadDir:             v.GetString("upload_dir"),
		LogLevel:              v.GetString("log_level"),
		LogJSON:               v.GetBool("log_json"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// databaseURL: DATABASE_URL > POSTGRES_* (если задан хост или база) > локальный SQLite.
func databaseURL(v *viper.Viper) string {
	if dsn := strings.TrimSpace(v.GetString("database_url")); dsn != "" {
		return dsn
	}
	host := v.GetString("postgres.host")
	name := v.GetString("postgres.db")
	if host == "" && name == "" {
		return "sqlite:///app.db"
	}
	// lib/pq key=value формат; пароль в логи не попадает (см. db.safeDSN)
	parts := []string{
		"host=" + orDefault(host, "127.0.0.1"),
		"port=" + orDefault(v.GetString("postgres.port"), "5432"),
		"user=" + orDefault(v.GetString("postgres.user"), "postgres"),
		"dbname=" + orDefault(name, "agencia"),
		"sslmode=" + orDefault(v.GetString("postgres.sslmode"), "disable"),
	}
	if pass := v.GetString("postgres.password"); pass != "" {
		parts = append(parts, "password="+pass)
	}
	return strings.Join(parts, " ")
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// Validate проверяет то, без чего сервер работать не может.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("config: session_secret must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if c.UploadDir == "" {
		return errors.New("config: upload_dir must not be empty")
	}
	if c.RemoteUploadTimeout <= 0 {
		c.RemoteUploadTimeout = 30 * time.Second
	}
	return nil
}

// RemoteStorageEnabled — загрузки идут в бакет только если заданы и ключ, и бакет.
func (c *Config) RemoteStorageEnabled() bool {
	return c.RemoteCredentialsPath != "" && c.RemoteBucketName != ""
}

// SMTPConfigured повторяет условие исходного мейлера: host + user + password.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

// UsesInsecureSecret сообщает, что секрет сессии остался дефолтным.
func (c *Config) UsesInsecureSecret() bool {
	return c.SessionSecret == InsecureSecret
}

// Addr — адрес для http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Пакет config — загрузка и валидация конфигурации EduInk
// из переменных окружения (префикс EI_).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации EduInk.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- PostgreSQL (Metadata Repository) ---

	// Хост PostgreSQL
	DBHost string
	// Порт PostgreSQL
	DBPort int
	// Имя базы данных
	DBName string
	// Имя пользователя PostgreSQL
	DBUser string
	// Пароль пользователя PostgreSQL
	DBPassword string
	// Режим SSL: disable, require, verify-ca, verify-full
	DBSSLMode string

	// --- Object Storage ---

	// Базовый URL сервиса объектного хранилища.
	// Пустое значение не мешает старту: каждый вызов хранилища
	// завершится ошибкой конфигурации на этапе запроса.
	StorageURL string
	// Сервисный ключ доступа к хранилищу (Bearer)
	StorageAccessKey string
	// Имя bucket для загружаемых файлов
	StorageBucket string

	// --- Загрузки ---

	// Максимальный размер multipart-запроса в байтах
	MaxUploadSize int64

	// --- Кэш списков конспектов ---

	// Максимальное количество записей в LRU-кэше
	NotesCacheSize int
	// TTL записи кэша
	NotesCacheTTL time.Duration

	// --- JWT (admin-маршруты; пустой JWKS URL — аутентификация отключена) ---

	// URL JWKS endpoint
	JWTJWKSURL string
	// Ожидаемый issuer токена (пустой — не проверяется)
	JWTIssuer string
	// Допустимое отклонение времени при проверке JWT
	JWTLeeway time.Duration

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения, валидирует
// обязательные поля и возвращает Config или ошибку.
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// --- Сервер ---

	// EI_PORT — порт HTTP-сервера (по умолчанию 3000)
	cfg.Port, err = getEnvInt("EI_PORT", 3000)
	if err != nil {
		return nil, fmt.Errorf("EI_PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("EI_PORT: значение %d вне допустимого диапазона 1-65535", cfg.Port)
	}

	// EI_LOG_LEVEL — уровень логирования (по умолчанию info)
	cfg.LogLevel, err = parseLogLevel(getEnvDefault("EI_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("EI_LOG_LEVEL: %w", err)
	}

	// EI_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("EI_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("EI_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	// --- PostgreSQL ---

	// EI_DB_HOST — обязательный
	cfg.DBHost, err = getEnvRequired("EI_DB_HOST")
	if err != nil {
		return nil, err
	}

	// EI_DB_PORT — порт PostgreSQL (по умолчанию 5432)
	cfg.DBPort, err = getEnvInt("EI_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("EI_DB_PORT: %w", err)
	}

	// EI_DB_NAME — обязательный
	cfg.DBName, err = getEnvRequired("EI_DB_NAME")
	if err != nil {
		return nil, err
	}

	// EI_DB_USER — обязательный
	cfg.DBUser, err = getEnvRequired("EI_DB_USER")
	if err != nil {
		return nil, err
	}

	// EI_DB_PASSWORD — обязательный
	cfg.DBPassword, err = getEnvRequired("EI_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	// EI_DB_SSL_MODE — режим SSL (по умолчанию disable)
	cfg.DBSSLMode = getEnvDefault("EI_DB_SSL_MODE", "disable")
	validSSLModes := map[string]bool{
		"disable": true, "require": true, "verify-ca": true, "verify-full": true,
	}
	if !validSSLModes[cfg.DBSSLMode] {
		return nil, fmt.Errorf("EI_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	// --- Object Storage ---

	// EI_STORAGE_URL — базовый URL хранилища.
	// Отсутствие НЕ приводит к ошибке старта: клиент хранилища будет
	// возвращать ошибку конфигурации при каждом вызове.
	cfg.StorageURL = strings.TrimRight(getEnvDefault("EI_STORAGE_URL", ""), "/")

	// EI_STORAGE_ACCESS_KEY — сервисный ключ (аналогично опционален)
	cfg.StorageAccessKey = getEnvDefault("EI_STORAGE_ACCESS_KEY", "")

	// EI_STORAGE_BUCKET — bucket загрузок (по умолчанию question-papers)
	cfg.StorageBucket = getEnvDefault("EI_STORAGE_BUCKET", "question-papers")

	// --- Загрузки ---

	// EI_MAX_UPLOAD_SIZE — максимальный размер запроса (по умолчанию 50 MiB)
	cfg.MaxUploadSize, err = getEnvInt64("EI_MAX_UPLOAD_SIZE", 50<<20)
	if err != nil {
		return nil, fmt.Errorf("EI_MAX_UPLOAD_SIZE: %w", err)
	}
	if cfg.MaxUploadSize < 1 {
		return nil, fmt.Errorf("EI_MAX_UPLOAD_SIZE: значение должно быть положительным")
	}

	// --- Кэш ---

	// EI_NOTES_CACHE_SIZE — размер LRU-кэша (по умолчанию 256)
	cfg.NotesCacheSize, err = getEnvInt("EI_NOTES_CACHE_SIZE", 256)
	if err != nil {
		return nil, fmt.Errorf("EI_NOTES_CACHE_SIZE: %w", err)
	}
	if cfg.NotesCacheSize < 1 {
		return nil, fmt.Errorf("EI_NOTES_CACHE_SIZE: значение должно быть положительным")
	}

	// EI_NOTES_CACHE_TTL — TTL записи кэша (по умолчанию 30s)
	cfg.NotesCacheTTL, err = getEnvDuration("EI_NOTES_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("EI_NOTES_CACHE_TTL: %w", err)
	}

	// --- JWT ---

	// EI_JWT_JWKS_URL — URL JWKS endpoint (пустой — admin-маршруты открыты)
	cfg.JWTJWKSURL = getEnvDefault("EI_JWT_JWKS_URL", "")

	// EI_JWT_ISSUER — ожидаемый issuer (опционально)
	cfg.JWTIssuer = getEnvDefault("EI_JWT_ISSUER", "")

	// EI_JWT_LEEWAY — допустимое отклонение времени (по умолчанию 30s)
	cfg.JWTLeeway, err = getEnvDuration("EI_JWT_LEEWAY", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("EI_JWT_LEEWAY: %w", err)
	}

	// --- Graceful shutdown ---

	// EI_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("EI_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("EI_SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// DatabaseDSN возвращает строку подключения к PostgreSQL.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvInt64 возвращает int64-значение переменной окружения или значение по умолчанию.
func getEnvInt64(key string, defaultVal int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}

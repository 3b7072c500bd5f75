package config

import (
	"log/slog"
	"testing"
	"time"
)

// setEnvs устанавливает переменные окружения на время теста.
func setEnvs(t *testing.T, envs map[string]string) {
	t.Helper()
	for k, v := range envs {
		t.Setenv(k, v)
	}
}

// minimalEnvs возвращает минимальный набор обязательных переменных.
func minimalEnvs() map[string]string {
	return map[string]string{
		"EI_DB_HOST":     "localhost",
		"EI_DB_NAME":     "eduink",
		"EI_DB_USER":     "eduink",
		"EI_DB_PASSWORD": "secret",
	}
}

func TestLoad_MinimalConfig(t *testing.T) {
	setEnvs(t, minimalEnvs())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	// Проверяем значения по умолчанию
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, ожидается 3000", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, ожидается Info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, ожидается json", cfg.LogFormat)
	}
	if cfg.DBPort != 5432 {
		t.Errorf("DBPort = %d, ожидается 5432", cfg.DBPort)
	}
	if cfg.DBSSLMode != "disable" {
		t.Errorf("DBSSLMode = %q, ожидается disable", cfg.DBSSLMode)
	}
	if cfg.StorageBucket != "question-papers" {
		t.Errorf("StorageBucket = %q, ожидается question-papers", cfg.StorageBucket)
	}
	if cfg.MaxUploadSize != 50<<20 {
		t.Errorf("MaxUploadSize = %d, ожидается %d", cfg.MaxUploadSize, 50<<20)
	}
	if cfg.NotesCacheSize != 256 {
		t.Errorf("NotesCacheSize = %d, ожидается 256", cfg.NotesCacheSize)
	}
	if cfg.NotesCacheTTL != 30*time.Second {
		t.Errorf("NotesCacheTTL = %v, ожидается 30s", cfg.NotesCacheTTL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 5s", cfg.ShutdownTimeout)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	// EI_DB_HOST отсутствует
	setEnvs(t, map[string]string{
		"EI_DB_NAME":     "eduink",
		"EI_DB_USER":     "eduink",
		"EI_DB_PASSWORD": "secret",
	})

	if _, err := Load(); err == nil {
		t.Error("ожидалась ошибка при отсутствии EI_DB_HOST")
	}
}

func TestLoad_StorageOptional(t *testing.T) {
	// Отсутствие EI_STORAGE_URL и EI_STORAGE_ACCESS_KEY не мешает старту
	setEnvs(t, minimalEnvs())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}
	if cfg.StorageURL != "" || cfg.StorageAccessKey != "" {
		t.Errorf("StorageURL/StorageAccessKey должны быть пустыми по умолчанию")
	}
}

func TestLoad_StorageURLTrailingSlash(t *testing.T) {
	envs := minimalEnvs()
	envs["EI_STORAGE_URL"] = "https://baas.example.com/"
	setEnvs(t, envs)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}
	if cfg.StorageURL != "https://baas.example.com" {
		t.Errorf("StorageURL = %q, trailing slash должен быть убран", cfg.StorageURL)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	envs := minimalEnvs()
	envs["EI_PORT"] = "99999"
	setEnvs(t, envs)

	if _, err := Load(); err == nil {
		t.Error("ожидалась ошибка для порта вне диапазона")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	envs := minimalEnvs()
	envs["EI_LOG_LEVEL"] = "verbose"
	setEnvs(t, envs)

	if _, err := Load(); err == nil {
		t.Error("ожидалась ошибка для недопустимого уровня логирования")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	envs := minimalEnvs()
	envs["EI_NOTES_CACHE_TTL"] = "тридцать секунд"
	setEnvs(t, envs)

	if _, err := Load(); err == nil {
		t.Error("ожидалась ошибка для некорректной длительности")
	}
}

func TestDatabaseDSN(t *testing.T) {
	setEnvs(t, minimalEnvs())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	dsn := cfg.DatabaseDSN()
	expected := "host=localhost port=5432 dbname=eduink user=eduink password=secret sslmode=disable"
	if dsn != expected {
		t.Errorf("DatabaseDSN() = %q, ожидается %q", dsn, expected)
	}
}

// Точка входа EduInk — бэкенд портала учебных материалов.
// Загружает конфигурацию, подключается к PostgreSQL, применяет миграции,
// создаёт клиент объектного хранилища, каталог в памяти, сервисный слой
// и API handlers, запускает HTTP-сервер с graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/bigkaa/eduink/internal/api/handlers"
	"github.com/bigkaa/eduink/internal/api/middleware"
	"github.com/bigkaa/eduink/internal/catalog"
	"github.com/bigkaa/eduink/internal/config"
	"github.com/bigkaa/eduink/internal/database"
	"github.com/bigkaa/eduink/internal/repository"
	"github.com/bigkaa/eduink/internal/server"
	"github.com/bigkaa/eduink/internal/service"
	"github.com/bigkaa/eduink/internal/storage"
)

func main() {
	// 1. Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

	// 2. Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 3. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("EduInk запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	// 4. Применение миграций БД
	logger.Info("Применение миграций БД...")
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка миграций БД", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 5. Подключение к PostgreSQL (pgxpool)
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 6. Клиент объектного хранилища.
	// Пустые URL/ключ не препятствуют старту: операции с файлами
	// начнут возвращать ошибки, остальные маршруты работают.
	storageClient := storage.New(cfg.StorageURL, cfg.StorageAccessKey, cfg.StorageBucket, logger)
	if cfg.StorageURL == "" || cfg.StorageAccessKey == "" {
		logger.Warn("EI_STORAGE_URL/EI_STORAGE_ACCESS_KEY не заданы: загрузка файлов недоступна")
	}

	// 7. Каталог классов и предметов в памяти
	cat := catalog.New(logger)

	// 8. Repositories
	noteRepo := repository.NewNoteRepository(pool)
	questionRepo := repository.NewQuestionBankRepository(pool)
	videoRepo := repository.NewVideoRepository(pool)

	// 9. Services
	notesCache := service.NewNotesCache(cfg.NotesCacheSize, cfg.NotesCacheTTL)
	contentSvc := service.NewContentService(noteRepo, questionRepo, videoRepo,
		storageClient, notesCache, logger)
	uploadSvc := service.NewUploadService(storageClient, noteRepo, cat, notesCache, logger)

	// 10. Health handler
	healthHandler := handlers.NewHealthHandler(database.NewReadinessChecker(pool))

	// 11. API handler
	apiHandler := handlers.NewAPIHandler(healthHandler, cat, contentSvc, uploadSvc, logger)

	// 12. JWT middleware (включается при заданном EI_JWT_JWKS_URL)
	var jwtAuth *middleware.JWTAuth
	if cfg.JWTJWKSURL != "" {
		jwtAuth, err = middleware.NewJWTAuth(middleware.JWTAuthConfig{
			JWKSURL:   cfg.JWTJWKSURL,
			Issuer:    cfg.JWTIssuer,
			JWTLeeway: cfg.JWTLeeway,
		}, logger)
		if err != nil {
			logger.Error("Ошибка создания JWT middleware", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("JWT middleware инициализирован",
			slog.String("jwks_url", cfg.JWTJWKSURL),
			slog.String("issuer", cfg.JWTIssuer),
		)
	} else {
		logger.Warn("EI_JWT_JWKS_URL не задан: мутирующие маршруты НЕ защищены")
	}

	// 13. Создание и запуск HTTP-сервера
	srv := server.New(cfg, logger, apiHandler, jwtAuth)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("EduInk остановлен")
}

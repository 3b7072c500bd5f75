// Пакет server — HTTP-сервер портала с graceful shutdown.
// Без TLS — HTTP внутри кластера, TLS termination на внешнем прокси.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/bigkaa/eduink/internal/api/errors"
	"github.com/bigkaa/eduink/internal/api/handlers"
	"github.com/bigkaa/eduink/internal/api/middleware"
	"github.com/bigkaa/eduink/internal/config"
)

// Server — HTTP-сервер портала.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт новый HTTP-сервер с настроенными routes и middleware.
// jwtAuth может быть nil — тогда мутирующие маршруты не защищены
// (режим выбирается конфигурацией, в логах об этом предупреждение).
func New(cfg *config.Config, logger *slog.Logger, handler *handlers.APIHandler, jwtAuth *middleware.JWTAuth) *Server {
	router := NewRouter(cfg, logger, handler, jwtAuth)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter строит chi-router с полной таблицей маршрутов.
// Вынесен отдельно для использования в тестах без запуска сервера.
func NewRouter(cfg *config.Config, logger *slog.Logger, handler *handlers.APIHandler, jwtAuth *middleware.JWTAuth) chi.Router {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам)
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recoverer(logger))
	router.Use(maxBodySize(cfg.MaxUploadSize))

	// Служебные endpoints
	router.Get("/health/live", handler.HealthLive)
	router.Get("/health/ready", handler.HealthReady)
	router.Get("/metrics", handler.GetMetrics)

	// Страницы админ-панели и favicon
	router.Get("/favicon.ico", handler.Favicon)
	router.Get("/admin", handler.AdminLogin)
	router.Get("/admin/dashboard", handler.AdminDashboard)
	router.Get("/admin/upload", handler.AdminUpload)

	// Публичные read-only маршруты
	router.Get("/api/classes", handler.GetClasses)
	router.Get("/api/subjects/{class}", handler.GetSubjects)
	router.Get("/api/all-subjects", handler.GetAllSubjects)
	router.Get("/api/questions/{subject}", handler.GetQuestions)
	router.Get("/api/videos/{subject}", handler.GetVideos)
	router.Get("/api/notes/{class}/{subject}", handler.GetNotes)
	router.Get("/api/notes/{subject}", handler.GetNotesBySubject)
	router.Get("/api/all-notes", handler.GetAllNotes)
	router.Get("/api/all-questions", handler.GetAllQuestions)
	router.Get("/api/all-videos", handler.GetAllVideos)

	// Мутирующие админские маршруты — под JWT, когда он включён
	router.Group(func(r chi.Router) {
		if jwtAuth != nil {
			r.Use(jwtAuth.Middleware())
		}
		r.Post("/api/upload-question", handler.UploadQuestion)
		r.Post("/api/upload-notes", handler.UploadNotes)
		r.Post("/api/add-subject", handler.AddSubject)
		r.Post("/api/add-video", handler.AddVideo)
		r.Delete("/api/delete-note/{noteId}", handler.DeleteNote)
		r.Delete("/api/delete-question/{questionId}", handler.DeleteQuestion)
		r.Delete("/api/delete-video/{videoId}", handler.DeleteVideo)
	})

	// Неизвестный маршрут или метод — единый ответ 404
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.RouteNotFound(w)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierrors.RouteNotFound(w)
	})

	return router
}

// maxBodySize ограничивает размер тела запроса.
// Превышение лимита multipart-запросом обрывает чтение формы.
func maxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	// Канал для ошибок сервера
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}

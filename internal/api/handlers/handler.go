// handler.go — основной обработчик HTTP API портала.
// Объединяет доменные обработчики и делегирует запросы в сервисный слой.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bigkaa/eduink/internal/catalog"
	"github.com/bigkaa/eduink/internal/service"
)

// APIHandler — основной обработчик API портала.
type APIHandler struct {
	health  *HealthHandler
	catalog *catalog.Store
	content *service.ContentService
	uploads *service.UploadService
	logger  *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(
	health *HealthHandler,
	cat *catalog.Store,
	content *service.ContentService,
	uploads *service.UploadService,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:  health,
		catalog: cat,
		content: content,
		uploads: uploads,
		logger:  logger.With(slog.String("component", "api_handler")),
	}
}

// HealthLive — liveness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики (делегируется в HealthHandler).
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// --- Вспомогательные функции ---

// successResponse — конверт успешной мутации:
// {"success": true, "message": "...", "data": ...}.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeSuccess записывает конверт успешной мутации со статусом 200.
func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Пакет errors — конструкторы ошибок HTTP API.
// Исторически API использует два плоских формата:
// {"error": "..."} и {"message": "..."} — какой именно,
// зависит от маршрута. Клиенты различают их, поэтому
// форматы сохраняются как есть.
package errors

import (
	"encoding/json"
	"net/http"
)

// errorBody — тело ответа формата {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// messageBody — тело ответа формата {"message": "..."}.
type messageBody struct {
	Message string `json:"message"`
}

// WriteError записывает ошибку в формате {"error": "..."}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}

// WriteMessage записывает ошибку в формате {"message": "..."}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(messageBody{Message: message})
}

// --- Конструкторы для типичных ошибок ---

// NotFound — 404 ресурс не найден, формат {"error": ...}.
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// BadRequest — 400 некорректные входные данные, формат {"error": ...}.
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// BadRequestMessage — 400 некорректные входные данные, формат {"message": ...}.
func BadRequestMessage(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusBadRequest, message)
}

// Unauthorized — 401 требуется аутентификация.
func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// InternalError — 500 внутренняя ошибка, формат {"error": ...}.
func InternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// InternalMessage — 500 внутренняя ошибка, формат {"message": ...}.
func InternalMessage(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusInternalServerError, message)
}

// RouteNotFound — 404 для неизвестных маршрутов.
func RouteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "Route not found")
}

// ServerError — 500 при панике или иной необработанной ошибке.
func ServerError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

// content.go — обработчики конспектов и вкладки управления контентом:
// выборки из БД и двухфазное удаление.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/bigkaa/eduink/internal/api/errors"
	"github.com/bigkaa/eduink/internal/service"
)

// GetNotes — GET /api/notes/{class}/{subject}.
// Возвращаются только конспекты, совпадающие И по классу, И по предмету.
func (h *APIHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	subject := chi.URLParam(r, "subject")

	notes, err := h.content.ListNotes(r.Context(), class, subject)
	if err != nil {
		h.logger.Error("Ошибка выборки конспектов", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Error fetching notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// GetNotesBySubject — GET /api/notes/{subject}.
// Устаревший маршрут: все конспекты предмета независимо от класса.
func (h *APIHandler) GetNotesBySubject(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")

	notes, err := h.content.ListNotesBySubject(r.Context(), subject)
	if err != nil {
		h.logger.Error("Ошибка выборки конспектов", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Error fetching notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// GetAllNotes — GET /api/all-notes. Для вкладки управления контентом.
func (h *APIHandler) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.content.ListAllNotes(r.Context())
	if err != nil {
		h.logger.Error("Ошибка выборки всех конспектов", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to fetch notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// GetAllQuestions — GET /api/all-questions.
// Отсутствие таблицы — пустой массив.
func (h *APIHandler) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.content.ListAllQuestions(r.Context())
	if err != nil {
		h.logger.Error("Ошибка выборки банков вопросов", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to fetch questions")
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// GetAllVideos — GET /api/all-videos.
// Отсутствие таблицы — пустой массив.
func (h *APIHandler) GetAllVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.content.ListAllVideos(r.Context())
	if err != nil {
		h.logger.Error("Ошибка выборки видеозаписей", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to fetch videos")
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// DeleteNote — DELETE /api/delete-note/{noteId}.
func (h *APIHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "noteId"), 10, 64)
	if err != nil {
		apierrors.NotFound(w, "Note not found")
		return
	}

	if err := h.content.DeleteNote(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.NotFound(w, "Note not found")
			return
		}
		h.logger.Error("Ошибка удаления конспекта", slog.Int64("id", id), slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to delete note")
		return
	}

	writeSuccess(w, "Note deleted successfully", nil)
}

// DeleteQuestion — DELETE /api/delete-question/{questionId}.
func (h *APIHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "questionId"), 10, 64)
	if err != nil {
		apierrors.NotFound(w, "Question not found")
		return
	}

	if err := h.content.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.NotFound(w, "Question not found")
			return
		}
		h.logger.Error("Ошибка удаления банка вопросов", slog.Int64("id", id), slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to delete question")
		return
	}

	writeSuccess(w, "Question deleted successfully", nil)
}

// DeleteVideo — DELETE /api/delete-video/{videoId}.
func (h *APIHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "videoId"), 10, 64)
	if err != nil {
		apierrors.NotFound(w, "Video not found")
		return
	}

	if err := h.content.DeleteVideo(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.NotFound(w, "Video not found")
			return
		}
		h.logger.Error("Ошибка удаления видеозаписи", slog.Int64("id", id), slog.String("error", err.Error()))
		apierrors.InternalError(w, "Failed to delete video")
		return
	}

	writeSuccess(w, "Video deleted successfully", nil)
}

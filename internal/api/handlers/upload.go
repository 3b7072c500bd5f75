// upload.go — обработчики multipart-загрузок.
// POST /api/upload-question — экзаменационные материалы (PDF или изображение).
// POST /api/upload-notes — PDF-конспекты с метаданными в БД.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/bigkaa/eduink/internal/api/errors"
	"github.com/bigkaa/eduink/internal/service"
)

// isBodyTooLarge — тело запроса превысило лимит http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// UploadQuestion — POST /api/upload-question.
// Поля формы: class, subject, title, file.
func (h *APIHandler) UploadQuestion(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			apierrors.BadRequest(w, "File too large")
			return
		}
		apierrors.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	class := r.FormValue("class")
	subject := r.FormValue("subject")
	title := r.FormValue("title")
	if class == "" || subject == "" || title == "" {
		apierrors.BadRequest(w, "Missing required fields")
		return
	}

	question, uploadErr := h.uploads.UploadQuestion(r.Context(), service.UploadParams{
		Class:       class,
		Subject:     subject,
		Title:       title,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if uploadErr != nil {
		h.logger.Error("Загрузка материала не удалась",
			slog.Int("status", uploadErr.StatusCode),
			slog.String("message", uploadErr.Message),
		)
		apierrors.WriteMessage(w, uploadErr.StatusCode, uploadErr.Message)
		return
	}

	writeSuccess(w, "Question uploaded successfully", question)
}

// UploadNotes — POST /api/upload-notes.
// Поля формы: class, subject, title, file; caption — опционально.
// Принимаются только PDF.
func (h *APIHandler) UploadNotes(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			apierrors.BadRequestMessage(w, "File too large")
			return
		}
		apierrors.BadRequestMessage(w, "No file provided")
		return
	}
	defer file.Close()

	class := r.FormValue("class")
	subject := r.FormValue("subject")
	title := r.FormValue("title")
	if class == "" || subject == "" || title == "" {
		apierrors.BadRequestMessage(w, "Missing required fields (class, subject, title)")
		return
	}

	var caption *string
	if c := r.FormValue("caption"); c != "" {
		caption = &c
	}

	note, uploadErr := h.uploads.UploadNotes(r.Context(), service.UploadParams{
		Class:       class,
		Subject:     subject,
		Title:       title,
		Caption:     caption,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if uploadErr != nil {
		h.logger.Error("Загрузка конспекта не удалась",
			slog.Int("status", uploadErr.StatusCode),
			slog.String("message", uploadErr.Message),
		)
		apierrors.WriteMessage(w, uploadErr.StatusCode, uploadErr.Message)
		return
	}

	writeSuccess(w, "Notes uploaded successfully", note)
}

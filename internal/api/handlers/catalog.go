// catalog.go — обработчики каталога классов, предметов,
// экзаменационных материалов и видео (volatile-хранилище в памяти).
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	apierrors "github.com/bigkaa/eduink/internal/api/errors"
)

// GetClasses — GET /api/classes.
// Возвращает список классов как плоский JSON-массив.
func (h *APIHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Classes())
}

// GetSubjects — GET /api/subjects/{class}.
// Возвращает предметы класса или 404, если класс неизвестен.
func (h *APIHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")

	subjects, ok := h.catalog.Subjects(class)
	if !ok {
		apierrors.NotFound(w, "Class not found")
		return
	}

	writeJSON(w, http.StatusOK, subjects)
}

// GetAllSubjects — GET /api/all-subjects.
// Возвращает отсортированный список уникальных предметов всех классов.
func (h *APIHandler) GetAllSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.AllSubjects())
}

// GetQuestions — GET /api/questions/{subject}?class=N.
// Предмет сравнивается без учёта регистра, класс — точно.
func (h *APIHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")
	class := r.URL.Query().Get("class")

	writeJSON(w, http.StatusOK, h.catalog.Questions(subject, class))
}

// GetVideos — GET /api/videos/{subject}?class=N.
func (h *APIHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")
	class := r.URL.Query().Get("class")

	writeJSON(w, http.StatusOK, h.catalog.Videos(subject, class))
}

// addSubjectRequest — тело POST /api/add-subject.
type addSubjectRequest struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}

// Validate проверяет обязательность полей.
func (r addSubjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Class, validation.Required),
		validation.Field(&r.Name, validation.Required),
	)
}

// AddSubject — POST /api/add-subject.
// Добавляет предмет в класс (идемпотентно).
func (h *APIHandler) AddSubject(w http.ResponseWriter, r *http.Request) {
	var req addSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequestMessage(w, "Missing required fields")
		return
	}
	if err := req.Validate(); err != nil {
		apierrors.BadRequestMessage(w, "Missing required fields")
		return
	}

	h.catalog.AddSubject(req.Class, req.Name)

	writeSuccess(w, "Subject added successfully", map[string]string{
		"class":   req.Class,
		"subject": req.Name,
	})
}

// addVideoRequest — тело POST /api/add-video.
type addVideoRequest struct {
	Class    string `json:"class"`
	Subject  string `json:"subject"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// Validate проверяет обязательность полей.
func (r addVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Class, validation.Required),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.VideoURL, validation.Required),
	)
}

// AddVideo — POST /api/add-video.
// Регистрирует ссылку на видео в volatile-каталоге.
func (h *APIHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequestMessage(w, "Missing required fields")
		return
	}
	if err := req.Validate(); err != nil {
		apierrors.BadRequestMessage(w, "Missing required fields")
		return
	}

	video := h.catalog.AddVideo(req.Class, req.Subject, req.Title, req.VideoURL)

	writeSuccess(w, "Video added successfully", video)
}

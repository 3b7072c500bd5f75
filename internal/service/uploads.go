package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/bigkaa/eduink/internal/catalog"
	"github.com/bigkaa/eduink/internal/domain/model"
)

// ObjectStore — интерфейс клиента объектного хранилища.
type ObjectStore interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, paths []string) error
}

// NoteInserter — запись метаданных конспекта в БД.
type NoteInserter interface {
	Insert(ctx context.Context, class, subject, title string, caption *string, fileURL string) (model.NoteRecord, error)
}

// UploadParams — параметры загрузки файла через multipart-форму.
type UploadParams struct {
	Class   string
	Subject string
	Title   string
	// Caption — подпись конспекта (опционально, только для notes)
	Caption *string
	// Filename — оригинальное имя файла из формы
	Filename string
	// ContentType — MIME-тип из multipart part
	ContentType string
	// Reader — поток данных файла
	Reader io.Reader
}

// UploadError — ошибка загрузки с HTTP-кодом.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("статус %d: %s", e.StatusCode, e.Message)
}

// UploadService — загрузка экзаменационных материалов и конспектов.
type UploadService struct {
	store   ObjectStore
	notes   NoteInserter
	catalog *catalog.Store
	cache   *NotesCache
	logger  *slog.Logger
}

// NewUploadService создаёт сервис загрузки.
func NewUploadService(store ObjectStore, notes NoteInserter, cat *catalog.Store, cache *NotesCache, logger *slog.Logger) *UploadService {
	return &UploadService{
		store:   store,
		notes:   notes,
		catalog: cat,
		cache:   cache,
		logger:  logger.With(slog.String("component", "upload_service")),
	}
}

// UploadQuestion загружает экзаменационный материал в хранилище
// и регистрирует его в каталоге.
//
// Поток:
//  1. Формирование имени объекта <ts>_<subject>_<title><ext>
//  2. Загрузка в бакет, путь question-papers/<class>/<subject>/
//  3. Регистрация записи в каталоге с публичным URL
func (s *UploadService) UploadQuestion(ctx context.Context, params UploadParams) (model.QuestionRecord, *UploadError) {
	ext := filepath.Ext(params.Filename)
	fileName := fmt.Sprintf("%d_%s_%s%s", time.Now().UnixMilli(), params.Subject, params.Title, ext)
	objectPath := fmt.Sprintf("question-papers/%s/%s/%s", params.Class, params.Subject, fileName)

	publicURL, err := s.store.Upload(ctx, objectPath, params.Reader, params.ContentType)
	if err != nil {
		s.logger.Error("Ошибка загрузки материала в хранилище",
			slog.String("path", objectPath),
			slog.String("error", err.Error()),
		)
		return model.QuestionRecord{}, &UploadError{
			StatusCode: 500,
			Message:    fmt.Sprintf("Failed to upload file: %s", err.Error()),
		}
	}

	question := s.catalog.AddQuestion(params.Class, params.Subject, params.Title,
		publicURL, fileType(params.ContentType, ext))

	s.logger.Info("Экзаменационный материал загружен",
		slog.String("id", question.ID),
		slog.String("class", params.Class),
		slog.String("subject", params.Subject),
		slog.String("file_type", question.FileType),
	)

	return question, nil
}

// UploadNotes загружает PDF-конспект в хранилище и сохраняет
// метаданные в БД. Принимаются только PDF-файлы.
func (s *UploadService) UploadNotes(ctx context.Context, params UploadParams) (model.NoteRecord, *UploadError) {
	if normalizeContentType(params.ContentType) != "application/pdf" {
		return model.NoteRecord{}, &UploadError{
			StatusCode: 400,
			Message:    "Only PDF files are allowed for notes",
		}
	}

	ext := filepath.Ext(params.Filename)
	fileName := fmt.Sprintf("%d_%s_%s_%s%s", time.Now().UnixMilli(),
		params.Class, params.Subject, params.Title, ext)
	objectPath := fmt.Sprintf("question-papers/notes/%s/%s/%s", params.Class, params.Subject, fileName)

	publicURL, err := s.store.Upload(ctx, objectPath, params.Reader, params.ContentType)
	if err != nil {
		s.logger.Error("Ошибка загрузки конспекта в хранилище",
			slog.String("path", objectPath),
			slog.String("error", err.Error()),
		)
		return model.NoteRecord{}, &UploadError{
			StatusCode: 500,
			Message:    fmt.Sprintf("Failed to upload file: %s", err.Error()),
		}
	}

	note, err := s.notes.Insert(ctx, params.Class, params.Subject, params.Title, params.Caption, publicURL)
	if err != nil {
		s.logger.Error("Ошибка сохранения метаданных конспекта",
			slog.String("class", params.Class),
			slog.String("subject", params.Subject),
			slog.String("error", err.Error()),
		)
		return model.NoteRecord{}, &UploadError{
			StatusCode: 500,
			Message:    fmt.Sprintf("Failed to save note metadata: %s", err.Error()),
		}
	}

	// Списки конспектов изменились
	s.cache.Purge()

	s.logger.Info("Конспект загружен",
		slog.Int64("id", note.ID),
		slog.String("class", params.Class),
		slog.String("subject", params.Subject),
	)

	return note, nil
}

// fileType определяет тип файла по MIME-типу с fallback на расширение.
func fileType(contentType, ext string) string {
	if normalizeContentType(contentType) == "application/pdf" || strings.EqualFold(ext, ".pdf") {
		return model.FileTypePDF
	}
	return model.FileTypeImage
}

// normalizeContentType убирает параметры MIME-типа (charset и т.д.).
func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

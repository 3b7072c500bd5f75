package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bigkaa/eduink/internal/domain/model"
	"github.com/bigkaa/eduink/internal/repository"
)

// ErrNotFound — запрошенный контент не найден.
var ErrNotFound = errors.New("контент не найден")

// NoteStore — операции чтения и удаления конспектов.
type NoteStore interface {
	ListByClassSubject(ctx context.Context, class, subject string) ([]model.NoteRecord, error)
	ListBySubject(ctx context.Context, subject string) ([]model.NoteRecord, error)
	ListAll(ctx context.Context) ([]model.NoteRecord, error)
	GetByID(ctx context.Context, id int64) (model.NoteRecord, error)
	DeleteByID(ctx context.Context, id int64) error
}

// QuestionBankStore — операции чтения и удаления банков вопросов.
type QuestionBankStore interface {
	ListAll(ctx context.Context) ([]model.QuestionBankRow, error)
	GetByID(ctx context.Context, id int64) (model.QuestionBankRow, error)
	DeleteByID(ctx context.Context, id int64) error
}

// VideoStore — операции чтения и удаления видеозаписей.
type VideoStore interface {
	ListAll(ctx context.Context) ([]model.VideoRow, error)
	GetByID(ctx context.Context, id int64) (model.VideoRow, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ContentService — выборки и двухфазное удаление контента.
// Удаление: сначала БД (авторитетно), затем объектное хранилище
// (best effort — неудача пишется в лог, запрос не падает).
type ContentService struct {
	notes     NoteStore
	questions QuestionBankStore
	videos    VideoStore
	store     ObjectStore
	cache     *NotesCache
	logger    *slog.Logger
}

// NewContentService создаёт сервис контента.
func NewContentService(notes NoteStore, questions QuestionBankStore, videos VideoStore,
	store ObjectStore, cache *NotesCache, logger *slog.Logger) *ContentService {
	return &ContentService{
		notes:     notes,
		questions: questions,
		videos:    videos,
		store:     store,
		cache:     cache,
		logger:    logger.With(slog.String("component", "content_service")),
	}
}

// ListNotes возвращает конспекты по классу и предмету, новые первыми.
// Результат кэшируется.
func (s *ContentService) ListNotes(ctx context.Context, class, subject string) ([]model.NoteRecord, error) {
	if cached, ok := s.cache.Get(class, subject); ok {
		return cached, nil
	}

	notes, err := s.notes.ListByClassSubject(ctx, class, subject)
	if err != nil {
		return nil, err
	}
	s.cache.Set(class, subject, notes)
	return notes, nil
}

// ListNotesBySubject возвращает конспекты по предмету независимо
// от класса. Результат кэшируется с пустым классом в ключе.
func (s *ContentService) ListNotesBySubject(ctx context.Context, subject string) ([]model.NoteRecord, error) {
	if cached, ok := s.cache.Get("", subject); ok {
		return cached, nil
	}

	notes, err := s.notes.ListBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	s.cache.Set("", subject, notes)
	return notes, nil
}

// ListAllNotes возвращает все конспекты для вкладки управления контентом.
func (s *ContentService) ListAllNotes(ctx context.Context) ([]model.NoteRecord, error) {
	return s.notes.ListAll(ctx)
}

// ListAllQuestions возвращает все банки вопросов.
// Отсутствие таблицы — пустой список, а не ошибка.
func (s *ContentService) ListAllQuestions(ctx context.Context) ([]model.QuestionBankRow, error) {
	banks, err := s.questions.ListAll(ctx)
	if errors.Is(err, repository.ErrSchemaMissing) {
		s.logger.Info("Таблица question_banks ещё не создана")
		return []model.QuestionBankRow{}, nil
	}
	return banks, err
}

// ListAllVideos возвращает все видеозаписи.
// Отсутствие таблицы — пустой список, а не ошибка.
func (s *ContentService) ListAllVideos(ctx context.Context) ([]model.VideoRow, error) {
	videos, err := s.videos.ListAll(ctx)
	if errors.Is(err, repository.ErrSchemaMissing) {
		s.logger.Info("Таблица videos ещё не создана")
		return []model.VideoRow{}, nil
	}
	return videos, err
}

// DeleteNote удаляет конспект: сначала запись БД, затем объект
// в хранилище. Путь объекта восстанавливается из класса и предмета.
func (s *ContentService) DeleteNote(ctx context.Context, id int64) error {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrSchemaMissing) {
			return ErrNotFound
		}
		return err
	}

	if err := s.notes.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.cache.Purge()

	if note.FileURL != "" {
		path := fmt.Sprintf("notes/%s/%s/%d", note.Class, note.Subject, id)
		s.removeBestEffort(ctx, path)
	}

	s.logger.Info("Конспект удалён", slog.Int64("id", id))
	return nil
}

// DeleteQuestion удаляет банк вопросов. Отсутствие таблицы
// трактуется как успех: удалять нечего.
func (s *ContentService) DeleteQuestion(ctx context.Context, id int64) error {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchemaMissing) {
			s.logger.Info("Таблица question_banks ещё не создана")
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.questions.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if question.FileURL != "" {
		path := fmt.Sprintf("questions/%s/%s/%d", question.Class, question.Subject, id)
		s.removeBestEffort(ctx, path)
	}

	s.logger.Info("Банк вопросов удалён", slog.Int64("id", id))
	return nil
}

// DeleteVideo удаляет видеозапись. Файлов в хранилище у видео нет,
// удаляется только запись БД. Отсутствие таблицы — успех.
func (s *ContentService) DeleteVideo(ctx context.Context, id int64) error {
	_, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchemaMissing) {
			s.logger.Info("Таблица videos ещё не создана")
			return nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.videos.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.logger.Info("Видеозапись удалена", slog.Int64("id", id))
	return nil
}

// removeBestEffort удаляет объект из хранилища. Запись БД уже
// удалена, поэтому неудача только логируется.
func (s *ContentService) removeBestEffort(ctx context.Context, path string) {
	if err := s.store.Remove(ctx, []string{path}); err != nil {
		s.logger.Warn("Не удалось удалить объект из хранилища",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}

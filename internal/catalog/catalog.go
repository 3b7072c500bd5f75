// Пакет catalog — потокобезопасный in-memory каталог учебного контента:
// классы, предметы, вопросники и видеоуроки.
//
// Каталог живёт только в памяти процесса: заполняется стартовыми данными
// при создании и теряет все изменения при рестарте. Конспекты (notes)
// сюда не попадают — они хранятся в Metadata Repository.
//
// Использует sync.RWMutex для конкурентного чтения и эксклюзивной записи.
package catalog

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bigkaa/eduink/internal/domain/model"
)

// Store — in-memory каталог классов, предметов, вопросников и видео.
type Store struct {
	mu        sync.RWMutex
	classes   []string
	subjects  map[string][]string
	questions []model.QuestionRecord
	videos    []model.VideoRecord
	logger    *slog.Logger
}

// New создаёт каталог со стартовым набором классов и предметов.
func New(logger *slog.Logger) *Store {
	return &Store{
		classes: []string{"9th", "10th", "11th", "12th"},
		subjects: map[string][]string{
			"9th":  {"Mathematics", "Science", "Social Studies", "English", "Hindi"},
			"10th": {"Mathematics", "Science", "Social Studies", "English", "Hindi"},
			"11th": {"Physics", "Chemistry", "Biology", "Mathematics", "English"},
			"12th": {"Physics", "Chemistry", "Biology", "Mathematics", "English"},
		},
		logger: logger.With(slog.String("component", "catalog")),
	}
}

// Classes возвращает список классов в порядке добавления.
func (s *Store) Classes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.classes)
}

// Subjects возвращает предметы класса в порядке добавления.
// Второе значение — false, если класс неизвестен.
func (s *Store) Subjects(class string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects, ok := s.subjects[class]
	if !ok {
		return nil, false
	}
	return slices.Clone(subjects), true
}

// AddSubject добавляет предмет классу. Идемпотентна: повторное добавление
// той же пары (class, name) — no-op. Для неизвестного класса создаётся
// запись предметов; список классов при этом не меняется.
func (s *Store) AddSubject(class, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.subjects[class], name) {
		return
	}
	s.subjects[class] = append(s.subjects[class], name)

	s.logger.Info("Предмет добавлен",
		slog.String("class", class),
		slog.String("subject", name),
	)
}

// AllSubjects возвращает объединение предметов всех классов:
// отсортированный лексикографически список без дубликатов.
func (s *Store) AllSubjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, subjects := range s.subjects {
		for _, subject := range subjects {
			seen[subject] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for subject := range seen {
		result = append(result, subject)
	}
	sort.Strings(result)
	return result
}

// AddQuestion добавляет вопросник в каталог, назначая UUID и время
// загрузки. Возвращает сохранённую запись.
func (s *Store) AddQuestion(class, subject, title, fileURL, fileType string) model.QuestionRecord {
	rec := model.QuestionRecord{
		ID:         uuid.New().String(),
		Class:      class,
		Subject:    subject,
		Title:      title,
		FileURL:    fileURL,
		FileType:   fileType,
		UploadedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.questions = append(s.questions, rec)
	s.mu.Unlock()

	return rec
}

// Questions возвращает вопросники с предметом subject (без учёта регистра)
// и классом class (точное совпадение). Пустой срез — валидный результат.
func (s *Store) Questions(subject, class string) []model.QuestionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.QuestionRecord, 0)
	for _, q := range s.questions {
		if strings.EqualFold(q.Subject, subject) && q.Class == class {
			result = append(result, q)
		}
	}
	return result
}

// AddVideo добавляет видеоурок в каталог, назначая UUID и время добавления.
func (s *Store) AddVideo(class, subject, title, videoURL string) model.VideoRecord {
	rec := model.VideoRecord{
		ID:       uuid.New().String(),
		Class:    class,
		Subject:  subject,
		Title:    title,
		VideoURL: videoURL,
		AddedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.videos = append(s.videos, rec)
	s.mu.Unlock()

	return rec
}

// Videos возвращает видеоуроки с той же семантикой фильтра, что и Questions:
// предмет — без учёта регистра, класс — точное совпадение.
func (s *Store) Videos(subject, class string) []model.VideoRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.VideoRecord, 0)
	for _, v := range s.videos {
		if strings.EqualFold(v.Subject, subject) && v.Class == class {
			result = append(result, v)
		}
	}
	return result
}

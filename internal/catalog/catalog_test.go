package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"sync"
	"testing"
)

// testLogger возвращает логгер для тестов.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestClasses проверяет стартовый набор классов.
func TestClasses(t *testing.T) {
	s := New(testLogger())

	classes := s.Classes()
	expected := []string{"9th", "10th", "11th", "12th"}
	if !slices.Equal(classes, expected) {
		t.Errorf("Classes() = %v, ожидается %v", classes, expected)
	}
}

// TestSubjects проверяет стартовые предметы класса.
func TestSubjects(t *testing.T) {
	s := New(testLogger())

	subjects, ok := s.Subjects("9th")
	if !ok {
		t.Fatal("класс 9th должен существовать")
	}
	expected := []string{"Mathematics", "Science", "Social Studies", "English", "Hindi"}
	if !slices.Equal(subjects, expected) {
		t.Errorf("Subjects(9th) = %v, ожидается %v", subjects, expected)
	}
}

// TestSubjects_UnknownClass проверяет неизвестный класс.
func TestSubjects_UnknownClass(t *testing.T) {
	s := New(testLogger())

	if _, ok := s.Subjects("13th"); ok {
		t.Error("Subjects для неизвестного класса должен вернуть ok=false")
	}
}

// TestSubjects_ReturnsCopy проверяет, что Subjects возвращает копию.
func TestSubjects_ReturnsCopy(t *testing.T) {
	s := New(testLogger())

	subjects, _ := s.Subjects("9th")
	subjects[0] = "Изменено"

	again, _ := s.Subjects("9th")
	if again[0] == "Изменено" {
		t.Error("Subjects должен возвращать копию, а не внутренний срез")
	}
}

// TestAddSubject проверяет добавление нового предмета.
func TestAddSubject(t *testing.T) {
	s := New(testLogger())

	s.AddSubject("9th", "Computer Science")

	subjects, _ := s.Subjects("9th")
	if !slices.Contains(subjects, "Computer Science") {
		t.Errorf("предмет не добавлен: %v", subjects)
	}
}

// TestAddSubject_Idempotent проверяет идемпотентность AddSubject.
func TestAddSubject_Idempotent(t *testing.T) {
	s := New(testLogger())

	s.AddSubject("9th", "Computer Science")
	s.AddSubject("9th", "Computer Science")

	subjects, _ := s.Subjects("9th")
	count := 0
	for _, sub := range subjects {
		if sub == "Computer Science" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("предмет должен присутствовать ровно один раз, найдено %d", count)
	}
}

// TestAddSubject_UnknownClass проверяет создание записи для нового класса.
// Список классов при этом не меняется.
func TestAddSubject_UnknownClass(t *testing.T) {
	s := New(testLogger())

	s.AddSubject("13th", "Astronomy")

	subjects, ok := s.Subjects("13th")
	if !ok {
		t.Fatal("запись предметов для нового класса должна быть создана")
	}
	if !slices.Equal(subjects, []string{"Astronomy"}) {
		t.Errorf("Subjects(13th) = %v, ожидается [Astronomy]", subjects)
	}

	if slices.Contains(s.Classes(), "13th") {
		t.Error("AddSubject не должен изменять список классов")
	}
}

// TestAllSubjects проверяет сортировку и дедупликацию.
func TestAllSubjects(t *testing.T) {
	s := New(testLogger())

	all := s.AllSubjects()

	// Лексикографическая сортировка
	if !sort.IsSorted(sort.StringSlice(all)) {
		t.Errorf("AllSubjects не отсортирован: %v", all)
	}

	// Без дубликатов (Mathematics встречается во всех классах)
	seen := make(map[string]int)
	for _, sub := range all {
		seen[sub]++
	}
	for sub, n := range seen {
		if n > 1 {
			t.Errorf("предмет %q встречается %d раз", sub, n)
		}
	}

	// Union всех классов: 8 уникальных предметов в стартовых данных
	if len(all) != 8 {
		t.Errorf("ожидалось 8 уникальных предметов, получено %d: %v", len(all), all)
	}
}

// TestAddQuestion проверяет назначение ID и времени загрузки.
func TestAddQuestion(t *testing.T) {
	s := New(testLogger())

	rec := s.AddQuestion("9th", "Math", "Algebra Test", "https://cdn/x.pdf", "pdf")

	if rec.ID == "" {
		t.Error("ID должен быть назначен")
	}
	if rec.UploadedAt.IsZero() {
		t.Error("UploadedAt должен быть назначен")
	}

	rec2 := s.AddQuestion("9th", "Math", "Algebra Test", "https://cdn/x.pdf", "pdf")
	if rec2.ID == rec.ID {
		t.Error("ID двух записей не должны совпадать")
	}
}

// TestQuestions_Filter проверяет фильтр: предмет без учёта регистра,
// класс — точное совпадение.
func TestQuestions_Filter(t *testing.T) {
	s := New(testLogger())

	s.AddQuestion("9th", "Math", "t1", "u1", "pdf")
	s.AddQuestion("10th", "math", "t2", "u2", "image")

	got := s.Questions("math", "9th")
	if len(got) != 1 {
		t.Fatalf("ожидалась 1 запись, получено %d", len(got))
	}
	if got[0].Title != "t1" {
		t.Errorf("ожидалась запись t1, получена %s", got[0].Title)
	}

	// Класс без записей
	if got := s.Questions("math", "11th"); len(got) != 0 {
		t.Errorf("ожидался пустой результат, получено %d записей", len(got))
	}
}

// TestVideos_Filter проверяет фильтр видеоуроков.
func TestVideos_Filter(t *testing.T) {
	s := New(testLogger())

	s.AddVideo("9th", "Science", "v1", "https://video/1")
	s.AddVideo("9th", "science", "v2", "https://video/2")
	s.AddVideo("10th", "Science", "v3", "https://video/3")

	got := s.Videos("SCIENCE", "9th")
	if len(got) != 2 {
		t.Errorf("ожидалось 2 записи, получено %d", len(got))
	}
}

// TestConcurrentAccess проверяет потокобезопасность каталога.
// Запускать с go test -race для обнаружения data races.
func TestConcurrentAccess(t *testing.T) {
	s := New(testLogger())

	var wg sync.WaitGroup
	const goroutines = 50

	wg.Add(goroutines * 3)

	// Писатели — AddSubject / AddQuestion / AddVideo
	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			s.AddSubject("9th", fmt.Sprintf("Subject-%d", id))
			s.AddQuestion("9th", "Math", fmt.Sprintf("q-%d", id), "u", "pdf")
			s.AddVideo("9th", "Math", fmt.Sprintf("v-%d", id), "u")
		}(i)
	}

	// Читатели — списки
	for range goroutines {
		go func() {
			defer wg.Done()
			for range 50 {
				s.Classes()
				s.AllSubjects()
				s.Questions("math", "9th")
			}
		}()
	}

	// Читатели — Subjects / Videos
	for range goroutines {
		go func() {
			defer wg.Done()
			for range 50 {
				s.Subjects("9th")
				s.Videos("math", "9th")
			}
		}()
	}

	wg.Wait()

	if got := s.Questions("math", "9th"); len(got) != goroutines {
		t.Errorf("ожидалось %d вопросников, получено %d", goroutines, len(got))
	}
}

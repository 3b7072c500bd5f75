// Пакет service — бизнес-логика портала учебных материалов:
// загрузка файлов, каталоги контента, двухфазное удаление.
package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/eduink/internal/domain/model"
)

// Prometheus-метрики кэша списков конспектов.
var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eduink_notes_cache_hits_total",
		Help: "Общее количество попаданий в LRU-кэш списков конспектов.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eduink_notes_cache_misses_total",
		Help: "Общее количество промахов LRU-кэша списков конспектов.",
	})
)

// NotesCache — LRU-кэш результатов выборки конспектов с TTL.
// Ключ — пара «класс|предмет». Мутации (загрузка, удаление)
// полностью сбрасывают кэш.
type NotesCache struct {
	cache *expirable.LRU[string, []model.NoteRecord]
}

// NewNotesCache создаёт LRU-кэш с указанным максимальным размером и TTL.
func NewNotesCache(maxSize int, ttl time.Duration) *NotesCache {
	cache := expirable.NewLRU[string, []model.NoteRecord](maxSize, nil, ttl)
	return &NotesCache{cache: cache}
}

// cacheKey строит ключ кэша для пары класс/предмет.
// Пустой класс означает выборку только по предмету.
func cacheKey(class, subject string) string {
	return class + "|" + subject
}

// Get возвращает закэшированный список конспектов.
// Обновляет Prometheus-метрики hit/miss.
func (c *NotesCache) Get(class, subject string) ([]model.NoteRecord, bool) {
	val, ok := c.cache.Get(cacheKey(class, subject))
	if ok {
		cacheHitsTotal.Inc()
		return val, true
	}
	cacheMissesTotal.Inc()
	return nil, false
}

// Set сохраняет список конспектов в кэше.
func (c *NotesCache) Set(class, subject string, notes []model.NoteRecord) {
	c.cache.Add(cacheKey(class, subject), notes)
}

// Purge сбрасывает весь кэш. Вызывается после любой мутации конспектов.
func (c *NotesCache) Purge() {
	c.cache.Purge()
}

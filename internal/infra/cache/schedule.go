package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

// entry закэшированная выдача трансформации с отметкой времени
type entry struct {
	scheduleType domain.ScheduleType
	days         []domain.DaySchedule
	cachedAt     time.Time
}

// ScheduleCache LRU кэш трансформированных расписаний с TTL
// Ключ — учреждение + тип агенды: выдача еженедельной стратегии зависит
// от текущего дня, поэтому TTL держится коротким
type ScheduleCache struct {
	cache   *lru.Cache[string, *entry]
	ttl     time.Duration
	lookups *prometheus.CounterVec
}

// NewScheduleCache создает новый кэш расписаний
// lookups может быть nil, тогда метрики не собираются
func NewScheduleCache(size int, ttl time.Duration, lookups *prometheus.CounterVec) (*ScheduleCache, error) {
	c, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to init lru: %w", err)
	}

	return &ScheduleCache{
		cache:   c,
		ttl:     ttl,
		lookups: lookups,
	}, nil
}

// Key строит ключ кэша из учреждения и типа агенды
func Key(establishmentID int64, scheduleType domain.ScheduleType) string {
	return fmt.Sprintf("%d:%s", establishmentID, scheduleType)
}

// Get возвращает закэшированную выдачу, если она есть и не устарела
func (c *ScheduleCache) Get(key string) (domain.ScheduleType, []domain.DaySchedule, bool) {
	e, ok := c.cache.Get(key)
	if !ok {
		c.observe("miss")
		return "", nil, false
	}

	if time.Since(e.cachedAt) > c.ttl {
		c.cache.Remove(key)
		c.observe("expired")
		return "", nil, false
	}

	c.observe("hit")
	return e.scheduleType, e.days, true
}

// Put сохраняет выдачу трансформации в кэш
func (c *ScheduleCache) Put(key string, scheduleType domain.ScheduleType, days []domain.DaySchedule) {
	c.cache.Add(key, &entry{
		scheduleType: scheduleType,
		days:         days,
		cachedAt:     time.Now(),
	})
}

// Purge полностью очищает кэш
func (c *ScheduleCache) Purge() {
	c.cache.Purge()
}

func (c *ScheduleCache) observe(outcome string) {
	if c.lookups != nil {
		c.lookups.WithLabelValues(outcome).Inc()
	}
}

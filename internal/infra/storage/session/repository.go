package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Repository хранилище сессий бронирования в памяти процесса
// Сессии не переживают рестарт сервиса: долговременное состояние живет
// в удаленных сервисах (каталог цен, корзина), здесь только незавершенный выбор
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	log      Logger
}

// NewRepository создает новый экземпляр хранилища сессий
func NewRepository(ttl time.Duration, log Logger) *Repository {
	return &Repository{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		log:      log,
	}
}

// Create создает новую пустую сессию для пользователя
func (r *Repository) Create(ctx context.Context, userID int64) (*domain.Session, error) {
	now := time.Now()

	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CartItems: []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return copySession(s), nil
}

// Get возвращает копию сессии по ID
// Истекшие сессии считаются не найденными
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok || s.IsExpired(time.Now(), r.ttl) {
		return nil, ErrSessionNotFound
	}

	return copySession(s), nil
}

// Update выполняет fn над сессией под блокировкой хранилища
// Все мутации состояния сессии проходят только через этот метод:
// это единственная точка сериализации конкурентных запросов одной сессии
func (r *Repository) Update(ctx context.Context, id string, fn func(s *domain.Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.IsExpired(time.Now(), r.ttl) {
		return ErrSessionNotFound
	}

	if err := fn(s); err != nil {
		return err
	}

	s.UpdatedAt = time.Now()
	return nil
}

// Delete удаляет сессию
// Удаление несуществующей сессии не является ошибкой
func (r *Repository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len возвращает текущее количество сессий (включая истекшие, но еще не убранные)
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// StartJanitor запускает фоновую уборку истекших сессий
// Останавливается закрытием stopCh
func (r *Repository) StartJanitor(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.reapExpired()
			case <-stopCh:
				return
			}
		}
	}()
}

func (r *Repository) reapExpired() {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.IsExpired(now, r.ttl) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.log.Info("session janitor: removed %d expired sessions, %d remaining", removed, len(r.sessions))
	}
}

// copySession возвращает копию сессии с независимым срезом позиций
// Указатель на исходную запись расписания внутри слота разделяется:
// записи расписания по контракту не мутируются
func copySession(s *domain.Session) *domain.Session {
	cp := *s
	cp.CartItems = make([]domain.CartItem, len(s.CartItems))
	copy(cp.CartItems, s.CartItems)
	return &cp
}

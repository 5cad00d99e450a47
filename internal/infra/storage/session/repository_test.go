package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})

	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(7), created.UserID)
	assert.NotNil(t, created.CartItems)
	assert.False(t, created.IsAddingToCart)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(7), got.UserID)
}

func TestGet_NotFound(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	// Мутация копии не трогает хранилище
	got.CartItems = append(got.CartItems, domain.CartItem{FkTabelaPrecoItem: 1})
	got.UserID = 999

	fresh, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.CartItems)
	assert.Equal(t, int64(7), fresh.UserID)
}

func TestUpdate(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	err = repo.Update(context.Background(), created.ID, func(s *domain.Session) error {
		s.CartItems = append(s.CartItems, domain.CartItem{FkTabelaPrecoItem: 100})
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.CartItems, 1)
	assert.Equal(t, int64(100), got.CartItems[0].FkTabelaPrecoItem)
}

func TestUpdate_PropagatesFnError(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = repo.Update(context.Background(), created.ID, func(s *domain.Session) error {
		s.CartItems = append(s.CartItems, domain.CartItem{FkTabelaPrecoItem: 1})
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})

	err := repo.Update(context.Background(), "missing", func(s *domain.Session) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdate_Concurrent(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = repo.Update(context.Background(), created.ID, func(s *domain.Session) error {
				s.CartItems = append(s.CartItems, domain.CartItem{})
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, got.CartItems, workers)
}

func TestDelete(t *testing.T) {
	repo := NewRepository(time.Hour, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	repo.Delete(context.Background(), created.ID)

	_, err = repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторное удаление не падает
	repo.Delete(context.Background(), created.ID)
}

func TestExpiredSessionIsNotFound(t *testing.T) {
	repo := NewRepository(time.Millisecond, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = repo.Update(context.Background(), created.ID, func(s *domain.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateProlongsSession(t *testing.T) {
	repo := NewRepository(50*time.Millisecond, &testLogger{})
	created, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	// Регулярные обновления держат сессию живой дольше TTL
	for i := 0; i < 4; i++ {
		time.Sleep(20 * time.Millisecond)
		err = repo.Update(context.Background(), created.ID, func(s *domain.Session) error { return nil })
		require.NoError(t, err)
	}

	_, err = repo.Get(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestJanitorReapsExpired(t *testing.T) {
	repo := NewRepository(time.Millisecond, &testLogger{})
	_, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)

	stopCh := make(chan struct{})
	repo.StartJanitor(5*time.Millisecond, stopCh)
	defer close(stopCh)

	require.Eventually(t, func() bool {
		return repo.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

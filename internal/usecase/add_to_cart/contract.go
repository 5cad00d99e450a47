package add_to_cart

import (
	"context"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Update выполняет fn над сессией под блокировкой хранилища
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) error
}

// CartServiceClient интерфейс клиента сервиса корзины
type CartServiceClient interface {
	AddItems(ctx context.Context, fkPaciente int64, itens []domain.CartItem) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

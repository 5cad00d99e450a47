package cart

import (
	"context"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	"github.com/octadev42/Medgospel-SchedulingService/internal/integrations/cartservice"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Create(ctx context.Context, userID int64) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) error
	Delete(ctx context.Context, id string)
}

// CartServiceClient интерфейс клиента сервиса корзины
type CartServiceClient interface {
	CreateOrder(ctx context.Context, fkPaciente int64, itens []domain.CartItem) (*cartservice.OrderResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

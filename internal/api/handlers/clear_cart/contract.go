package clear_cart

import (
	"context"

	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart/models"
)

type CartService interface {
	ClearCart(ctx context.Context, sessionID string, userID int64) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

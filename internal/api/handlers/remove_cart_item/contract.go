package remove_cart_item

import (
	"context"

	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart/models"
)

type CartService interface {
	RemoveFromCart(ctx context.Context, sessionID string, userID int64, index int) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

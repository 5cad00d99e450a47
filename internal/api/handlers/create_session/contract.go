package create_session

import (
	"context"

	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart/models"
)

type CartService interface {
	CreateSession(ctx context.Context, userID int64) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

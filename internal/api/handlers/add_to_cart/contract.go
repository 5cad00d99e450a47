package add_to_cart

import (
	"context"

	addToCart "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/add_to_cart"
)

type AddToCartUseCase interface {
	Execute(ctx context.Context, req *addToCart.Request) (*addToCart.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package add_to_cart

import (
	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	addToCart "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/add_to_cart"
)

// AddToCartResponse HTTP ответ с добавленной позицией и состоянием корзины
type AddToCartResponse struct {
	Item      domain.CartItem   `json:"item"`
	CartItems []domain.CartItem `json:"cart_items"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *addToCart.Response) *AddToCartResponse {
	items := resp.CartItems
	if items == nil {
		items = []domain.CartItem{}
	}

	return &AddToCartResponse{
		Item:      resp.Item,
		CartItems: items,
	}
}

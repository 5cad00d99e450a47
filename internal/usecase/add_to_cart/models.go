package add_to_cart

import "github.com/octadev42/Medgospel-SchedulingService/internal/domain"

// Request модель запроса на добавление выбранного слота в корзину
type Request struct {
	UserID    int64  // ID пользователя (владелец сессии)
	SessionID string // ID сессии бронирования
}

// Response модель ответа с добавленной позицией и состоянием корзины
type Response struct {
	Item      domain.CartItem   // Отправленная позиция
	CartItems []domain.CartItem // Все позиции корзины после добавления
}

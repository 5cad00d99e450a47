package domain

import "time"

// Session сессия бронирования одного клиента
// Живет только в памяти процесса и истекает по TTL
type Session struct {
	ID     string
	UserID int64

	Selection      CartSelection
	IsAddingToCart bool       // флаг запроса в полете, выставляется только AddToCart
	CartItems      []CartItem // уже отправленные в корзину позиции, очищаются при оформлении заказа

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired проверяет, что сессия не использовалась дольше ttl
func (s *Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.UpdatedAt) > ttl
}

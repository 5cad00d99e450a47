package cartservice

import "github.com/octadev42/Medgospel-SchedulingService/internal/domain"

// AddItemsRequest запрос на добавление позиций в корзину пациента
type AddItemsRequest struct {
	FkPaciente int64             `json:"fk_paciente"`
	Itens      []domain.CartItem `json:"itens"`
}

// CreateOrderRequest запрос на оформление заказа из накопленных позиций
type CreateOrderRequest struct {
	FkPaciente int64             `json:"fk_paciente"`
	Itens      []domain.CartItem `json:"itens"`
}

// OrderResponse ответ сервиса корзины на оформление заказа
type OrderResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от сервиса корзины
// Message показывается пользователю как есть
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package cartservice

import (
	"errors"
	"fmt"
)

var (
	// ErrPacienteNotFound возвращается, когда пациент не найден
	ErrPacienteNotFound = errors.New("paciente not found")

	// ErrItemRejected возвращается, когда сервис корзины отклонил позицию
	// Текст ошибки содержит сообщение сервера, его можно показать пользователю
	ErrItemRejected = errors.New("cart service rejected the item")

	// ErrOrderRejected возвращается, когда сервис корзины отклонил оформление заказа
	ErrOrderRejected = errors.New("cart service rejected the order")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cartservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса корзины
	ErrInvalidResponse = errors.New("cartservice client: invalid response")
)

// RejectionError ошибка отклонения запроса сервисом корзины
// Несет серверное сообщение, которое показывается пользователю как есть
type RejectionError struct {
	Op      error // ErrItemRejected или ErrOrderRejected
	Message string
}

// Error возвращает текст ошибки
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Op, e.Message)
}

// Unwrap поддерживает errors.Is по виду операции
func (e *RejectionError) Unwrap() error {
	return e.Op
}

package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("cart service: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("cart service: access denied")

	// ErrEmptyCart возвращается при попытке оформить заказ из пустой корзины
	ErrEmptyCart = errors.New("cart service: cart is empty")

	// ErrMissingPaciente возвращается, когда для заказа не выбран пациент
	ErrMissingPaciente = errors.New("cart service: paciente is not selected")

	// ErrOrderRejected возвращается, когда сервис корзины отклонил заказ
	ErrOrderRejected = errors.New("cart service: order rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cart service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart service: internal error")
)

// OrderRejectionError ошибка отклонения заказа с серверным сообщением для пользователя
type OrderRejectionError struct {
	Message string
}

// Error возвращает текст ошибки
func (e *OrderRejectionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOrderRejected, e.Message)
}

// Unwrap поддерживает errors.Is(err, ErrOrderRejected)
func (e *OrderRejectionError) Unwrap() error {
	return ErrOrderRejected
}

package add_to_cart

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("add_to_cart: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("add_to_cart: access denied")

	// ErrMissingRequiredFields возвращается, когда выбор не полон
	// Сетевой запрос в этом случае не выполняется
	ErrMissingRequiredFields = errors.New("add_to_cart: missing required fields")

	// ErrAddInProgress возвращается, когда по этой сессии уже идет добавление в корзину
	ErrAddInProgress = errors.New("add_to_cart: add to cart already in progress")

	// ErrPacienteNotFound возвращается, когда сервис корзины не знает пациента
	ErrPacienteNotFound = errors.New("add_to_cart: paciente not found")

	// ErrItemRejected возвращается, когда сервис корзины отклонил позицию
	ErrItemRejected = errors.New("add_to_cart: item rejected by cart service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_to_cart: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_to_cart: internal error")
)

// RejectionError ошибка отклонения позиции с серверным сообщением для пользователя
type RejectionError struct {
	Message string
}

// Error возвращает текст ошибки
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrItemRejected, e.Message)
}

// Unwrap поддерживает errors.Is(err, ErrItemRejected)
func (e *RejectionError) Unwrap() error {
	return ErrItemRejected
}

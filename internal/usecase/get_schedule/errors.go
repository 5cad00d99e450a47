package get_schedule

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда учреждение не найдено в каталоге
	ErrEstablishmentNotFound = errors.New("get_schedule: establishment not found")

	// ErrItemNotFound возвращается, когда запрошенная позиция каталога не найдена
	ErrItemNotFound = errors.New("get_schedule: price table item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)

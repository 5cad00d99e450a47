package pricetable

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда учреждение не найдено в каталоге
	ErrEstablishmentNotFound = errors.New("establishment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricetable client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога цен
	ErrInvalidResponse = errors.New("pricetable client: invalid response")
)

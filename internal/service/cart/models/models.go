package models

import (
	"time"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

// Request модели

// UpdateSelectionRequest частичное обновление выбора
// Применяются только переданные поля, сброса через null нет:
// для очистки выбора есть отдельная операция reset
type UpdateSelectionRequest struct {
	TimeSlot        *domain.TimeSlot `json:"time_slot,omitempty"`
	Date            *string          `json:"date,omitempty"` // ISO дата YYYY-MM-DD
	PacienteID      *int64           `json:"paciente_id,omitempty"`
	TabelaPrecoItem *int64           `json:"tabela_preco_item,omitempty"`
	Valor           *string          `json:"valor,omitempty"`
}

// Response модели

// SessionResponse созданная сессия бронирования
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartResponse текущее состояние выбора и корзины сессии
type CartResponse struct {
	SessionID         string               `json:"session_id"`
	Selection         domain.CartSelection `json:"selection"`
	HasRequiredFields bool                 `json:"has_required_fields"`
	CartItemToAdd     *domain.CartItem     `json:"cart_item_to_add"`
	IsAddingToCart    bool                 `json:"is_adding_to_cart"`
	CartItems         []domain.CartItem    `json:"cart_items"`
}

// OrderResponse результат оформления заказа
type OrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// FromDomainSession собирает ответ с состоянием корзины из сессии
func FromDomainSession(s *domain.Session) *CartResponse {
	return &CartResponse{
		SessionID:         s.ID,
		Selection:         s.Selection,
		HasRequiredFields: s.Selection.HasRequiredFieldsForCart(),
		CartItemToAdd:     s.Selection.CartItemToAdd(),
		IsAddingToCart:    s.IsAddingToCart,
		CartItems:         s.CartItems,
	}
}

package domain

// CartItem позиция корзины в формате, который принимает сервис корзины
type CartItem struct {
	FkTabelaPrecoItem        int64  `json:"fk_tabela_preco_item"`
	FkTabelaPrecoItemHorario int64  `json:"fk_tabela_preco_item_horario"`
	Quantidade               int    `json:"quantidade"`
	DataAgendada             string `json:"data_agendada"`
	Valor                    string `json:"valor"`
}

// CartSelection незавершенный выбор пользователя: слот, дата, пациент, позиция каталога и цена
// Поля заполняются независимыми сеттерами без валидации, полнота проверяется производными методами
type CartSelection struct {
	SelectedTimeSlot        *TimeSlot `json:"selected_time_slot,omitempty"`
	SelectedDate            *string   `json:"selected_date,omitempty"` // ISO дата
	SelectedPacienteID      *int64    `json:"selected_paciente_id,omitempty"`
	SelectedTabelaPrecoItem *int64    `json:"selected_tabela_preco_item,omitempty"`
	SelectedValor           *string   `json:"selected_valor,omitempty"` // decimal-as-string
}

// HasRequiredFieldsForCart проверяет, что выбор полон и позицию можно добавить в корзину
// Дата не входит в обязательные поля: бэкенд принимает позицию и без data_agendada
func (s *CartSelection) HasRequiredFieldsForCart() bool {
	if s.SelectedTimeSlot == nil ||
		s.SelectedTimeSlot.OriginalData == nil ||
		!s.SelectedTimeSlot.OriginalData.HasCatalogItem() {
		return false
	}
	if s.SelectedPacienteID == nil {
		return false
	}
	if s.SelectedTabelaPrecoItem == nil {
		return false
	}
	if s.SelectedValor == nil || *s.SelectedValor == "" {
		return false
	}
	return true
}

// CartItemToAdd возвращает позицию для отправки в корзину
// nil, пока выбор не полон
func (s *CartSelection) CartItemToAdd() *CartItem {
	if !s.HasRequiredFieldsForCart() {
		return nil
	}

	var dataAgendada string
	if s.SelectedDate != nil {
		dataAgendada = *s.SelectedDate
	}

	return &CartItem{
		FkTabelaPrecoItem:        *s.SelectedTabelaPrecoItem,
		FkTabelaPrecoItemHorario: *s.SelectedTimeSlot.OriginalData.FkTabelaPrecoItemHorario,
		Quantidade:               DefaultCartQuantity,
		DataAgendada:             dataAgendada,
		Valor:                    *s.SelectedValor,
	}
}

// Reset очищает слот, дату, позицию каталога и цену
// Пациент сохраняется: в рамках одной сессии обычно бронируют несколько услуг на одного пациента
func (s *CartSelection) Reset() {
	s.SelectedTimeSlot = nil
	s.SelectedDate = nil
	s.SelectedTabelaPrecoItem = nil
	s.SelectedValor = nil
}

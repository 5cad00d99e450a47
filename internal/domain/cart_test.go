package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSelection() CartSelection {
	fk := int64(555)
	date := "2025-07-15"
	paciente := int64(33)
	item := int64(100)
	valor := "150.00"

	return CartSelection{
		SelectedTimeSlot: &TimeSlot{
			ID:           "2025-07-15-555",
			OriginalData: &ScheduleRecord{FkTabelaPrecoItemHorario: &fk},
		},
		SelectedDate:            &date,
		SelectedPacienteID:      &paciente,
		SelectedTabelaPrecoItem: &item,
		SelectedValor:           &valor,
	}
}

func TestHasRequiredFieldsForCart(t *testing.T) {
	s := fullSelection()
	assert.True(t, s.HasRequiredFieldsForCart())

	// Дата не обязательна
	s = fullSelection()
	s.SelectedDate = nil
	assert.True(t, s.HasRequiredFieldsForCart())

	s = fullSelection()
	s.SelectedTimeSlot = nil
	assert.False(t, s.HasRequiredFieldsForCart())

	// Слот без привязки к каталогу не годится
	s = fullSelection()
	s.SelectedTimeSlot.OriginalData = &ScheduleRecord{}
	assert.False(t, s.HasRequiredFieldsForCart())

	s = fullSelection()
	s.SelectedTimeSlot.OriginalData = nil
	assert.False(t, s.HasRequiredFieldsForCart())

	s = fullSelection()
	s.SelectedPacienteID = nil
	assert.False(t, s.HasRequiredFieldsForCart())

	s = fullSelection()
	s.SelectedTabelaPrecoItem = nil
	assert.False(t, s.HasRequiredFieldsForCart())

	s = fullSelection()
	s.SelectedValor = nil
	assert.False(t, s.HasRequiredFieldsForCart())

	empty := ""
	s = fullSelection()
	s.SelectedValor = &empty
	assert.False(t, s.HasRequiredFieldsForCart())
}

func TestCartItemToAdd(t *testing.T) {
	s := fullSelection()

	item := s.CartItemToAdd()
	require.NotNil(t, item)
	assert.Equal(t, int64(100), item.FkTabelaPrecoItem)
	assert.Equal(t, int64(555), item.FkTabelaPrecoItemHorario)
	assert.Equal(t, DefaultCartQuantity, item.Quantidade)
	assert.Equal(t, "2025-07-15", item.DataAgendada)
	assert.Equal(t, "150.00", item.Valor)
}

func TestCartItemToAdd_IncompleteSelection(t *testing.T) {
	s := fullSelection()
	s.SelectedValor = nil
	assert.Nil(t, s.CartItemToAdd())
}

func TestCartItemToAdd_WithoutDate(t *testing.T) {
	s := fullSelection()
	s.SelectedDate = nil

	item := s.CartItemToAdd()
	require.NotNil(t, item)
	assert.Equal(t, "", item.DataAgendada)
}

func TestReset_KeepsPaciente(t *testing.T) {
	s := fullSelection()
	s.Reset()

	assert.Nil(t, s.SelectedTimeSlot)
	assert.Nil(t, s.SelectedDate)
	assert.Nil(t, s.SelectedTabelaPrecoItem)
	assert.Nil(t, s.SelectedValor)
	require.NotNil(t, s.SelectedPacienteID)
	assert.Equal(t, int64(33), *s.SelectedPacienteID)
}

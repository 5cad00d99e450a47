package pricetable

import "github.com/octadev42/Medgospel-SchedulingService/internal/domain"

// TabelaPrecoResponse каталог цен учреждения: позиции услуг с расписаниями
type TabelaPrecoResponse struct {
	Estabelecimento Estabelecimento   `json:"estabelecimento"`
	Itens           []TabelaPrecoItem `json:"itens"`
}

// Estabelecimento учреждение из каталога цен
type Estabelecimento struct {
	ID           int64  `json:"id"`
	NomeFantasia string `json:"nome_fantasia"`
	TipoAgenda   string `json:"tipo_agenda"` // тег типа агенды (AGENDA_CLINICA и т.д.)
}

// TabelaPrecoItem позиция каталога цен с привязанными слотами расписания
type TabelaPrecoItem struct {
	ID                  int64                   `json:"id"`
	Descricao           string                  `json:"descricao"`
	Valor               string                  `json:"valor"` // decimal-as-string
	TipoAgenda          string                  `json:"tipo_agenda,omitempty"`
	HorariosTabelaPreco []domain.ScheduleRecord `json:"horarios_tabela_preco"`
}

// ErrorResponse модель ошибки от каталога цен
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package get_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	"github.com/octadev42/Medgospel-SchedulingService/internal/infra/cache"
	priceClient "github.com/octadev42/Medgospel-SchedulingService/internal/integrations/pricetable"
)

// UseCase use case для получения расписания учреждения по дням
type UseCase struct {
	priceTableClient PriceTableClient
	scheduleCache    ScheduleCache
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// scheduleCache может быть nil, тогда кэширование отключено
func NewUseCase(
	priceTableClient PriceTableClient,
	scheduleCache ScheduleCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		priceTableClient: priceTableClient,
		scheduleCache:    scheduleCache,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: user=%d, establishment=%d, item=%v, type=%q",
		req.UserID, req.EstablishmentID, req.ItemID, req.ScheduleType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем кэш
	// Кэшируется только полная выдача: запрос одной позиции каталога идет мимо кэша
	cacheKey := cache.Key(req.EstablishmentID, domain.ScheduleType(req.ScheduleType))
	if uc.scheduleCache != nil && req.ItemID == nil {
		if cachedType, days, ok := uc.scheduleCache.Get(cacheKey); ok {
			uc.logger.Info("GetSchedule: cache hit for establishment=%d", req.EstablishmentID)
			return &Response{
				EstablishmentID: req.EstablishmentID,
				ScheduleType:    cachedType,
				Days:            days,
			}, nil
		}
	}

	// 3. Получаем каталог цен учреждения
	tabela, err := uc.priceTableClient.GetTabelaPreco(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, priceClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("GetSchedule: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("GetSchedule: failed to get price table for establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get price table: %v", ErrInternal, err)
	}

	// 4. Отбираем позиции каталога и собираем их записи расписания
	records, itemType, err := collectRecords(tabela, req.ItemID)
	if err != nil {
		uc.logger.Warn("GetSchedule: item id=%v not found in establishment id=%d", req.ItemID, req.EstablishmentID)
		return nil, err
	}

	// 5. Определяем тип агенды: явный тег запроса приоритетнее каталога
	rawType := req.ScheduleType
	if rawType == "" {
		rawType = itemType
	}
	if rawType == "" {
		rawType = tabela.Estabelecimento.TipoAgenda
	}
	scheduleType := domain.ParseScheduleType(rawType)

	// 6. Трансформируем записи в дни со слотами
	now := uc.timeProvider.Now()
	days := TransformSchedule(scheduleType, records, now, uc.logger)

	// 7. Кэшируем полную выдачу
	if uc.scheduleCache != nil && req.ItemID == nil {
		uc.scheduleCache.Put(cacheKey, scheduleType, days)
	}

	uc.logger.Info("GetSchedule: built %d days from %d records for establishment=%d (type=%s)",
		len(days), len(records), req.EstablishmentID, scheduleType)

	return &Response{
		EstablishmentID: req.EstablishmentID,
		ScheduleType:    scheduleType,
		Days:            days,
	}, nil
}

// collectRecords собирает записи расписания из позиций каталога
// Если itemID задан, берется только эта позиция и ее собственный тег типа агенды
func collectRecords(tabela *priceClient.TabelaPrecoResponse, itemID *int64) ([]domain.ScheduleRecord, string, error) {
	if itemID != nil {
		for _, item := range tabela.Itens {
			if item.ID == *itemID {
				return item.HorariosTabelaPreco, item.TipoAgenda, nil
			}
		}
		return nil, "", ErrItemNotFound
	}

	var records []domain.ScheduleRecord
	for _, item := range tabela.Itens {
		records = append(records, item.HorariosTabelaPreco...)
	}
	return records, "", nil
}

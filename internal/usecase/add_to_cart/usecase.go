package add_to_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	sessionRepo "github.com/octadev42/Medgospel-SchedulingService/internal/infra/storage/session"
	cartClient "github.com/octadev42/Medgospel-SchedulingService/internal/integrations/cartservice"
)

// UseCase use case для добавления выбранного слота в удаленную корзину
type UseCase struct {
	sessionRepo SessionRepository
	cartClient  CartServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	cartClient CartServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		cartClient:  cartClient,
		logger:      logger,
	}
}

// Execute выполняет use case добавления в корзину
// Повторный вызов по той же сессии во время запроса в полете отклоняется сразу:
// флаг isAddingToCart здесь настоящий барьер, а не только подсказка для UI
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddToCart: user=%d, session=%s", req.UserID, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddToCart: validation failed: %v", err)
		return nil, err
	}

	// 2. Атомарно проверяем полноту выбора и захватываем флаг запроса в полете
	var (
		item       domain.CartItem
		fkPaciente int64
	)

	err := uc.sessionRepo.Update(ctx, req.SessionID, func(s *domain.Session) error {
		if s.UserID != req.UserID {
			return ErrAccessDenied
		}
		if s.IsAddingToCart {
			return ErrAddInProgress
		}

		pending := s.Selection.CartItemToAdd()
		if pending == nil {
			return ErrMissingRequiredFields
		}

		item = *pending
		fkPaciente = *s.Selection.SelectedPacienteID
		s.IsAddingToCart = true
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("AddToCart: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Warn("AddToCart: precondition failed for session %s: %v", req.SessionID, err)
		return nil, err
	}

	// 3. Гарантированно снимаем флаг на любом пути выхода
	// Отдельный контекст: флаг должен сброситься даже при отмене исходного запроса
	defer func() {
		clearErr := uc.sessionRepo.Update(context.WithoutCancel(ctx), req.SessionID, func(s *domain.Session) error {
			s.IsAddingToCart = false
			return nil
		})
		if clearErr != nil && !errors.Is(clearErr, sessionRepo.ErrSessionNotFound) {
			uc.logger.Error("AddToCart: failed to clear in-flight flag for session %s: %v", req.SessionID, clearErr)
		}
	}()

	// 4. Ровно один POST в сервис корзины
	if err := uc.cartClient.AddItems(ctx, fkPaciente, []domain.CartItem{item}); err != nil {
		switch {
		case errors.Is(err, cartClient.ErrPacienteNotFound):
			uc.logger.Warn("AddToCart: paciente id=%d not found", fkPaciente)
			return nil, ErrPacienteNotFound

		case errors.Is(err, cartClient.ErrItemRejected):
			// Серверное сообщение поднимается наверх, выбор остается нетронутым для повтора
			var rej *cartClient.RejectionError
			if errors.As(err, &rej) {
				uc.logger.Warn("AddToCart: item rejected for session %s: %s", req.SessionID, rej.Message)
				return nil, &RejectionError{Message: rej.Message}
			}
			uc.logger.Warn("AddToCart: item rejected for session %s: %v", req.SessionID, err)
			return nil, &RejectionError{Message: "item rejected"}

		default:
			uc.logger.Error("AddToCart: cart service call failed for session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: cart service call failed: %v", ErrInternal, err)
		}
	}

	// 5. Успех: добавляем позицию в локальный список и сбрасываем выбор
	var cartItems []domain.CartItem
	err = uc.sessionRepo.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.CartItems = append(s.CartItems, item)
		s.Selection.Reset()

		cartItems = make([]domain.CartItem, len(s.CartItems))
		copy(cartItems, s.CartItems)
		return nil
	})
	if err != nil {
		uc.logger.Error("AddToCart: failed to record added item for session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to record added item: %v", ErrInternal, err)
	}

	uc.logger.Info("AddToCart: item added for session %s (fk_item=%d, fk_horario=%d), cart size=%d",
		req.SessionID, item.FkTabelaPrecoItem, item.FkTabelaPrecoItemHorario, len(cartItems))

	return &Response{
		Item:      item,
		CartItems: cartItems,
	}, nil
}

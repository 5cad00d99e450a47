package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	sessionRepo "github.com/octadev42/Medgospel-SchedulingService/internal/infra/storage/session"
	cartClient "github.com/octadev42/Medgospel-SchedulingService/internal/integrations/cartservice"
	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart/models"
)

// Service сервис для работы с выбором слота и локальной корзиной сессии
type Service struct {
	sessionRepo SessionRepository
	cartClient  CartServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(
	sessionRepo SessionRepository,
	cartClient CartServiceClient,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		cartClient:  cartClient,
		logger:      logger,
	}
}

// CreateSession создает новую сессию бронирования для пользователя
func (s *Service) CreateSession(ctx context.Context, userID int64) (*models.SessionResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	session, err := s.sessionRepo.Create(ctx, userID)
	if err != nil {
		s.logger.Error("CreateSession: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: CreateSession - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSession: session %s created for user=%d", session.ID, userID)
	return &models.SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	}, nil
}

// GetCart возвращает текущее состояние выбора и корзины сессии
func (s *Service) GetCart(ctx context.Context, sessionID string, userID int64) (*models.CartResponse, error) {
	session, err := s.getOwnedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSession(session), nil
}

// UpdateSelection применяет переданные поля выбора
// Сеттеры не валидируют значения: полнота проверяется производными полями ответа
func (s *Service) UpdateSelection(ctx context.Context, sessionID string, userID int64, req *models.UpdateSelectionRequest) (*models.CartResponse, error) {
	err := s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		if req.TimeSlot != nil {
			session.Selection.SelectedTimeSlot = req.TimeSlot
		}
		if req.Date != nil {
			session.Selection.SelectedDate = req.Date
		}
		if req.PacienteID != nil {
			session.Selection.SelectedPacienteID = req.PacienteID
		}
		if req.TabelaPrecoItem != nil {
			session.Selection.SelectedTabelaPrecoItem = req.TabelaPrecoItem
		}
		if req.Valor != nil {
			session.Selection.SelectedValor = req.Valor
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, sessionID, userID)
}

// ResetSelection сбрасывает выбор слота, даты, позиции каталога и цены
// Выбранный пациент сохраняется
func (s *Service) ResetSelection(ctx context.Context, sessionID string, userID int64) (*models.CartResponse, error) {
	err := s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		session.Selection.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ResetSelection: selection cleared for session %s", sessionID)
	return s.GetCart(ctx, sessionID, userID)
}

// RemoveFromCart удаляет позицию корзины по индексу
// Индекс вне границ не считается ошибкой: операция просто ничего не делает
func (s *Service) RemoveFromCart(ctx context.Context, sessionID string, userID int64, index int) (*models.CartResponse, error) {
	err := s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		if index < 0 || index >= len(session.CartItems) {
			s.logger.Warn("RemoveFromCart: index %d out of bounds for session %s (cart size=%d)",
				index, sessionID, len(session.CartItems))
			return nil
		}
		session.CartItems = append(session.CartItems[:index], session.CartItems[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, sessionID, userID)
}

// ClearCart очищает локальный список позиций корзины
func (s *Service) ClearCart(ctx context.Context, sessionID string, userID int64) (*models.CartResponse, error) {
	err := s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		session.CartItems = []domain.CartItem{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ClearCart: cart cleared for session %s", sessionID)
	return s.GetCart(ctx, sessionID, userID)
}

// SubmitOrder оформляет заказ из накопленных позиций корзины
// На успехе локальный список позиций очищается
func (s *Service) SubmitOrder(ctx context.Context, sessionID string, userID int64) (*models.OrderResponse, error) {
	s.logger.Info("SubmitOrder: session=%s, user=%d", sessionID, userID)

	// Снимаем снапшот корзины под блокировкой
	var (
		itens      []domain.CartItem
		fkPaciente int64
	)

	err := s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		if len(session.CartItems) == 0 {
			return ErrEmptyCart
		}
		if session.Selection.SelectedPacienteID == nil {
			return ErrMissingPaciente
		}

		itens = make([]domain.CartItem, len(session.CartItems))
		copy(itens, session.CartItems)
		fkPaciente = *session.Selection.SelectedPacienteID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Отправляем заказ
	order, err := s.cartClient.CreateOrder(ctx, fkPaciente, itens)
	if err != nil {
		if errors.Is(err, cartClient.ErrOrderRejected) {
			var rej *cartClient.RejectionError
			if errors.As(err, &rej) {
				s.logger.Warn("SubmitOrder: order rejected for session %s: %s", sessionID, rej.Message)
				return nil, &OrderRejectionError{Message: rej.Message}
			}
		}
		s.logger.Error("SubmitOrder: cart service call failed for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: SubmitOrder - cart service call failed: %v", ErrInternal, err)
	}

	// Очищаем корзину после успешного оформления
	err = s.update(ctx, sessionID, userID, func(session *domain.Session) error {
		session.CartItems = []domain.CartItem{}
		return nil
	})
	if err != nil {
		// Заказ уже оформлен, несброшенная корзина не должна ломать ответ
		s.logger.Error("SubmitOrder: failed to clear cart for session %s after order %d: %v", sessionID, order.ID, err)
	}

	s.logger.Info("SubmitOrder: order %d created for session %s (%d items)", order.ID, sessionID, len(itens))
	return &models.OrderResponse{
		OrderID: order.ID,
		Status:  order.Status,
	}, nil
}

// getOwnedSession возвращает сессию с проверкой владельца
func (s *Service) getOwnedSession(ctx context.Context, sessionID string, userID int64) (*domain.Session, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("cart: session %s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("cart: repository error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if session.UserID != userID {
		s.logger.Warn("cart: access denied for user=%d to session %s", userID, sessionID)
		return nil, ErrAccessDenied
	}

	return session, nil
}

// update выполняет мутацию сессии с проверкой владельца
func (s *Service) update(ctx context.Context, sessionID string, userID int64, fn func(session *domain.Session) error) error {
	err := s.sessionRepo.Update(ctx, sessionID, func(session *domain.Session) error {
		if session.UserID != userID {
			return ErrAccessDenied
		}
		return fn(session)
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("cart: session %s not found", sessionID)
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

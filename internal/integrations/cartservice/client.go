package cartservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом корзины (CartService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	calls      *prometheus.CounterVec
}

// NewClient создает новый экземпляр клиента сервиса корзины
// calls может быть nil, тогда метрики исходящих запросов не собираются
func NewClient(baseURL string, timeout time.Duration, log Logger, calls *prometheus.CounterVec) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:   log,
		calls: calls,
	}
}

func (c *Client) observe(outcome string) {
	if c.calls != nil {
		c.calls.WithLabelValues("cartservice", outcome).Inc()
	}
}

// AddItems добавляет позиции в удаленную корзину пациента
func (c *Client) AddItems(ctx context.Context, fkPaciente int64, itens []domain.CartItem) error {
	url := fmt.Sprintf("%s/internal/carrinho", c.baseURL)

	body := AddItemsRequest{
		FkPaciente: fkPaciente,
		Itens:      itens,
	}

	resp, err := c.post(ctx, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.observe("success")
		return nil
	case http.StatusNotFound:
		c.observe("not_found")
		return ErrPacienteNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		c.observe("rejected")
		return &RejectionError{Op: ErrItemRejected, Message: readErrorMessage(resp.Body)}
	default:
		c.observe("error")
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}

// CreateOrder оформляет заказ из накопленных позиций корзины
func (c *Client) CreateOrder(ctx context.Context, fkPaciente int64, itens []domain.CartItem) (*OrderResponse, error) {
	url := fmt.Sprintf("%s/internal/pedidos", c.baseURL)

	body := CreateOrderRequest{
		FkPaciente: fkPaciente,
		Itens:      itens,
	}

	resp, err := c.post(ctx, url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.observe("not_found")
		return nil, ErrPacienteNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		c.observe("rejected")
		return nil, &RejectionError{Op: ErrOrderRejected, Message: readErrorMessage(resp.Body)}
	default:
		c.observe("error")
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var order OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		c.observe("error")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("success")
	return &order, nil
}

func (c *Client) post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// readErrorMessage извлекает серверное сообщение об ошибке из тела ответа
// Если тело не парсится, возвращает сырой текст
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return "unknown error"
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	return string(raw)
}

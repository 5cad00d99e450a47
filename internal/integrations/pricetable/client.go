package pricetable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом цен (PriceTableService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	calls      *prometheus.CounterVec
}

// NewClient создает новый экземпляр клиента каталога цен
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
		c.calls.WithLabelValues("pricetable", outcome).Inc()
	}
}

// GetTabelaPreco получает каталог цен учреждения вместе с расписаниями слотов
func (c *Client) GetTabelaPreco(ctx context.Context, establishmentID int64) (*TabelaPrecoResponse, error) {
	url := fmt.Sprintf("%s/internal/estabelecimentos/%d/tabela-preco", c.baseURL, establishmentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error")
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		c.observe("error")
		return nil, fmt.Errorf("%w: invalid establishment ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		c.observe("not_found")
		return nil, ErrEstablishmentNotFound
	default:
		c.observe("error")
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var tabela TabelaPrecoResponse
	if err := json.NewDecoder(resp.Body).Decode(&tabela); err != nil {
		c.observe("error")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("success")
	return &tabela, nil
}

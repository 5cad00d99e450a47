package cartservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
)

type testLogger struct{}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  {}
func (l *testLogger) Error(format string, v ...interface{}) {}

func testItems() []domain.CartItem {
	return []domain.CartItem{
		{
			FkTabelaPrecoItem:        100,
			FkTabelaPrecoItemHorario: 555,
			Quantidade:               1,
			DataAgendada:             "2025-07-15",
			Valor:                    "150.00",
		},
	}
}

func TestAddItems_Success(t *testing.T) {
	var received AddItemsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/carrinho", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	require.NoError(t, err)
	assert.Equal(t, int64(33), received.FkPaciente)
	require.Len(t, received.Itens, 1)
	assert.Equal(t, int64(555), received.Itens[0].FkTabelaPrecoItemHorario)
}

func TestAddItems_PacienteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrPacienteNotFound)
}

func TestAddItems_RejectedCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Code: 422, Message: "horário esgotado"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrItemRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "horário esgotado", rejection.Message)
}

func TestAddItems_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAddItems_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreateOrder_Success(t *testing.T) {
	var received CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/pedidos", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(OrderResponse{ID: 900, Status: "PENDENTE"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	order, err := client.CreateOrder(context.Background(), 33, testItems())

	require.NoError(t, err)
	assert.Equal(t, int64(900), order.ID)
	assert.Equal(t, "PENDENTE", order.Status)
	assert.Equal(t, int64(33), received.FkPaciente)
}

func TestCreateOrder_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Code: 400, Message: "paciente inadimplente"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	_, err := client.CreateOrder(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrOrderRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "paciente inadimplente", rejection.Message)
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	_, err := client.CreateOrder(context.Background(), 33, testItems())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestReadErrorMessage_FallsBackToRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("plain text error"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, &testLogger{}, nil)
	err := client.AddItems(context.Background(), 33, testItems())

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "plain text error", rejection.Message)
}

package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/handlers"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"
	"github.com/kcyeo92/Workshop-Manager/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invoiceServiceMock struct {
	mock.Mock
}

func (m *invoiceServiceMock) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)

	var invoices []domain.Invoice
	if value := args.Get(0); value != nil {
		invoices = value.([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *invoiceServiceMock) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *invoiceServiceMock) CreateInvoice(ctx context.Context, input domain.CreateInvoiceInput) (domain.Invoice, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *invoiceServiceMock) UpdateInvoice(ctx context.Context, id string, input domain.UpdateInvoiceInput) (domain.Invoice, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *invoiceServiceMock) DeleteInvoice(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func invoiceRouter(handler *handlers.InvoiceHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/invoices", handler.ListInvoices)
	group.POST("/invoices", handler.CreateInvoice)
	group.GET("/invoices/:id", handler.GetInvoice)
	group.PATCH("/invoices/:id", handler.UpdateInvoice)
	group.DELETE("/invoices/:id", handler.DeleteInvoice)
	return router
}

func sampleInvoice() domain.Invoice {
	createdAt := time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC)
	return domain.Invoice{
		ID:            "260001",
		TaskIDs:       []uint64{2026031201},
		CustomerName:  "Lim Ah Seng",
		TotalAmount:   250,
		TasksSnapshot: json.RawMessage(`[{"id":2026031201,"price":250}]`),
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestInvoiceHandler_CreateInvoice_Success(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	serviceMock.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(input domain.CreateInvoiceInput) bool {
		return input.CustomerName == "Lim Ah Seng" &&
			len(input.TaskIDs) == 1 && input.TaskIDs[0] == 2026031201 &&
			input.TotalAmount == 250
	})).Return(sampleInvoice(), nil).Once()
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	body := `{
		"taskIds": [2026031201],
		"customerName": "Lim Ah Seng",
		"totalAmount": 250,
		"tasks": [{"id": 2026031201, "price": 250}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.InvoiceItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "260001", got.ID)
	require.Equal(t, []uint64{2026031201}, got.TaskIDs)
	require.Equal(t, 250.0, got.TotalAmount)
	require.False(t, got.PaymentReceived)
	require.Nil(t, got.PaymentReceivedDate)
	serviceMock.AssertExpectations(t)
}

func TestInvoiceHandler_CreateInvoice_EmptySnapshot(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	body := `{
		"taskIds": [2026031201],
		"customerName": "Lim Ah Seng",
		"totalAmount": 250,
		"tasks": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid invoice payload", got.ErrDetails.Message)
}

func TestInvoiceHandler_GetInvoice_NotFound(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	serviceMock.On("GetInvoice", mock.Anything, "269999").
		Return(domain.Invoice{}, domain.ErrInvoiceNotFound).Once()
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/269999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invoice not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestInvoiceHandler_ListInvoices_Error(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	serviceMock.On("ListInvoices", mock.Anything).Return(nil, errors.New("db is down")).Once()
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to fetch invoices", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateInvoice_MarkPaid(t *testing.T) {
	paidDate := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	paid := sampleInvoice()
	paid.PaymentReceived = true
	paid.PaymentReceivedDate = &paidDate

	serviceMock := new(invoiceServiceMock)
	serviceMock.On("UpdateInvoice", mock.Anything, "260001", mock.MatchedBy(func(input domain.UpdateInvoiceInput) bool {
		return input.PaymentReceived != nil && *input.PaymentReceived &&
			input.PaymentReceivedDateSet && input.PaymentReceivedDate != nil &&
			input.PaymentReceivedDate.Equal(paidDate)
	})).Return(paid, nil).Once()
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	body := `{"paymentReceived": true, "paymentReceivedDate": "2026-03-15T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/260001", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.InvoiceItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.PaymentReceived)
	require.Equal(t, "2026-03-15T12:00:00Z", *got.PaymentReceivedDate)
	serviceMock.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateInvoice_EmptyPayload(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/260001", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceHandler_DeleteInvoice_Success(t *testing.T) {
	serviceMock := new(invoiceServiceMock)
	serviceMock.On("DeleteInvoice", mock.Anything, "260001").Return(nil).Once()
	router := invoiceRouter(handlers.NewInvoiceHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/260001", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

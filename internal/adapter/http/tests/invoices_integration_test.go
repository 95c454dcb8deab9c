//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type InvoicesIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestInvoicesIntegrationSuite(t *testing.T) {
	suite.Run(t, new(InvoicesIntegrationSuite))
}

func (s *InvoicesIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.router = buildRouter(s.DB)
}

func (s *InvoicesIntegrationSuite) createInvoice(taskID uint64, snapshot string) dto.InvoiceItem {
	body := fmt.Sprintf(`{
		"taskIds": [%d],
		"customerName": "Lim Ah Seng",
		"totalAmount": 250,
		"tasks": %s
	}`, taskID, snapshot)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.InvoiceItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *InvoicesIntegrationSuite) TestPostInvoices_AssignsSequentialNumbers() {
	first := s.createInvoice(2026031201, `[{"id": 2026031201, "price": 250}]`)
	second := s.createInvoice(2026031202, `[{"id": 2026031202, "price": 100}]`)

	yearPrefix := fmt.Sprintf("%02d", time.Now().Year()%100)
	s.Require().Equal(yearPrefix+"0001", first.ID)
	s.Require().Equal(yearPrefix+"0002", second.ID)
}

func (s *InvoicesIntegrationSuite) TestPostInvoices_ConcurrentCreationsGetDistinctGaplessNumbers() {
	const n = 8

	codes := make([]int, n)
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			taskID := 2026031201 + uint64(i)
			body := fmt.Sprintf(`{
				"taskIds": [%d],
				"customerName": "Lim Ah Seng",
				"totalAmount": 250,
				"tasks": [{"id": %d, "price": 250}]
			}`, taskID, taskID)

			req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			codes[i] = rec.Code
			var got dto.InvoiceItem
			if json.Unmarshal(rec.Body.Bytes(), &got) == nil {
				ids[i] = got.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		s.Require().Equal(http.StatusCreated, codes[i])
	}

	// Every creation observed its own sequence value: n distinct ids with no
	// gaps, regardless of completion order.
	sort.Strings(ids)
	yearPrefix := fmt.Sprintf("%02d", time.Now().Year()%100)
	for i := 0; i < n; i++ {
		s.Require().Equal(fmt.Sprintf("%s%04d", yearPrefix, i+1), ids[i])
	}
}

func (s *InvoicesIntegrationSuite) TestPostInvoices_StoresSnapshotVerbatim() {
	snapshot := `[{"id": 2026031201, "price": 250, "lineItems": [{"description": "Brake pads", "amount": 180}]}]`
	invoice := s.createInvoice(2026031201, snapshot)

	// Fetch back and compare as parsed JSON; the stored snapshot must not be
	// recomputed or reshaped by the server.
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+invoice.ID, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.InvoiceItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))

	var want, have any
	s.Require().NoError(json.Unmarshal([]byte(snapshot), &want))
	s.Require().NoError(json.Unmarshal(got.Tasks, &have))
	s.Require().Equal(want, have)
}

func (s *InvoicesIntegrationSuite) TestPostInvoices_SnapshotSurvivesLaterTaskChanges() {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(createTaskBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))

	snapshot := fmt.Sprintf(`[{"id": %d, "price": 250, "lineItems": [
		{"description": "Brake pads", "amount": 180},
		{"description": "Labour", "amount": 70}
	]}]`, task.ID)
	invoice := s.createInvoice(task.ID, snapshot)

	// Rewrite the task's line items after invoicing; the billed amounts must
	// stay frozen at what the customer was quoted.
	patch := `{"lineItems": [{"description": "Full service", "amount": 999}]}`
	req = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/tasks/%d", task.ID), strings.NewReader(patch))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/invoices/"+invoice.ID, nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.InvoiceItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(250.0, got.TotalAmount)

	var want, have any
	s.Require().NoError(json.Unmarshal([]byte(snapshot), &want))
	s.Require().NoError(json.Unmarshal(got.Tasks, &have))
	s.Require().Equal(want, have)
}

func (s *InvoicesIntegrationSuite) TestPostInvoices_ReturnsBadRequestWhenSnapshotIsEmpty() {
	body := `{
		"taskIds": [2026031201],
		"customerName": "Lim Ah Seng",
		"totalAmount": 250,
		"tasks": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Invalid invoice payload", got.ErrDetails.Message)
}

func (s *InvoicesIntegrationSuite) TestPatchInvoices_MarksPaymentReceived() {
	invoice := s.createInvoice(2026031201, `[{"id": 2026031201, "price": 250}]`)

	body := `{"paymentReceived": true, "paymentReceivedDate": "2026-03-15T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/"+invoice.ID, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.InvoiceItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.PaymentReceived)
	s.Require().NotNil(got.PaymentReceivedDate)

	// Null clears the date but presence of the key is required to touch it.
	req = httptest.NewRequest(http.MethodPatch, "/api/invoices/"+invoice.ID, strings.NewReader(`{"paymentReceivedDate": null}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.PaymentReceived)
	s.Require().Nil(got.PaymentReceivedDate)
}

func (s *InvoicesIntegrationSuite) TestDeleteInvoices_DoesNotTouchTasks() {
	taskBody := strings.NewReader(createTaskBody)
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", taskBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))

	invoice := s.createInvoice(task.ID, fmt.Sprintf(`[{"id": %d, "price": 250}]`, task.ID))

	req = httptest.NewRequest(http.MethodDelete, "/api/invoices/"+invoice.ID, nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE id = ?", task.ID))
	s.Require().Equal(1, count)
}

func (s *InvoicesIntegrationSuite) TestGetInvoices_ReturnsNotFoundForUnknownNumber() {
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/999999", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Invoice not found", got.ErrDetails.Message)
}

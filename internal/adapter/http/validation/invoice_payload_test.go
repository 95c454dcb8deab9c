package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/validation"
)

func TestBuildCreateInvoiceInput_Valid(t *testing.T) {
	amount := 250.0
	req := dto.CreateInvoiceRequest{
		TaskIDs:      []uint64{2026031201},
		CustomerName: "Lim Ah Seng",
		TotalAmount:  &amount,
		Tasks:        json.RawMessage(`[{"id": 2026031201, "price": 250}]`),
	}

	input, err := validation.BuildCreateInvoiceInput(req)
	require.NoError(t, err)
	require.Equal(t, []uint64{2026031201}, input.TaskIDs)
	require.Equal(t, 250.0, input.TotalAmount)
	require.JSONEq(t, `[{"id": 2026031201, "price": 250}]`, string(input.TasksSnapshot))
}

func TestBuildCreateInvoiceInput_EmptySnapshotRejected(t *testing.T) {
	amount := 250.0
	req := dto.CreateInvoiceRequest{
		TaskIDs:      []uint64{2026031201},
		CustomerName: "Lim Ah Seng",
		TotalAmount:  &amount,
		Tasks:        json.RawMessage(`[]`),
	}

	_, err := validation.BuildCreateInvoiceInput(req)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateInvoiceInput_MalformedSnapshotRejected(t *testing.T) {
	amount := 250.0
	req := dto.CreateInvoiceRequest{
		TaskIDs:      []uint64{2026031201},
		CustomerName: "Lim Ah Seng",
		TotalAmount:  &amount,
		Tasks:        json.RawMessage(`{"not": "an array"}`),
	}

	_, err := validation.BuildCreateInvoiceInput(req)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateInvoiceInput_DateParsed(t *testing.T) {
	received := true
	date := "2026-03-15T12:00:00Z"
	req := dto.UpdateInvoiceRequest{PaymentReceived: &received, PaymentReceivedDate: &date}
	raw := map[string]json.RawMessage{
		"paymentReceived":     json.RawMessage(`true`),
		"paymentReceivedDate": json.RawMessage(`"2026-03-15T12:00:00Z"`),
	}

	input, err := validation.BuildUpdateInvoiceInput(req, raw)
	require.NoError(t, err)
	require.True(t, *input.PaymentReceived)
	require.True(t, input.PaymentReceivedDateSet)
	require.Equal(t, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), input.PaymentReceivedDate.UTC())
}

func TestBuildUpdateInvoiceInput_NullDateClears(t *testing.T) {
	req := dto.UpdateInvoiceRequest{}
	raw := map[string]json.RawMessage{"paymentReceivedDate": json.RawMessage(`null`)}

	input, err := validation.BuildUpdateInvoiceInput(req, raw)
	require.NoError(t, err)
	require.True(t, input.PaymentReceivedDateSet)
	require.Nil(t, input.PaymentReceivedDate)
}

func TestBuildUpdateInvoiceInput_EmptyPayloadRejected(t *testing.T) {
	req := dto.UpdateInvoiceRequest{}

	_, err := validation.BuildUpdateInvoiceInput(req, map[string]json.RawMessage{})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

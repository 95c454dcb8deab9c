package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

// BuildCreateInvoiceInput validates a billing request. The tasks snapshot is
// passed through verbatim after a well-formedness check; the server never
// recomputes it.
func BuildCreateInvoiceInput(req dto.CreateInvoiceRequest) (domain.CreateInvoiceInput, error) {
	if len(req.TaskIDs) == 0 || strings.TrimSpace(req.CustomerName) == "" || req.TotalAmount == nil {
		return domain.CreateInvoiceInput{}, ErrInvalidTaskPayload
	}

	var snapshot []json.RawMessage
	if err := json.Unmarshal(req.Tasks, &snapshot); err != nil || len(snapshot) == 0 {
		return domain.CreateInvoiceInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateInvoiceInput{
		TaskIDs:       req.TaskIDs,
		CustomerName:  req.CustomerName,
		TotalAmount:   *req.TotalAmount,
		TasksSnapshot: req.Tasks,
	}, nil
}

// BuildUpdateInvoiceInput handles the only mutable invoice fields. Presence
// of paymentReceivedDate matters: null clears the date, absence leaves it.
func BuildUpdateInvoiceInput(req dto.UpdateInvoiceRequest, raw map[string]json.RawMessage) (domain.UpdateInvoiceInput, error) {
	if !hasJSONField(raw, "paymentReceived") && !hasJSONField(raw, "paymentReceivedDate") {
		return domain.UpdateInvoiceInput{}, ErrInvalidTaskPayload
	}

	input := domain.UpdateInvoiceInput{PaymentReceived: req.PaymentReceived}

	if hasJSONField(raw, "paymentReceivedDate") {
		input.PaymentReceivedDateSet = true
		if !isJSONNull(raw["paymentReceivedDate"]) {
			if req.PaymentReceivedDate == nil {
				return domain.UpdateInvoiceInput{}, ErrInvalidTaskPayload
			}
			parsed, err := time.Parse(time.RFC3339, *req.PaymentReceivedDate)
			if err != nil {
				return domain.UpdateInvoiceInput{}, ErrInvalidTaskPayload
			}
			input.PaymentReceivedDate = &parsed
		}
	}

	return input, nil
}

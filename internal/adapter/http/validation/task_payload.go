package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput validates a bound create request against the raw
// payload. The raw map distinguishes absent fields from explicit nulls, so a
// literal `"customer": null` is rejected instead of silently dropped.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if strings.TrimSpace(req.Customer) == "" ||
		strings.TrimSpace(req.VehiclePlateNo) == "" ||
		strings.TrimSpace(req.VehicleMake) == "" ||
		strings.TrimSpace(req.VehicleModel) == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	items, ok := buildLineItems(req.LineItems)
	if !ok || len(items) == 0 {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Customer:       req.Customer,
		VehiclePlateNo: req.VehiclePlateNo,
		VehicleMake:    req.VehicleMake,
		VehicleModel:   req.VehicleModel,
		Description:    req.Description,
		LineItems:      items,
		Workers:        buildWorkers(req.Workers),
		Photos:         buildPhotos(req.Photos),
	}, nil
}

// BuildUpdateTaskInput turns a partial payload into an explicit update
// struct. Presence is tracked per field: a missing key means "leave alone",
// null means "clear" where clearing is legal (description), and null on a
// required field is a payload error.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.UpdateTaskInput{}

	for _, field := range []struct {
		key   string
		value *string
		dest  **string
	}{
		{"customer", req.Customer, &input.Customer},
		{"vehiclePlateNo", req.VehiclePlateNo, &input.VehiclePlateNo},
		{"vehicleMake", req.VehicleMake, &input.VehicleMake},
		{"vehicleModel", req.VehicleModel, &input.VehicleModel},
	} {
		if !hasJSONField(raw, field.key) {
			continue
		}
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		*field.dest = field.value
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		input.Description = req.Description
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = &status
	}

	if hasJSONField(raw, "lineItems") {
		if isJSONNull(raw["lineItems"]) || req.LineItems == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		items, ok := buildLineItems(*req.LineItems)
		if !ok || len(items) == 0 {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.LineItemsSet = true
		input.LineItems = items
	}

	if hasJSONField(raw, "workers") {
		if isJSONNull(raw["workers"]) || req.Workers == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.WorkersSet = true
		input.Workers = buildWorkers(*req.Workers)
	}

	return input, nil
}

// BuildTaskEventInput validates an event payload; timestamps are RFC3339.
func BuildTaskEventInput(req dto.AddTaskEventRequest) (domain.TaskEventInput, error) {
	eventType := domain.TaskEventType(req.Type)
	if !eventType.Valid() {
		return domain.TaskEventInput{}, ErrInvalidTaskPayload
	}
	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return domain.TaskEventInput{}, ErrInvalidTaskPayload
	}
	return domain.TaskEventInput{
		Type:          eventType,
		Timestamp:     timestamp,
		InvoiceNumber: req.InvoiceNumber,
	}, nil
}

func buildLineItems(payload []dto.LineItemPayload) ([]domain.LineItemInput, bool) {
	items := make([]domain.LineItemInput, 0, len(payload))
	for _, li := range payload {
		if strings.TrimSpace(li.Description) == "" || li.Amount < 0 {
			return nil, false
		}
		items = append(items, domain.LineItemInput{Description: li.Description, Amount: li.Amount})
	}
	return items, true
}

func buildWorkers(payload []dto.WorkerPayload) []domain.WorkerInput {
	workers := make([]domain.WorkerInput, 0, len(payload))
	for _, w := range payload {
		workers = append(workers, domain.WorkerInput{Name: w.Name, Wage: w.Wage, Paid: w.Paid})
	}
	return workers
}

func buildPhotos(payload []dto.Photo) []domain.Photo {
	photos := make([]domain.Photo, 0, len(payload))
	for _, p := range payload {
		photos = append(photos, domain.Photo{FileID: p.FileID, FileName: p.FileName, URL: p.URL})
	}
	return photos
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "customer") ||
		hasJSONField(raw, "vehiclePlateNo") ||
		hasJSONField(raw, "vehicleMake") ||
		hasJSONField(raw, "vehicleModel") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "lineItems") ||
		hasJSONField(raw, "workers")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

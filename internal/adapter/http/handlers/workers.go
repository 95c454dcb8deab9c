package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/mapper"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"
)

type WorkerHandler struct {
	directoryService ports.DirectoryService
}

func NewWorkerHandler(directoryService ports.DirectoryService) *WorkerHandler {
	return &WorkerHandler{directoryService: directoryService}
}

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	lang := middleware.GetLang(c)

	// Optional name lookup, used by the task form to prefill the wage from
	// the worker's hourly rate.
	if name := c.Query("name"); name != "" {
		worker, err := h.directoryService.GetWorkerByName(c.Request.Context(), name)
		if err != nil {
			respondDirectoryError(c, lang, err, apierrors.MsgWorkerNotFound, "failed to look up worker")
			return
		}
		c.JSON(http.StatusOK, mapper.ToWorkerItem(worker))
		return
	}

	workers, err := h.directoryService.ListWorkers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list workers", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDirectory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkerItems(workers))
}

func (h *WorkerHandler) GetWorker(c *gin.Context) {
	lang := middleware.GetLang(c)

	workerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	worker, err := h.directoryService.GetWorker(c.Request.Context(), workerID)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgWorkerNotFound, "failed to get worker")
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkerItem(worker))
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindWorkerInput(c, lang)
	if !ok {
		return
	}

	worker, err := h.directoryService.CreateWorker(c.Request.Context(), input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgWorkerNotFound, "failed to create worker")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToWorkerItem(worker))
}

func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	lang := middleware.GetLang(c)

	workerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	input, ok := bindWorkerInput(c, lang)
	if !ok {
		return
	}

	worker, err := h.directoryService.UpdateWorker(c.Request.Context(), workerID, input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgWorkerNotFound, "failed to update worker")
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkerItem(worker))
}

func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	lang := middleware.GetLang(c)

	workerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	if err := h.directoryService.DeleteWorker(c.Request.Context(), workerID); err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgWorkerNotFound, "failed to delete worker")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindWorkerInput(c *gin.Context, lang string) (domain.WorkerDirectoryInput, bool) {
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDirectoryPayload, lang),
		)
		return domain.WorkerDirectoryInput{}, false
	}
	return domain.WorkerDirectoryInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		HourlyRate: req.HourlyRate,
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	}, true
}

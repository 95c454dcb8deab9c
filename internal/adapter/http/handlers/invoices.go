package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/mapper"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/validation"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"
)

type InvoiceHandler struct {
	invoiceService ports.InvoiceService
}

func NewInvoiceHandler(invoiceService ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	lang := middleware.GetLang(c)
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list invoices", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListInvoices, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvoiceItems(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	lang := middleware.GetLang(c)

	invoiceID, ok := parseInvoiceID(c, lang)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInvoiceNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetInvoice, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvoiceItem(invoice))
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvoicePayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateInvoiceInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvoicePayload, lang),
		)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvoicePayload, lang),
			)
			return
		}

		zap.L().Error("failed to create invoice", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateInvoice, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToInvoiceItem(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	lang := middleware.GetLang(c)

	invoiceID, ok := parseInvoiceID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	raw, ok := bindWithRawPayload(c, &req)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvoicePayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateInvoiceInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidInvoicePayload, lang),
		)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInvoiceNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateInvoice, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToInvoiceItem(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	lang := middleware.GetLang(c)

	invoiceID, ok := parseInvoiceID(c, lang)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgInvoiceNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteInvoice, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseInvoiceID(c *gin.Context, lang string) (string, bool) {
	invoiceID := strings.TrimSpace(c.Param("id"))
	if invoiceID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return "", false
	}
	return invoiceID, true
}

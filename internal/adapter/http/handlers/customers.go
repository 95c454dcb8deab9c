package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/mapper"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"
)

type CustomerHandler struct {
	directoryService ports.DirectoryService
}

func NewCustomerHandler(directoryService ports.DirectoryService) *CustomerHandler {
	return &CustomerHandler{directoryService: directoryService}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	lang := middleware.GetLang(c)

	// Optional name lookup, used by the task form to prefill vehicle data.
	if name := c.Query("name"); name != "" {
		customer, err := h.directoryService.GetCustomerByName(c.Request.Context(), name)
		if err != nil {
			respondDirectoryError(c, lang, err, apierrors.MsgCustomerNotFound, "failed to look up customer")
			return
		}
		c.JSON(http.StatusOK, mapper.ToCustomerItem(customer))
		return
	}

	customers, err := h.directoryService.ListCustomers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list customers", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDirectory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomerItems(customers))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)

	customerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	customer, err := h.directoryService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgCustomerNotFound, "failed to get customer")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomerItem(customer))
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindCustomerInput(c, lang)
	if !ok {
		return
	}

	customer, err := h.directoryService.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgCustomerNotFound, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCustomerItem(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)

	customerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	input, ok := bindCustomerInput(c, lang)
	if !ok {
		return
	}

	customer, err := h.directoryService.UpdateCustomer(c.Request.Context(), customerID, input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgCustomerNotFound, "failed to update customer")
		return
	}

	c.JSON(http.StatusOK, mapper.ToCustomerItem(customer))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	lang := middleware.GetLang(c)

	customerID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	if err := h.directoryService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgCustomerNotFound, "failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindCustomerInput(c *gin.Context, lang string) (domain.CustomerInput, bool) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDirectoryPayload, lang),
		)
		return domain.CustomerInput{}, false
	}
	return domain.CustomerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Notes:    req.Notes,
		IsActive: req.IsActive,
	}, true
}

func parseDirectoryID(c *gin.Context, lang string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}

func respondDirectoryError(c *gin.Context, lang string, err error, notFoundKey string, logMsg string) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrWorkerNotFound),
		errors.Is(err, domain.ErrTemplateNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, notFoundKey, lang),
		)
	case errors.Is(err, domain.ErrNameTaken):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgNameTaken, lang),
		)
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDirectoryPayload, lang),
		)
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDirectory, lang),
		)
	}
}

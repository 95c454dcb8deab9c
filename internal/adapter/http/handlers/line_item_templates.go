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

type LineItemTemplateHandler struct {
	directoryService ports.DirectoryService
}

func NewLineItemTemplateHandler(directoryService ports.DirectoryService) *LineItemTemplateHandler {
	return &LineItemTemplateHandler{directoryService: directoryService}
}

func (h *LineItemTemplateHandler) ListTemplates(c *gin.Context) {
	lang := middleware.GetLang(c)

	if description := c.Query("description"); description != "" {
		template, err := h.directoryService.GetTemplateByDescription(c.Request.Context(), description)
		if err != nil {
			respondDirectoryError(c, lang, err, apierrors.MsgTemplateNotFound, "failed to look up line item template")
			return
		}
		c.JSON(http.StatusOK, mapper.ToTemplateItem(template))
		return
	}

	templates, err := h.directoryService.ListTemplates(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list line item templates", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDirectory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItems(templates))
}

func (h *LineItemTemplateHandler) GetTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	templateID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	template, err := h.directoryService.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgTemplateNotFound, "failed to get line item template")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItem(template))
}

func (h *LineItemTemplateHandler) CreateTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindTemplateInput(c, lang)
	if !ok {
		return
	}

	template, err := h.directoryService.CreateTemplate(c.Request.Context(), input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgTemplateNotFound, "failed to create line item template")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTemplateItem(template))
}

func (h *LineItemTemplateHandler) UpdateTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	templateID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	input, ok := bindTemplateInput(c, lang)
	if !ok {
		return
	}

	template, err := h.directoryService.UpdateTemplate(c.Request.Context(), templateID, input)
	if err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgTemplateNotFound, "failed to update line item template")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTemplateItem(template))
}

func (h *LineItemTemplateHandler) DeleteTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)

	templateID, ok := parseDirectoryID(c, lang)
	if !ok {
		return
	}

	if err := h.directoryService.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		respondDirectoryError(c, lang, err, apierrors.MsgTemplateNotFound, "failed to delete line item template")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindTemplateInput(c *gin.Context, lang string) (domain.LineItemTemplateInput, bool) {
	var req dto.LineItemTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDirectoryPayload, lang),
		)
		return domain.LineItemTemplateInput{}, false
	}
	return domain.LineItemTemplateInput{
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}, true
}

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/dto"
	"github.com/kcyeo92/Workshop-Manager/internal/adapter/http/middleware"
	"github.com/kcyeo92/Workshop-Manager/internal/core/domain"
	"github.com/kcyeo92/Workshop-Manager/internal/core/ports"
	"github.com/kcyeo92/Workshop-Manager/pkg/apierrors"
)

const maxPhotoUploadBytes = 10 << 20 // per file

type PhotoHandler struct {
	photoStore ports.PhotoStore
}

func NewPhotoHandler(photoStore ports.PhotoStore) *PhotoHandler {
	return &PhotoHandler{photoStore: photoStore}
}

// UploadPhotos accepts a multipart form with `customer` and `plateNumber`
// fields plus one or more `photos` files.
func (h *PhotoHandler) UploadPhotos(c *gin.Context) {
	lang := middleware.GetLang(c)

	customer := strings.TrimSpace(c.PostForm("customer"))
	plate := strings.TrimSpace(c.PostForm("plateNumber"))
	if customer == "" || plate == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPhotoPayload, lang),
		)
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["photos"]) == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPhotoPayload, lang),
		)
		return
	}

	uploads := make([]ports.PhotoUpload, 0, len(form.File["photos"]))
	for _, fileHeader := range form.File["photos"] {
		if fileHeader.Size > maxPhotoUploadBytes {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPhotoPayload, lang),
			)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			zap.L().Error("failed to open uploaded photo", zap.String("file_name", fileHeader.Filename), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPhotoStore, lang),
			)
			return
		}

		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			zap.L().Error("failed to read uploaded photo", zap.String("file_name", fileHeader.Filename), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPhotoStore, lang),
			)
			return
		}

		uploads = append(uploads, ports.PhotoUpload{FileName: fileHeader.Filename, Content: content})
	}

	photos, err := h.photoStore.Upload(c.Request.Context(), uploads, customer, plate)
	if err != nil {
		zap.L().Error("failed to store photos", zap.String("customer", customer), zap.String("plate", plate), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPhotoStore, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.PhotoUploadResponse{Success: true, Photos: toPhotoItems(photos)})
}

// ListPhotos returns stored photo references for a customer and plate.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	lang := middleware.GetLang(c)

	customer := strings.TrimSpace(c.Query("customer"))
	plate := strings.TrimSpace(c.Query("plateNumber"))
	if customer == "" || plate == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPhotoPayload, lang),
		)
		return
	}

	photos, err := h.photoStore.List(c.Request.Context(), customer, plate)
	if err != nil {
		zap.L().Error("failed to list photos", zap.String("customer", customer), zap.String("plate", plate), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPhotoStore, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.PhotoListResponse{Success: true, Photos: toPhotoItems(photos)})
}

// GetPhoto streams the stored photo bytes for a file id. This backs the URLs
// returned by upload and list responses.
func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	lang := middleware.GetLang(c)

	fileID := strings.TrimSpace(c.Param("id"))
	if fileID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return
	}

	fileName, content, err := h.photoStore.Open(c.Request.Context(), fileID)
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgPhotoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to open photo", zap.String("file_id", fileID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailPhotoStore, lang),
		)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+fileName+`"`)
	c.Data(http.StatusOK, http.DetectContentType(content), content)
}

func toPhotoItems(photos []domain.Photo) []dto.Photo {
	items := make([]dto.Photo, 0, len(photos))
	for _, p := range photos {
		items = append(items, dto.Photo{FileID: p.FileID, FileName: p.FileName, URL: p.URL})
	}
	return items
}

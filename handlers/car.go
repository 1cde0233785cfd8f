package handlers

import (
	"net/http"
	"strconv"

	"motorent/models"
	"motorent/services/car"
	"motorent/services/storage"
	"motorent/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageSize caps listing image uploads at 5 MiB.
const maxImageSize = 5 << 20

// CarHandler exposes the renter-facing listing endpoints.
type CarHandler struct {
	CarService car.CarService
	Storage    storage.StorageService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(cs car.CarService, ss storage.StorageService) *CarHandler {
	return &CarHandler{CarService: cs, Storage: ss}
}

// SubmitCarHandler handles POST /api/cars. The listing fields arrive as a
// multipart form together with the image file.
func (h *CarHandler) SubmitCarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ownerID := c.GetString("userID")

	var sub models.CarSubmission
	if err := c.ShouldBind(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid listing request", err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("missing required field: image"))
		return
	}
	if fileHeader.Size > maxImageSize {
		utils.RespondError(c, utils.NewValidationError("image exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("unreadable image upload"))
		return
	}
	defer file.Close()

	imageURL, err := h.Storage.UploadImage(c.Request.Context(), file)
	if err != nil {
		logger.Error("SubmitCarHandler: image upload failed", zap.Error(err))
		utils.RespondError(c, utils.NewValidationError("image upload failed"))
		return
	}
	sub.ImageURL = imageURL

	created, err := h.CarService.Submit(sub, ownerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Rental request has been successfully sent to Admin",
		"car":     created,
	})
}

// ListCarsHandler handles GET /api/cars. Only approved listings are returned.
func (h *CarHandler) ListCarsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "12"))

	result, err := h.CarService.SearchApproved(c.Query("search"), page, pageSize)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCarByIDHandler handles GET /api/cars/:id.
func (h *CarHandler) GetCarByIDHandler(c *gin.Context) {
	found, err := h.CarService.GetCarByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

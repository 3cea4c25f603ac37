package support

import (
	"net/http"
	"strings"
	"time"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	requests repository.SupportRepository
}

func New(requests repository.SupportRepository) *Handler {
	return &Handler{requests: requests}
}

// @Summary Submit a support request
// @Description Submit a new support request with the provided information
// @Tags support
// @Accept json
// @Produce json
// @Param request body models.SupportCreate true "Support request"
// @Success 201 {object} map[string]interface{} "message: Support request submitted successfully, id: request ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /support [post]
func (h *Handler) Create(c *gin.Context) {
	var input models.SupportCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	request := models.SupportRequest{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Subject:     strings.TrimSpace(input.Subject),
		Message:     input.Message,
		SubmittedAt: time.Now(),
	}
	if err := h.requests.Create(&request); err != nil {
		utils.LogError(err, "Error creating support request in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(request.ID, "Support request submitted successfully in Create")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Support request submitted successfully",
		"id":      request.ID,
	})
}

// @Summary List support requests (Admin)
// @Tags support
// @Produce json
// @Security AdminCookie
// @Success 200 {array} models.SupportRequest
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/support [get]
func (h *Handler) List(c *gin.Context) {
	requests, err := h.requests.List()
	if err != nil {
		utils.LogError(err, "Error listing support requests in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

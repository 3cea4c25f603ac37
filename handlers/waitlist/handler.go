package waitlist

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	waitlist repository.WaitlistRepository
}

func New(waitlist repository.WaitlistRepository) *Handler {
	return &Handler{waitlist: waitlist}
}

// @Summary Join the waitlist
// @Description Submit a new waitlist signup for the app
// @Tags waitlist
// @Accept json
// @Produce json
// @Param entry body models.WaitlistCreate true "Waitlist signup"
// @Success 201 {object} map[string]interface{} "message: Entry submitted successfully"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Entry already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /waitlist [post]
func (h *Handler) Join(c *gin.Context) {
	var input models.WaitlistCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)

	service := models.WaitlistService(strings.TrimSpace(input.Service))
	if service == "" {
		service = models.WaitlistServiceIndividual
	}
	if !models.ValidWaitlistService(service) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service"})
		return
	}

	exists, err := h.waitlist.ExistsByEmailOrPhone(input.Email, input.Phone)
	if err != nil {
		utils.LogError(err, "Error checking waitlist duplicates in Join")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Entry already exists"})
		return
	}

	entry := models.WaitlistEntry{
		Name:    strings.TrimSpace(input.Name),
		Email:   input.Email,
		Phone:   input.Phone,
		Service: service,
		Status:  models.WaitlistStatusPending,
	}
	if err := h.waitlist.Create(&entry); err != nil {
		utils.LogError(err, "Error creating waitlist entry in Join")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(entry.ID, "Waitlist entry created in Join")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Entry submitted successfully",
		"entry":   entry,
	})
}

// @Summary List waitlist entries (Admin)
// @Description Paginated waitlist listing with status filter
// @Tags waitlist
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "entries, pagination"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/waitlist [get]
func (h *Handler) List(c *gin.Context) {
	params := repository.WaitlistListParams{
		Page:  parseIntDefault(c.Query("page"), 1),
		Limit: parseIntDefault(c.Query("limit"), 20),
	}
	if status := models.WaitlistStatus(c.Query("status")); models.ValidWaitlistStatus(status) {
		params.Status = status
	}

	entries, total, err := h.waitlist.List(params)
	if err != nil {
		utils.LogError(err, "Error listing waitlist entries in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"pagination": gin.H{
			"total":      total,
			"page":       params.Page,
			"limit":      params.Limit,
			"totalPages": int(math.Ceil(float64(total) / float64(params.Limit))),
		},
	})
}

// @Summary Update a waitlist entry status (Admin)
// @Description Set the review status of one waitlist entry
// @Tags waitlist
// @Accept json
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Param status body models.WaitlistStatusUpdate true "New status"
// @Security AdminCookie
// @Success 200 {object} map[string]string "message: Status updated successfully"
// @Failure 400 {object} map[string]string "error: Invalid status"
// @Failure 404 {object} map[string]string "error: Entry not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/waitlist/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var update models.WaitlistStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !models.ValidWaitlistStatus(update.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := h.waitlist.UpdateStatus(id, update.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error updating waitlist status in UpdateStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Waitlist status updated in UpdateStatus")
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// @Summary Delete a waitlist entry (Admin)
// @Tags waitlist
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Security AdminCookie
// @Success 200 {object} map[string]string "message: Entry deleted successfully"
// @Failure 404 {object} map[string]string "error: Entry not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/waitlist/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.waitlist.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error deleting waitlist entry in Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Waitlist entry deleted in Delete")
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

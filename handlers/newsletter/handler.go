package newsletter

import (
	"errors"
	"net/http"
	"strings"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	subscribers repository.NewsletterRepository
}

func New(subscribers repository.NewsletterRepository) *Handler {
	return &Handler{subscribers: subscribers}
}

// @Summary Subscribe to the newsletter
// @Description Register an email for the newsletter; a previously unsubscribed email is reactivated
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.NewsletterSubscribe true "Subscription payload"
// @Success 200 {object} map[string]interface{} "message: subscription state"
// @Success 201 {object} map[string]interface{} "message: Thank you for subscribing"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /newsletter [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var input models.NewsletterSubscribe

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	source := models.NewsletterSource(strings.TrimSpace(input.Source))
	switch source {
	case models.NewsletterSourceBlog, models.NewsletterSourceHomepage, models.NewsletterSourceOther:
	case "":
		source = models.NewsletterSourceBlog
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid source"})
		return
	}

	existing, err := h.subscribers.GetByEmail(input.Email)
	if err == nil {
		if existing.Status == models.NewsletterStatusUnsubscribed {
			if err := h.subscribers.UpdateStatus(existing.ID, models.NewsletterStatusActive); err != nil {
				utils.LogErrorWithID(existing.ID, err, "Error reactivating subscription in Subscribe")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"message": "Welcome back! Your subscription has been reactivated.",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "You are already subscribed to our newsletter.",
		})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.LogError(err, "Error checking existing subscriber in Subscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	subscriber := models.NewsletterSubscriber{
		Email:  input.Email,
		Source: source,
		Status: models.NewsletterStatusActive,
	}
	if err := h.subscribers.Create(&subscriber); err != nil {
		utils.LogError(err, "Error creating subscriber in Subscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(subscriber.ID, "Newsletter subscription created in Subscribe")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for subscribing to our newsletter!",
	})
}

// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body models.NewsletterSubscribe true "Email to unsubscribe"
// @Success 200 {object} map[string]interface{} "message: You have been unsubscribed"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Subscriber not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /newsletter/unsubscribe [post]
func (h *Handler) Unsubscribe(c *gin.Context) {
	var input models.NewsletterSubscribe

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	subscriber, err := h.subscribers.GetByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		utils.LogError(err, "Error fetching subscriber in Unsubscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.subscribers.UpdateStatus(subscriber.ID, models.NewsletterStatusUnsubscribed); err != nil {
		utils.LogErrorWithID(subscriber.ID, err, "Error unsubscribing in Unsubscribe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(subscriber.ID, "Newsletter subscription removed in Unsubscribe")
	c.JSON(http.StatusOK, gin.H{
		"message": "You have been unsubscribed.",
	})
}

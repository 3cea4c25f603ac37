package creators

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/services/referrals"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	creators  repository.CreatorRepository
	ledger    repository.ReferralRepository
	referrals *referrals.Service
}

func New(creators repository.CreatorRepository, ledger repository.ReferralRepository, service *referrals.Service) *Handler {
	return &Handler{
		creators:  creators,
		ledger:    ledger,
		referrals: service,
	}
}

// @Summary Apply to the creator program
// @Description Submit a new creator program application, optionally carrying the referral code of an existing creator
// @Tags creators
// @Accept json
// @Produce json
// @Param application body models.CreatorApply true "Application payload"
// @Success 201 {object} map[string]interface{} "message: Application submitted successfully, creator: public fields"
// @Failure 400 {object} map[string]interface{} "error: Invalid input or duplicate email"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /creators [post]
func (h *Handler) Apply(c *gin.Context) {
	var input models.CreatorApply

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	creator, err := h.referrals.SubmitApplication(input)
	if err != nil {
		var vErr *referrals.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid input",
				"fields": vErr.Fields,
			})
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "An application with this email already exists",
			})
		case errors.Is(err, repository.ErrCodeAllocationExhausted):
			utils.LogError(err, "Referral code allocation exhausted in Apply")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		default:
			utils.LogError(err, "Error submitting creator application in Apply")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	utils.LogSuccessWithID(creator.ID, "Creator application submitted successfully in Apply")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully! We will review your application and get back to you soon.",
		"creator": creator.Public(),
	})
}

// @Summary Look up a creator by email or referral code
// @Description Self-service lookup for the "retrieve my code" flow; approved creators also get their referral statistics
// @Tags creators
// @Produce json
// @Param email query string false "Creator email"
// @Param code query string false "Referral code"
// @Success 200 {object} map[string]interface{} "creator: public fields, referralStats: statistics if approved"
// @Failure 400 {object} map[string]interface{} "error: Email or referral code is required"
// @Failure 404 {object} map[string]interface{} "error: Creator not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /creators [get]
func (h *Handler) Lookup(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")

	if email == "" && code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email or referral code is required",
		})
		return
	}

	var creator *models.Creator
	var err error
	if email != "" {
		creator, err = h.creators.GetByEmail(email)
	} else {
		creator, err = h.creators.GetByReferralCode(code)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
			return
		}
		utils.LogError(err, "Error fetching creator in Lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Statistics are only shown once the application has been approved;
	// pending and rejected codes exist but stay unreviewed on the front end.
	var stats *models.ReferralStats
	if creator.Status == models.CreatorStatusApproved {
		stats, err = h.referrals.StatsForReferrer(creator.ID)
		if err != nil {
			utils.LogErrorWithID(creator.ID, err, "Error building referral stats in Lookup")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"creator": gin.H{
			"id":               creator.ID,
			"name":             creator.Name,
			"email":            creator.Email,
			"referralCode":     creator.ReferralCode,
			"status":           creator.Status,
			"earnings":         creator.Earnings,
			"referralEarnings": creator.ReferralEarnings,
			"referralCount":    creator.ReferralCount,
			"createdAt":        creator.CreatedAt,
			"approvedAt":       creator.ApprovedAt,
		},
		"referralStats": stats,
	})
}

// @Summary List creators (Admin)
// @Description Paginated creator listing with status filter, substring search and per-status aggregates
// @Tags creators
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param search query string false "Case-insensitive search across name, email and handles"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "creators, pagination, stats"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/creators [get]
func (h *Handler) List(c *gin.Context) {
	params := repository.CreatorListParams{
		Search: c.Query("search"),
		Page:   parseIntDefault(c.Query("page"), 1),
		Limit:  parseIntDefault(c.Query("limit"), 20),
	}
	if status := models.CreatorStatus(c.Query("status")); models.ValidCreatorStatus(status) {
		params.Status = status
	}

	creatorList, total, err := h.creators.List(params)
	if err != nil {
		utils.LogError(err, "Error listing creators in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	stats, err := h.creators.Stats()
	if err != nil {
		utils.LogError(err, "Error computing creator stats in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creators": creatorList,
		"pagination": gin.H{
			"total":      total,
			"page":       params.Page,
			"limit":      params.Limit,
			"totalPages": int(math.Ceil(float64(total) / float64(params.Limit))),
		},
		"stats": stats,
	})
}

// @Summary Get one creator (Admin)
// @Description Full creator record plus its referral ledger entries
// @Tags creators
// @Produce json
// @Param id path string true "Creator ID"
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "creator, referrals"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/creators/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	creator, err := h.creators.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error fetching creator in GetByID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	referralList, err := h.ledger.ListByReferrer(id)
	if err != nil {
		utils.LogErrorWithID(id, err, "Error fetching referrals in GetByID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"creator":   creator,
		"referrals": referralList,
	})
}

// @Summary Update a creator (Admin)
// @Description Partial update restricted to status, earnings, referralEarnings, niche and bio; an earnings change triggers commission recalculation
// @Tags creators
// @Accept json
// @Produce json
// @Param id path string true "Creator ID"
// @Param update body models.CreatorUpdate true "Fields to update"
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "message: Creator updated successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/creators/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var update models.CreatorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	creator, err := h.creators.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error fetching creator in Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	fields := make(map[string]interface{})

	if update.Status != nil {
		if !models.ValidCreatorStatus(*update.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if !models.CanTransitionStatus(creator.Status, *update.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status transition from " + string(creator.Status) + " to " + string(*update.Status),
			})
			return
		}
		fields["status"] = *update.Status

		// approvedAt is stamped on the first approval only and survives
		// later approved/rejected flips.
		if *update.Status == models.CreatorStatusApproved && creator.ApprovedAt == nil {
			fields["approved_at"] = time.Now()
		}
	}
	if update.Earnings != nil {
		fields["earnings"] = *update.Earnings
	}
	if update.ReferralEarnings != nil {
		fields["referral_earnings"] = *update.ReferralEarnings
	}
	if update.Niche != nil {
		fields["niche"] = *update.Niche
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable field provided"})
		return
	}

	if err := h.creators.Updates(id, fields); err != nil {
		utils.LogErrorWithID(id, err, "Error updating creator in Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if update.Earnings != nil && *update.Earnings != creator.Earnings {
		if err := h.referrals.RecalculateCommission(id, *update.Earnings); err != nil {
			// The direct earnings update went through but the referral
			// accounting is now stale; report it so the update can be
			// replayed instead of hiding the inconsistency.
			utils.LogErrorWithID(id, err, "Error recalculating commission in Update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	updated, err := h.creators.GetByID(id)
	if err != nil {
		utils.LogErrorWithID(id, err, "Error reloading creator in Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Creator updated successfully in Update")
	c.JSON(http.StatusOK, gin.H{
		"message": "Creator updated successfully",
		"creator": gin.H{
			"id":               updated.ID,
			"name":             updated.Name,
			"email":            updated.Email,
			"status":           updated.Status,
			"earnings":         updated.Earnings,
			"referralEarnings": updated.ReferralEarnings,
		},
	})
}

// @Summary Delete a creator (Admin)
// @Description Removes the creator and cascades deletion of every ledger entry referencing it as referrer or referred party
// @Tags creators
// @Produce json
// @Param id path string true "Creator ID"
// @Security AdminCookie
// @Success 200 {object} map[string]string "message: Creator deleted successfully"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/creators/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.creators.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error deleting creator in Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Creator deleted successfully in Delete")
	c.JSON(http.StatusOK, gin.H{
		"message": "Creator deleted successfully",
	})
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

package auth

import (
	"errors"
	"net/http"
	"os"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenHours = 24 * 7

type Handler struct {
	admins repository.AdminUserRepository
}

func New(admins repository.AdminUserRepository) *Handler {
	return &Handler{admins: admins}
}

// @Summary Admin login
// @Description Authenticate a back-office account and set the admin session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLogin true "Admin credentials"
// @Success 200 {object} map[string]interface{} "message: Login successful"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Invalid credentials"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /api/admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input models.AdminLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	admin, err := h.admins.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		utils.LogError(err, "Error fetching admin account in Login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(*admin, adminTokenHours)
	if err != nil {
		utils.LogErrorWithID(admin.ID, err, "Error generating admin token in Login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.admins.TouchLastLogin(admin.ID); err != nil {
		utils.LogErrorWithID(admin.ID, err, "Error updating last login in Login")
	}

	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminTokenCookie, token, adminTokenHours*3600, "/", "", secure, true)

	utils.LogSuccessWithID(admin.ID, "Admin logged in successfully in Login")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
		},
	})
}

// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "message: Logged out"
// @Router /api/admin/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(utils.AdminTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// @Summary Verify admin session
// @Description Report whether the current admin cookie is valid
// @Tags auth
// @Produce json
// @Security AdminCookie
// @Success 200 {object} map[string]interface{} "authenticated: true"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /api/admin/verify-auth [get]
func (h *Handler) VerifyAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"adminId":       c.GetString("admin_id"),
		"role":          c.GetString("role"),
	})
}

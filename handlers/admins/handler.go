package admins

import (
	"errors"
	"net/http"
	"strings"

	"lovebae-backend/models"
	"lovebae-backend/repository"
	"lovebae-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	admins repository.AdminUserRepository
}

func New(admins repository.AdminUserRepository) *Handler {
	return &Handler{admins: admins}
}

// @Summary List back-office accounts (Admin)
// @Tags admins
// @Produce json
// @Security AdminCookie
// @Success 200 {array} models.AdminUser
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/users [get]
func (h *Handler) List(c *gin.Context) {
	accounts, err := h.admins.List()
	if err != nil {
		utils.LogError(err, "Error listing admin accounts in List")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// @Summary Create a back-office account (Admin)
// @Tags admins
// @Accept json
// @Produce json
// @Param account body models.AdminCreate true "New account"
// @Security AdminCookie
// @Success 201 {object} models.AdminUser
// @Failure 400 {object} map[string]string "error: Invalid input or duplicate email"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/users [post]
func (h *Handler) Create(c *gin.Context) {
	var input models.AdminCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !models.ValidAdminRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := h.admins.GetByEmail(email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An account with this email already exists"})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		utils.LogError(err, "Error checking existing account in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing password in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	account := models.AdminUser{
		Username: strings.TrimSpace(input.Username),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := h.admins.Create(&account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An account with this email or username already exists"})
			return
		}
		utils.LogError(err, "Error creating admin account in Create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(account.ID, "Admin account created in Create")
	c.JSON(http.StatusCreated, account)
}

// @Summary Get one back-office account (Admin)
// @Tags admins
// @Produce json
// @Param id path string true "Account ID"
// @Security AdminCookie
// @Success 200 {object} models.AdminUser
// @Failure 404 {object} map[string]string "error: Account not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/users/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	account, err := h.admins.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error fetching admin account in GetByID")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// @Summary Update a back-office account (Admin)
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body models.AdminUpdate true "Fields to update"
// @Security AdminCookie
// @Success 200 {object} models.AdminUser
// @Failure 400 {object} map[string]string "error: Invalid input or email in use"
// @Failure 404 {object} map[string]string "error: Account not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var input models.AdminUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	account, err := h.admins.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error fetching admin account in Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != account.Email {
		if _, err := h.admins.GetByEmail(email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use by another account"})
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			utils.LogErrorWithID(id, err, "Error checking email in Update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	account.Username = strings.TrimSpace(input.Username)
	account.Email = email
	if input.Role != "" {
		if !models.ValidAdminRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		account.Role = input.Role
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.LogErrorWithID(id, err, "Error hashing password in Update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		account.Password = string(hash)
	}

	if err := h.admins.Update(account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use by another account"})
			return
		}
		utils.LogErrorWithID(id, err, "Error updating admin account in Update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Admin account updated in Update")
	c.JSON(http.StatusOK, account)
}

// @Summary Delete a back-office account (Admin)
// @Tags admins
// @Produce json
// @Param id path string true "Account ID"
// @Security AdminCookie
// @Success 200 {object} map[string]string "message: Account deleted successfully"
// @Failure 404 {object} map[string]string "error: Account not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.admins.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		utils.LogErrorWithID(id, err, "Error deleting admin account in Delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	utils.LogSuccessWithID(id, "Admin account deleted in Delete")
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

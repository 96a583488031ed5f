package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-app/booking-api/internal/httpresp"
	"github.com/barberia-app/booking-api/internal/models"
	"github.com/barberia-app/booking-api/internal/validators"
)

// UserHandler covers the admin user-management surface plus the public
// barber directory clients browse before booking.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	httpresp.List(c, barbers)
}

// --------- Admin ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user_id"})
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	httpresp.OK(c, user)
}

type AdminUpdateUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	Role  string  `json:"role" binding:"omitempty,oneof=client barber admin"`

	PriceHaircut          *int `json:"price_haircut"`
	PriceHaircutWithBeard *int `json:"price_haircut_with_beard"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user_id"})
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if req.Email != "" {
		email := validators.NormalizeEmail(req.Email)
		if email != user.Email {
			var count int64
			h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
			if count > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
				return
			}
			user.Email = email
		}
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.PriceHaircut != nil {
		user.PriceHaircut = *req.PriceHaircut
	}
	if req.PriceHaircutWithBeard != nil {
		user.PriceHaircutWithBeard = *req.PriceHaircutWithBeard
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user_id"})
		return
	}

	if err := h.db.Delete(&models.User{}, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

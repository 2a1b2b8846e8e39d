package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"medbox-cloud-reminder/config"
	"medbox-cloud-reminder/models"
	"medbox-cloud-reminder/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a caregiver account
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if email already exists
	var existing models.Caregiver
	result := config.DB.Where("email = ?", input.Email).First(&existing)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	caregiver := models.Caregiver{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		IsActive: true,
	}

	if err := config.DB.Create(&caregiver).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := utils.GenerateToken(caregiver.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"caregiver": gin.H{
			"id":    caregiver.ID,
			"email": caregiver.Email,
			"name":  caregiver.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email := strings.TrimSpace(input.Email)

	var caregiver models.Caregiver
	result := config.DB.Where("email = ?", email).First(&caregiver)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, caregiver.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(caregiver.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&caregiver).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"caregiver": gin.H{
			"id":    caregiver.ID,
			"email": caregiver.Email,
			"name":  caregiver.Name,
		},
	})
}

func Me(c *gin.Context) {
	caregiverID, exists := c.Get("caregiverId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Caregiver ID not found in context"})
		return
	}

	var caregiver models.Caregiver
	if err := config.DB.First(&caregiver, "id = ?", caregiverID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Caregiver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"caregiver": gin.H{
			"id":    caregiver.ID,
			"email": caregiver.Email,
			"name":  caregiver.Name,
			"phone": caregiver.Phone,
		},
	})
}

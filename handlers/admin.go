package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockcraft/config"
	"stockcraft/models"
)

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

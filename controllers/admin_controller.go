package controllers

import (
	"net/http"
	"time"

	"github.com/azamatp047/shukrona-backend/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct{ DB *gorm.DB }

func NewAdminController(db *gorm.DB) *AdminController { return &AdminController{DB: db} }

// Dashboard: headline counts for the admin bot's main screen.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers int64
	var totalProducts int64
	var activeOrders int64
	var deliveredToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count users failed"})
		return
	}

	if err := db.Model(&entity.Product{}).
		Where("status = ?", entity.ProductActive).
		Count(&totalProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count products failed"})
		return
	}

	if err := db.Model(&entity.Order{}).
		Where("status IN ?", []string{entity.OrderPending, entity.OrderWithCourier}).
		Count(&activeOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count active orders failed"})
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).
		Where("status = ? AND delivered_at >= ?", entity.OrderDelivered, start).
		Count(&deliveredToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count delivered today failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":     totalUsers,
		"totalProducts":  totalProducts,
		"activeOrders":   activeOrders,
		"deliveredToday": deliveredToday,
	})
}

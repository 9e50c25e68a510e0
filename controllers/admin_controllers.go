package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats collects the counters shown on the admin landing page.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalReservations int64 `json:"total_reservations"`
		TodayReservations int64 `json:"today_reservations"`
		ReservationStats  struct {
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
			Cancelled int64 `json:"cancelled"`
		} `json:"reservation_stats"`
		UnreadMessages      int64 `json:"unread_messages"`
		UnseenNotifications int64 `json:"unseen_notifications"`
		MenuItems           int64 `json:"menu_items"`
	}

	ac.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations)
	ac.DB.Model(&models.Reservation{}).Where("reservation_date = ?", today).Count(&stats.TodayReservations)

	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationPending).Count(&stats.ReservationStats.Pending)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationConfirmed).Count(&stats.ReservationStats.Confirmed)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationCancelled).Count(&stats.ReservationStats.Cancelled)

	ac.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)
	ac.DB.Model(&models.Notification{}).Where("is_seen = ?", false).Count(&stats.UnseenNotifications)
	ac.DB.Model(&models.MenuItem{}).Count(&stats.MenuItems)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/services"
	"github.com/lamaison-az/restaurant-app/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		Service: services.NewReservationService(services.NewGormReservationStore(db)),
	}
}

// CreateReservation handles the public booking form.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body struct {
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required"`
		Phone           string `json:"phone" binding:"required"`
		Date            string `json:"date" binding:"required"`
		Time            string `json:"time" binding:"required"`
		Guests          int    `json:"guests" binding:"required"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resv, err := rc.Service.Submit(services.ReservationInput{
		Name:            body.Name,
		Email:           body.Email,
		Phone:           body.Phone,
		Date:            body.Date,
		Time:            body.Time,
		Guests:          body.Guests,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrSlotUnavailable):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusBadGateway, err)
		}
		return
	}

	title := "New reservation"
	notif := models.Notification{
		Kind:    models.NotificationReservation,
		Title:   &title,
		Message: fmt.Sprintf("%s booked %s at %s for %d guests", resv.Name, resv.ReservationDate, resv.ReservationTime, resv.Guests),
	}
	if err := rc.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to record reservation notification: %v", err)
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation received", gin.H{
		"code":   resv.Code,
		"date":   resv.ReservationDate,
		"time":   resv.ReservationTime,
		"status": resv.Status,
	})
}

// GetSlots returns per-slot availability for one date, for the booking form.
func (rc *ReservationController) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date query parameter is required"))
		return
	}

	slots, err := rc.Service.SlotsForDate(date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
		} else {
			utils.RespondError(c, http.StatusBadGateway, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Slot availability", gin.H{
		"date":  date,
		"slots": slots,
	})
}

// GetAllReservations lists reservations for the admin panel, optionally
// filtered by date and status.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Model(&models.Reservation{}).Order("reservation_date DESC, reservation_time ASC")
	if date := c.Query("date"); date != "" {
		query = query.Where("reservation_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All reservations", reservations)
}

// UpdateReservationStatus applies pending->confirmed, pending->cancelled or
// confirmed->cancelled. Cancelled is terminal; the row stays for history.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	idStr := c.Param("resv_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Status != models.ReservationConfirmed && body.Status != models.ReservationCancelled {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status %q", body.Status))
		return
	}

	var resv models.Reservation
	if err := rc.DB.First(&resv, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !resv.CanTransitionTo(body.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change status from %s to %s", resv.Status, body.Status))
		return
	}

	resv.Status = body.Status
	if err := rc.DB.Save(&resv).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %s -> %s", resv.Code, resv.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", resv)
}

package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/utils"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// CreateMessage handles the public contact form. Field minimums match the
// form's own validation so the API rejects what the UI would.
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required,min=2"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required,min=5"`
		Message string `json:"message" binding:"required,min=20"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg := models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	title := "New contact message"
	notif := models.Notification{
		Kind:    models.NotificationContact,
		Title:   &title,
		Message: fmt.Sprintf("%s: %s", msg.Name, msg.Subject),
	}
	if err := cc.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to record contact notification: %v", err)
	}

	utils.RespondJSON(c, http.StatusCreated, "Message received", gin.H{"message_id": msg.ID})
}

// GetAllMessages lists contact messages for the admin panel, newest first.
func (cc *ContactController) GetAllMessages(c *gin.Context) {
	query := cc.DB.Model(&models.ContactMessage{}).Order("created_at DESC")
	if unread := c.Query("unread"); unread == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All contact messages", messages)
}

// MarkMessageRead
func (cc *ContactController) MarkMessageRead(c *gin.Context) {
	idStr := c.Param("msg_id")
	id, _ := strconv.Atoi(idStr)

	var msg models.ContactMessage
	if err := cc.DB.First(&msg, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	msg.IsRead = true
	if err := cc.DB.Save(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message marked as read", msg)
}

// DeleteMessage
func (cc *ContactController) DeleteMessage(c *gin.Context) {
	idStr := c.Param("msg_id")
	id, _ := strconv.Atoi(idStr)

	if err := cc.DB.Delete(&models.ContactMessage{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message deleted", gin.H{"message_id": id})
}

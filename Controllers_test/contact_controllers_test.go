package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/controllers"
	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/utils"
)

func setupTestDBForContact(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:contacttest%d?mode=memory&cache=shared", time.Now().UnixNano())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}, &models.Notification{}))
	return db
}

func setupContactRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	contactCtrl := controllers.NewContactController(db)
	router.POST("/contact", contactCtrl.CreateMessage)
	router.GET("/admin/messages", contactCtrl.GetAllMessages)
	router.PATCH("/admin/messages/:msg_id/read", contactCtrl.MarkMessageRead)
	router.DELETE("/admin/messages/:msg_id", contactCtrl.DeleteMessage)
	return router
}

func TestContactMessageFlow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForContact(t)
	router := setupContactRouter(db)

	payload := map[string]interface{}{
		"name":    "John Smith",
		"email":   "john@example.com",
		"subject": "Private dining enquiry",
		"message": "We would like to book the private room for an anniversary dinner.",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unread filter shows it, a notification row exists.
	req, _ = http.NewRequest("GET", "/admin/messages?unread=true", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Data []models.ContactMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	msgID := listResp.Data[0].ID

	var notifCount int64
	db.Model(&models.Notification{}).Where("kind = ?", models.NotificationContact).Count(&notifCount)
	assert.EqualValues(t, 1, notifCount)

	// Mark read, unread filter empties.
	req, _ = http.NewRequest("PATCH", fmt.Sprintf("/admin/messages/%d/read", msgID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/admin/messages?unread=true", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)

	// Delete
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/admin/messages/%d", msgID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactMessageValidation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForContact(t)
	router := setupContactRouter(db)

	// Message under 20 characters fails binding.
	payload := map[string]interface{}{
		"name":    "John Smith",
		"email":   "john@example.com",
		"subject": "Enquiry",
		"message": "too short",
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

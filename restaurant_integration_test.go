package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/router"
	"github.com/lamaison-az/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB migrates the full schema into shared in-memory SQLite and seeds
// the admin account plus a small menu.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:integration%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.ContactMessage{},
		&models.Notification{},
	))

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:     "Admin",
		Email:    "admin@lamaison.az",
		Password: string(hashed),
		Role:     "admin",
	}).Error)

	category := models.MenuCategory{NameAz: "Əsas yeməklər", NameEn: "Mains", DisplayOrder: 1}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.MenuItem{
		CategoryID: category.ID,
		NameAz:     "Vaqyu mal əti",
		NameEn:     "Wagyu Beef Tenderloin",
		Price:      85,
	}).Error)

	return db
}

func loginTest(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/login", map[string]interface{}{
		"email":    "admin@lamaison.az",
		"password": "admin-password",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func futureDate(daysAhead int) string {
	d := time.Now().AddDate(0, 0, daysAhead)
	if d.Weekday() == time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func reservationBody(date, timeStr string) map[string]interface{} {
	return map[string]interface{}{
		"name":   "John Smith",
		"email":  "john@example.com",
		"phone":  "(212) 555-1234",
		"date":   date,
		"time":   timeStr,
		"guests": 4,
	}
}

// TestReservationEndToEnd walks the public booking surface and the admin
// panel: book, collide, free a slot by cancelling, rebook.
func TestReservationEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	token := loginTest(t, r)
	date := futureDate(7)

	// Public menu is up.
	w := doJSON(t, r, "GET", "/menu", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Fill the day: lunch at 12:00, dinner at 19:00.
	require.Equal(t, http.StatusCreated, doJSON(t, r, "POST", "/reservations", reservationBody(date, "12:00"), "").Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, "POST", "/reservations", reservationBody(date, "19:00"), "").Code)

	// 19:30 is only 30 minutes from the existing 19:00 booking -> unavailable.
	w = doJSON(t, r, "POST", "/reservations", reservationBody(date, "19:30"), "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// 23:30 is not a slot the restaurant offers -> invalid input, not a conflict.
	w = doJSON(t, r, "POST", "/reservations", reservationBody(date, "23:30"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Admin sees both reservations.
	w = doJSON(t, r, "GET", "/admin/reservations?date="+date, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []models.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 2)

	// Cancel the 19:00 booking…
	var evening models.Reservation
	require.NoError(t, db.Where("reservation_date = ? AND reservation_time = ?", date, "19:00").First(&evening).Error)
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/admin/reservations/%d/status", evening.ID),
		map[string]string{"status": "cancelled"}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// …and 19:00 is bookable again.
	w = doJSON(t, r, "POST", "/reservations", reservationBody(date, "19:00"), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// The dashboard reflects the day.
	w = doJSON(t, r, "GET", "/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var statsResp struct {
		Data struct {
			TotalReservations int64 `json:"total_reservations"`
			ReservationStats  struct {
				Pending   int64 `json:"pending"`
				Cancelled int64 `json:"cancelled"`
			} `json:"reservation_stats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statsResp))
	assert.EqualValues(t, 3, statsResp.Data.TotalReservations)
	assert.EqualValues(t, 2, statsResp.Data.ReservationStats.Pending)
	assert.EqualValues(t, 1, statsResp.Data.ReservationStats.Cancelled)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	w := doJSON(t, r, "GET", "/admin/reservations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "GET", "/admin/stats", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSlotAvailabilityEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	date := futureDate(14)

	require.Equal(t, http.StatusCreated, doJSON(t, r, "POST", "/reservations", reservationBody(date, "13:00"), "").Code)

	w := doJSON(t, r, "GET", "/reservations/slots?date="+date, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Slots []struct {
				Time      string `json:"time"`
				Available bool   `json:"available"`
			} `json:"slots"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Slots, 14)

	byTime := make(map[string]bool)
	for _, s := range resp.Data.Slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["13:00"], "taken")
	assert.False(t, byTime["12:00"], "within 4h of 13:00")
	assert.True(t, byTime["18:00"], "exactly 5h after 13:00")
}

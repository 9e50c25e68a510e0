package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/models"
	"github.com/lamaison-az/restaurant-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetPublicMenu lists available items only, for the public menu page.
// Optional filter: ?category_id=
func (mc *MenuController) GetPublicMenu(c *gin.Context) {
	query := mc.DB.Where("is_available = ?", true)
	if catStr := c.Query("category_id"); catStr != "" {
		catID, err := strconv.Atoi(catStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		query = query.Where("category_id = ?", catID)
	}

	var items []models.MenuItem
	if err := query.Order("category_id ASC, name_en ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu", items)
}

// GetAllMenuItems lists everything including unavailable items, for the admin panel.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category_id ASC, name_en ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All menu items", items)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body struct {
		CategoryID    uint    `json:"category_id" binding:"required"`
		NameAz        string  `json:"name_az" binding:"required"`
		NameEn        string  `json:"name_en" binding:"required"`
		DescriptionAz *string `json:"description_az"`
		DescriptionEn *string `json:"description_en"`
		Price         float64 `json:"price" binding:"required,gt=0"`
		IsVegan       bool    `json:"is_vegan"`
		IsSpicy       bool    `json:"is_spicy"`
		IsGlutenFree  bool    `json:"is_gluten_free"`
		IsAvailable   *bool   `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, body.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		CategoryID:    body.CategoryID,
		NameAz:        body.NameAz,
		NameEn:        body.NameEn,
		DescriptionAz: body.DescriptionAz,
		DescriptionEn: body.DescriptionEn,
		Price:         body.Price,
		IsVegan:       body.IsVegan,
		IsSpicy:       body.IsSpicy,
		IsGlutenFree:  body.IsGlutenFree,
		IsAvailable:   true,
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	var body struct {
		CategoryID    *uint    `json:"category_id"`
		NameAz        *string  `json:"name_az"`
		NameEn        *string  `json:"name_en"`
		DescriptionAz *string  `json:"description_az"`
		DescriptionEn *string  `json:"description_en"`
		Price         *float64 `json:"price"`
		IsVegan       *bool    `json:"is_vegan"`
		IsSpicy       *bool    `json:"is_spicy"`
		IsGlutenFree  *bool    `json:"is_gluten_free"`
		IsAvailable   *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.CategoryID != nil {
		var category models.MenuCategory
		if err := mc.DB.First(&category, *body.CategoryID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		item.CategoryID = *body.CategoryID
	}
	if body.NameAz != nil {
		item.NameAz = *body.NameAz
	}
	if body.NameEn != nil {
		item.NameEn = *body.NameEn
	}
	if body.DescriptionAz != nil {
		item.DescriptionAz = body.DescriptionAz
	}
	if body.DescriptionEn != nil {
		item.DescriptionEn = body.DescriptionEn
	}
	if body.Price != nil {
		item.Price = *body.Price
	}
	if body.IsVegan != nil {
		item.IsVegan = *body.IsVegan
	}
	if body.IsSpicy != nil {
		item.IsSpicy = *body.IsSpicy
	}
	if body.IsGlutenFree != nil {
		item.IsGlutenFree = *body.IsGlutenFree
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	idStr := c.Param("item_id")
	id, _ := strconv.Atoi(idStr)

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

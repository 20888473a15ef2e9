package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type SubcategoryInput struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// GetAllCategories returns every category with its subcategories, newest
// first, for the navbar and the admin back-office.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Subcategories").
			Order("created_at DESC").
			Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// DeleteCategory removes a category; its subcategories cascade, products keep
// their rows with the reference cleared.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}

		var category models.Category
		if err := db.Preload("Subcategories").First(&category, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).
				Where("category_id = ?", category.ID).
				Update("category_id", nil).Error; err != nil {
				return err
			}
			if len(category.Subcategories) > 0 {
				subIDs := make([]uint, 0, len(category.Subcategories))
				for _, sub := range category.Subcategories {
					subIDs = append(subIDs, sub.ID)
				}
				if err := tx.Model(&models.Product{}).
					Where("subcategory_id IN ?", subIDs).
					Update("subcategory_id", nil).Error; err != nil {
					return err
				}
			}
			return tx.Select("Subcategories").Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

func CreateSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}
		subcategory := models.Subcategory{CategoryID: category.ID, Name: input.Name}
		if err := db.Create(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}
		c.JSON(http.StatusCreated, subcategory)
	}
}

func DeleteSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Product{}).
				Where("subcategory_id = ?", id).
				Update("subcategory_id", nil).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.Subcategory{}, id)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
	}
}

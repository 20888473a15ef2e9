package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
	"github.com/nextcartlabs/storefront-api/storage"
)

// CreateProduct creates a new product from a multipart form: core fields, one
// or more images uploaded to object storage, and the initial variant
// (color + size + stock).
func CreateProduct(db *gorm.DB, store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		price, err := strconv.Atoi(priceStr)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		company := c.PostForm("company")
		description := c.PostForm("description")
		featured := c.PostForm("featured") == "true"

		var categoryID, subcategoryID *uint
		if v := c.PostForm("category_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			id := uint(id64)
			categoryID = &id
		}
		if v := c.PostForm("subcategory_id"); v != "" {
			id64, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory_id"})
				return
			}
			id := uint(id64)
			subcategoryID = &id
		}

		key, err := models.ParseVariantKey(c.PostForm("color"), c.PostForm("size"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		stock, err := strconv.Atoi(c.DefaultPostForm("stock", "0"))
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["image"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}

		var imageURLs []string
		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
				return
			}
			url, err := store.Upload(c.Request.Context(), file)
			file.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			imageURLs = append(imageURLs, url)
		}

		var product models.Product
		err = db.Transaction(func(tx *gorm.DB) error {
			product = models.Product{
				Name:          name,
				Company:       company,
				Description:   description,
				Price:         price,
				Featured:      featured,
				CategoryID:    categoryID,
				SubcategoryID: subcategoryID,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			for _, url := range imageURLs {
				if err := tx.Create(&models.ProductImage{
					ProductID: product.ID,
					ImageURL:  url,
				}).Error; err != nil {
					return err
				}
			}
			return tx.Create(&models.ProductVariant{
				ProductID: product.ID,
				Color:     key.Color,
				Size:      key.Size,
				Stock:     stock,
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/nextcartlabs/storefront-api/models"
)

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// sheet. Columns: ID, Name, Company, Description, Price, Featured,
// CategoryID, SubcategoryID. A row with an ID matching an existing product
// updates it; unparseable rows are skipped and counted.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			company := get(2)
			description := get(3)
			price, priceErr := strconv.Atoi(get(4))
			featured := strings.EqualFold(get(5), "true")

			if name == "" || priceErr != nil || price < 0 {
				skippedCount++
				continue
			}

			var categoryID, subcategoryID *uint
			if v := get(6); v != "" {
				if id, err := strconv.Atoi(v); err == nil {
					cid := uint(id)
					categoryID = &cid
				}
			}
			if v := get(7); v != "" {
				if id, err := strconv.Atoi(v); err == nil {
					sid := uint(id)
					subcategoryID = &sid
				}
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = name
						existing.Company = company
						existing.Description = description
						existing.Price = price
						existing.Featured = featured
						existing.CategoryID = categoryID
						existing.SubcategoryID = subcategoryID
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			product := models.Product{
				Name:          name,
				Company:       company,
				Description:   description,
				Price:         price,
				Featured:      featured,
				CategoryID:    categoryID,
				SubcategoryID: subcategoryID,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

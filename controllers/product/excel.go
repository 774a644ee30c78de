package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/cache"
	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

// ImportProductsFromExcel bulk-creates or updates products from an
// uploaded spreadsheet. Rows with an ID update that product, rows
// without one create a new product; malformed rows are skipped and
// counted, never aborting the whole import.
func ImportProductsFromExcel(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
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
			sku := strings.ToUpper(get(2))
			slug := get(3)
			shortDesc := get(4)
			desc := get(5)
			price, err1 := strconv.ParseFloat(get(6), 64)
			comparePrice, _ := strconv.ParseFloat(get(7), 64)
			costPrice, _ := strconv.ParseFloat(get(8), 64)
			stock, _ := strconv.Atoi(get(9))
			weight, _ := strconv.ParseFloat(get(10), 64)
			image := get(11)
			status := get(12)
			categoryIDStr := get(13)
			brandIDStr := get(14)

			if name == "" || sku == "" || err1 != nil || price <= 0 {
				skippedCount++
				continue
			}
			if slug == "" {
				slug = validation.GenerateSlug(name)
			}
			if status == "" {
				status = string(models.ProductStatusDraft)
			}

			var categoryID, brandID *uint
			if id, err := strconv.Atoi(categoryIDStr); err == nil && id > 0 {
				v := uint(id)
				categoryID = &v
			}
			if id, err := strconv.Atoi(brandIDStr); err == nil && id > 0 {
				v := uint(id)
				brandID = &v
			}

			product := models.Product{
				Name:             name,
				SKU:              sku,
				Slug:             slug,
				ShortDescription: shortDesc,
				Description:      desc,
				Price:            price,
				ComparePrice:     comparePrice,
				CostPrice:        costPrice,
				Stock:            stock,
				Weight:           weight,
				Image:            image,
				Status:           models.ProductStatus(status),
				CategoryID:       categoryID,
				BrandID:          brandID,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						product.Rating = existing.Rating
						product.ReviewCount = existing.ReviewCount
						product.CreatedAt = existing.CreatedAt
						if err := db.Save(&product).Error; err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			// Insert new product
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		store.InvalidateListings(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "SKU", "Slug", "ShortDescription", "Description",
			"Price", "ComparePrice", "CostPrice", "Stock", "Weight",
			"Image", "Status", "CategoryID", "BrandID", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.ShortDescription)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.ComparePrice)
			row.AddCell().SetValue(p.CostPrice)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Weight)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(string(p.Status))
			if p.CategoryID != nil {
				row.AddCell().SetValue(*p.CategoryID)
			} else {
				row.AddCell().SetValue("")
			}
			if p.BrandID != nil {
				row.AddCell().SetValue(*p.BrandID)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/jarvnw/website-umkm-store/models"
	"github.com/jarvnw/website-umkm-store/store"
)

var excelHeaders = []string{
	"ID", "Name", "Description", "Category", "Price", "OriginalPrice",
	"Image", "IsFeatured", "Variations",
}

// ExportProductsToExcel streams the catalog as an .xlsx download. Variations
// are flattened to "name:price:stock" triples joined by "|".
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.GetProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.IsFeatured)

			var variations []string
			for _, v := range p.Variations {
				variations = append(variations,
					fmt.Sprintf("%s:%g:%d", v.Name, v.Price, v.Stock))
			}
			row.AddCell().SetValue(strings.Join(variations, "|"))
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// ImportProductsFromExcel bulk-upserts products from an uploaded sheet using
// the export format. Rows without a name or a parsable price are skipped.
func ImportProductsFromExcel(s *store.Store) gin.HandlerFunc {
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
		importedCount, skippedCount := 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			price, priceErr := strconv.ParseFloat(get(4), 64)
			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				ID:          get(0),
				Name:        name,
				Description: get(2),
				Category:    get(3),
				Price:       price,
				Image:       get(6),
				IsFeatured:  strings.EqualFold(get(7), "true"),
				CreatedAt:   time.Now(),
			}
			product.OriginalPrice, _ = strconv.ParseFloat(get(5), 64)
			if product.ID == "" {
				product.ID = uuid.NewString()
			}
			if product.Category == "" {
				product.Category = "General"
			}
			if product.Image != "" {
				product.CoverMedia = models.Media{Type: models.MediaImage, URL: product.Image}
			}
			product.Variations = parseVariationsCell(product.ID, get(8))
			if len(product.Variations) > 0 {
				product.Price = product.Variations[0].Price
			}

			if err := s.SaveProduct(product); err != nil {
				skippedCount++
				continue
			}
			importedCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"imported": importedCount,
			"skipped":  skippedCount,
		})
	}
}

// parseVariationsCell decodes "name:price:stock|name:price:stock".
func parseVariationsCell(productID, cell string) []models.Variation {
	if cell == "" {
		return nil
	}
	var variations []models.Variation
	for _, chunk := range strings.Split(cell, "|") {
		parts := strings.Split(chunk, ":")
		if len(parts) < 2 {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || strings.TrimSpace(parts[0]) == "" {
			continue
		}
		v := models.Variation{
			ID:        uuid.NewString(),
			ProductID: productID,
			Name:      strings.TrimSpace(parts[0]),
			Price:     price,
		}
		if len(parts) > 2 {
			v.Stock, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
		}
		variations = append(variations, v)
	}
	return variations
}

package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/models"
)

// GetProducts lists the catalog with optional filtering and sorting.
// Query params: search (name/description substring), tag (facet name),
// sort_by (id|name|created_at), order (asc|desc).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		tag := c.Query("tag")
		sortBy := c.DefaultQuery("sort_by", "id")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		switch sortBy {
		case "id", "name", "created_at":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		query := db.Model(&models.Product{}).Preload("Tags")

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
				likePattern, likePattern,
			)
		}

		if tag != "" {
			query = query.
				Joins("JOIN product_tags pt ON pt.product_id = products.id").
				Joins("JOIN tags ON tags.id = pt.tag_id").
				Where("tags.name = ?", tag)
		}

		var products []models.Product
		if err := query.Order(sortBy + " " + sortOrder).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/models"
)

// GetProductByID returns a single product with its detail rows, gallery
// images, tags and resolved related products.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		err = db.
			Preload("Tags").
			Preload("Details", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			Preload("AdditionalImages", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			Preload("Related", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			First(&product, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		related, err := relatedProducts(db, product.Related)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve related products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product":          product,
			"related_products": related,
		})
	}
}

// relatedProducts resolves the relation rows into product records, keeping
// the curated display order.
func relatedProducts(db *gorm.DB, relations []models.ProductRelation) ([]models.Product, error) {
	if len(relations) == 0 {
		return []models.Product{}, nil
	}
	ids := make([]uint, 0, len(relations))
	for _, rel := range relations {
		ids = append(ids, rel.RelatedID)
	}
	var products []models.Product
	if err := db.Preload("Tags").Find(&products, ids).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]models.Product, 0, len(relations))
	for _, rel := range relations {
		if p, ok := byID[rel.RelatedID]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

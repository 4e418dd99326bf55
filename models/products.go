package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Display price in the shop's fixed-prefix form, e.g. "Fr. 78".
	Price            string            `gorm:"not null" json:"price"`
	Image            string            `gorm:"not null" json:"image"`
	Care             string            `json:"care,omitempty"`
	Details          []ProductDetail   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	AdditionalImages []ProductImage    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"additionalImages,omitempty"`
	Tags             []Tag             `gorm:"many2many:product_tags;" json:"tags"`
	Related          []ProductRelation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt        time.Time         `json:"-"`
	UpdatedAt        time.Time         `json:"-"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}

// ProductDetail is one bullet row on the product detail page, kept in
// display order.
type ProductDetail struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Position  int    `json:"-"`
	Text      string `gorm:"not null" json:"text"`
}

// ProductImage is an additional gallery image for a product.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Position  int    `json:"-"`
	URL       string `gorm:"not null" json:"url"`
}

// ProductRelation links a product to a related product shown under
// "you may also like", kept in display order.
type ProductRelation struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index"`
	RelatedID uint
	Position  int
}

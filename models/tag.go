package models

// Tag is a browsing facet on the catalog ("90s", "Denim", "Rare Finds").
type Tag struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Products []Product `gorm:"many2many:product_tags" json:"-"`
}

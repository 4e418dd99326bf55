package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/YannikAckermann/Vintage-Store/models"
)

type seedProduct struct {
	name        string
	description string
	price       string
	image       string
	tags        []string
	details     []string
	care        string
	extraImages []string
	related     []uint
}

var catalogSeed = []seedProduct{
	{
		name:        "Vintage Denim Jacket",
		description: "Classic blue denim jacket with authentic worn details from the 90s",
		price:       "Fr. 78",
		image:       "/images/product1.png",
		tags:        []string{"90s", "Outerwear", "Denim"},
		details: []string{
			"Authentic vintage piece from the early 1990s",
			"Medium wash blue denim",
			"Button front closure",
			"Chest flap pockets with button closure",
			"Adjustable button tabs at waist",
			"100% cotton denim",
			"Unisex style, women's size M (fits US 6-8)",
			"Excellent vintage condition with natural character and fade",
		},
		care:        "Machine wash cold with like colors. Tumble dry low. Do not bleach.",
		extraImages: []string{"/images/product1.png", "/images/product1.png", "/images/product1.png"},
		related:     []uint{2, 6, 7},
	},
	{
		name:        "High-Waist Mom Jeans",
		description: "Authentic high-waisted light wash denim jeans with tapered leg",
		price:       "Fr. 65",
		image:       "/images/product2.png",
		tags:        []string{"90s", "Denim"},
		details: []string{
			"Authentic vintage piece from the 1990s",
			"Light wash blue denim",
			"High-waisted fit",
			"Tapered leg",
			"Button and zip fly closure",
			"100% cotton denim",
			"Women's size 28 (fits US 6-8)",
			"Excellent vintage condition",
		},
		care:        "Machine wash cold with like colors. Tumble dry low. Do not bleach.",
		extraImages: []string{"/images/product2.png", "/images/product2.png", "/images/product2.png"},
		related:     []uint{1, 3, 5},
	},
	{
		name:        "Patterned Silk Scarf",
		description: "Vintage silk scarf with colorful geometric pattern from the 1980s",
		price:       "Fr. 32",
		image:       "/images/product3.png",
		tags:        []string{"80s", "Accessories"},
		details: []string{
			"Authentic vintage piece from the 1980s",
			"100% silk",
			"Vibrant geometric pattern",
			`Square shape, approximately 30" x 30"`,
			"Hand-rolled edges",
			"Excellent vintage condition",
		},
		care:        "Dry clean only or hand wash cold with mild detergent. Lay flat to dry. Iron on low heat if needed.",
		extraImages: []string{"/images/product3.png", "/images/product3.png", "/images/product3.png"},
		related:     []uint{4, 8, 2},
	},
	{
		name:        "Brown Leather Bag",
		description: "Distressed leather satchel with brass hardware and adjustable strap",
		price:       "Fr. 95",
		image:       "/images/product4.png",
		tags:        []string{"Accessories", "Rare Finds"},
		details: []string{
			"Authentic vintage piece from the 1970s",
			"Genuine distressed leather",
			"Brass hardware",
			"Adjustable shoulder strap",
			"Interior pocket",
			"Magnetic snap closure",
			`Dimensions: 10" H x 12" W x 3" D`,
			"Good vintage condition with natural patina and character",
		},
		care:        "Wipe clean with a damp cloth. Condition with leather conditioner as needed.",
		extraImages: []string{"/images/product4.png", "/images/product4.png", "/images/product4.png"},
		related:     []uint{3, 8, 6},
	},
	{
		name:        "Floral Maxi Dress",
		description: "Flowy bohemian floral print maxi dress with bell sleeves from the 70s",
		price:       "Fr. 85",
		image:       "/images/product5.png",
		tags:        []string{"70s", "Dresses"},
		details: []string{
			"Authentic vintage piece from the 1970s",
			"Bohemian floral print",
			"V-neckline",
			"Short puff sleeves",
			"Maxi length",
			"Lightweight cotton blend fabric",
			"Women's size S/M (fits US 4-8)",
			"Excellent vintage condition",
		},
		care:        "Hand wash cold. Lay flat to dry. Iron on low heat if needed.",
		extraImages: []string{"/images/product5.png", "/images/product5.png", "/images/product5.png"},
		related:     []uint{6, 3, 7},
	},
	{
		name:        "Corduroy Jacket",
		description: "Authentic 1970s brown corduroy jacket with patch pockets",
		price:       "Fr. 110",
		image:       "/images/product6.png",
		tags:        []string{"70s", "Outerwear", "Rare Finds"},
		details: []string{
			"Authentic vintage piece from the 1970s",
			"Brown corduroy fabric",
			"Button front closure",
			"Chest flap pockets",
			"Classic collar",
			"Cotton corduroy outer",
			"Women's size M (fits US 6-8)",
			"Excellent vintage condition",
		},
		care:        "Dry clean only.",
		extraImages: []string{"/images/product6.png", "/images/product6.png", "/images/product6.png"},
		related:     []uint{1, 5, 4},
	},
	{
		name:        "Vintage Band Tee",
		description: "Original 1980s rock band tour t-shirt in well-loved condition",
		price:       "Fr. 48",
		image:       "/images/product7.png",
		tags:        []string{"80s", "Tops"},
		details: []string{
			"Authentic vintage piece from the 1980s",
			"Original rock band tour merchandise",
			"Rock & Roll Tour graphic",
			"Black cotton fabric",
			"Crew neck",
			"Short sleeves",
			"Women's size M (fits US 6-8)",
			"Well-loved vintage condition with natural fading and character",
		},
		care:        "Machine wash cold inside out. Tumble dry low. Do not iron directly on graphic.",
		extraImages: []string{"/images/product7.png", "/images/product7.png", "/images/product7.png"},
		related:     []uint{1, 2, 8},
	},
	{
		name:        "Leather Platform Boots",
		description: "Chunky black leather platform boots reminiscent of 90s grunge era",
		price:       "Fr. 125",
		image:       "/images/product8.png",
		tags:        []string{"90s", "Accessories", "Rare Finds"},
		details: []string{
			"Authentic vintage piece from the 1990s",
			"Black leather upper",
			"Chunky platform sole",
			"Pull-on style",
			"Ribbed knit top",
			"Rubber sole",
			"Women's size 8 (EU 39)",
			"Excellent vintage condition",
		},
		care:        "Wipe clean with a damp cloth. Condition with leather conditioner as needed.",
		extraImages: []string{"/images/product8.png", "/images/product8.png", "/images/product8.png"},
		related:     []uint{4, 3, 2},
	},
}

// seedCatalog populates the product catalog on an empty database. The shop
// has no admin product CRUD; the catalog is fixed data.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tags := make(map[string]models.Tag)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range catalogSeed {
			product := models.Product{
				Name:        seed.name,
				Description: seed.description,
				Price:       seed.price,
				Image:       seed.image,
				Care:        seed.care,
			}

			for _, tagName := range seed.tags {
				tag, ok := tags[tagName]
				if !ok {
					tag = models.Tag{Name: tagName}
					if err := tx.Where("name = ?", tagName).FirstOrCreate(&tag).Error; err != nil {
						return err
					}
					tags[tagName] = tag
				}
				product.Tags = append(product.Tags, tag)
			}
			for i, text := range seed.details {
				product.Details = append(product.Details, models.ProductDetail{Position: i, Text: text})
			}
			for i, url := range seed.extraImages {
				product.AdditionalImages = append(product.AdditionalImages, models.ProductImage{Position: i, URL: url})
			}
			for i, relatedID := range seed.related {
				product.Related = append(product.Related, models.ProductRelation{Position: i, RelatedID: relatedID})
			}

			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d catalog products", len(catalogSeed))
		return nil
	})
}

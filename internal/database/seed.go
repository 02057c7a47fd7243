// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/models"
)

// SeedInitialData loads the starter catalog for development: three artisan
// shops with a handful of products and reviews. It is a no-op when sellers
// already exist.
func SeedInitialData(db *gorm.DB) error {
	var sellerCount int64
	if err := db.Model(&models.Seller{}).Count(&sellerCount).Error; err != nil {
		return fmt.Errorf("failed to count sellers: %w", err)
	}
	if sellerCount > 0 {
		return nil
	}

	log.Println("Seeding initial data...")

	return WithTransaction(db, func(tx *gorm.DB) error {
		shops := []struct {
			email    string
			owner    string
			name     string
			bio      string
			location string
			products []models.Product
		}{
			{
				email:    "sarah.weaver@email.com",
				owner:    "Sarah Weaver",
				name:     "Sarah's Textile Studio",
				bio:      "Handwoven textiles using traditional techniques passed down through generations.",
				location: "Portland, Oregon",
				products: []models.Product{
					{
						Title:       "Handwoven Wool Blanket",
						Description: "A warm, generously sized blanket woven from locally sourced merino wool.",
						Price:       189.99,
						Stock:       5,
						Category:    models.CategoryTextilesWeavings,
						Status:      models.ProductStatusPublished,
					},
					{
						Title:       "Macrame Wall Hanging",
						Description: "Hand-knotted cotton wall hanging with a driftwood rod, about 60cm wide.",
						Price:       74.50,
						Stock:       8,
						Category:    models.CategoryHomeDecor,
						Status:      models.ProductStatusPublished,
					},
					{
						Title:       "Woven Market Tote",
						Description: "Sturdy everyday tote woven on a floor loom, with leather handles.",
						Price:       95.00,
						Stock:       12,
						Category:    models.CategoryAccessories,
						Status:      models.ProductStatusDraft,
					},
				},
			},
			{
				email:    "mike.potter@email.com",
				owner:    "Mike Potter",
				name:     "Mike's Pottery Workshop",
				bio:      "Functional and decorative pottery, wheel-thrown and kiln-fired in our home studio.",
				location: "Austin, Texas",
				products: []models.Product{
					{
						Title:       "Stoneware Dinner Set",
						Description: "Four-piece dinner set in a speckled glaze, dishwasher and microwave safe.",
						Price:       240.00,
						Stock:       3,
						Category:    models.CategoryCeramicsPottery,
						Status:      models.ProductStatusPublished,
					},
					{
						Title:       "Ceramic Pour-Over Coffee Set",
						Description: "Dripper and matching mug thrown as a pair, glazed in matte ocean blue.",
						Price:       88.00,
						Stock:       10,
						Category:    models.CategoryCeramicsPottery,
						Status:      models.ProductStatusPublished,
					},
				},
			},
			{
				email:    "emma.woodcraft@email.com",
				owner:    "Emma Woodcraft",
				name:     "Emma's Woodworking",
				bio:      "Sustainable woodcraft from locally sourced materials, specializing in kitchen items.",
				location: "Burlington, Vermont",
				products: []models.Product{
					{
						Title:       "Oak Serving Bowl",
						Description: "Hand-turned serving bowl in white oak, finished with food-safe oil.",
						Price:       95.00,
						Stock:       6,
						Category:    models.CategoryWoodcraft,
						Status:      models.ProductStatusPublished,
					},
					{
						Title:       "Walnut Jewelry Box",
						Description: "Dovetailed jewelry box in black walnut with a velvet-lined tray.",
						Price:       165.00,
						Stock:       4,
						Category:    models.CategoryJewelry,
						Status:      models.ProductStatusPublished,
					},
				},
			},
		}

		ratings := []int{5, 4, 5}

		for _, shop := range shops {
			user := &models.User{
				Email: shop.email,
				Name:  shop.owner,
				Role:  models.UserRoleSeller,
			}
			if err := user.SetPassword("password123"); err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create seed user: %w", err)
			}

			seller := &models.Seller{
				UserID:   user.ID,
				Name:     shop.name,
				Bio:      shop.bio,
				Location: shop.location,
			}
			if err := tx.Create(seller).Error; err != nil {
				return fmt.Errorf("failed to create seed seller: %w", err)
			}

			for i, product := range shop.products {
				product.SellerID = seller.ID
				if err := tx.Create(&product).Error; err != nil {
					return fmt.Errorf("failed to create seed product: %w", err)
				}

				// A couple of anonymous ratings on published products
				if product.Status == models.ProductStatusPublished {
					review := models.Review{
						ProductID: product.ID,
						Rating:    ratings[i%len(ratings)],
					}
					if err := tx.Create(&review).Error; err != nil {
						return fmt.Errorf("failed to create seed review: %w", err)
					}
				}
			}
		}

		log.Println("Initial data seeding completed")
		return nil
	})
}

// internal/catalog/display.go

// Package catalog holds the in-memory browsing core: the DisplayProduct
// projection, the flat-mean rating aggregator, and the filter/sort engine
// that narrows and orders an already-fetched product collection.
package catalog

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/handcraftedhaven/haven-backend/internal/models"
)

// ErrNotFound is returned by a Source when the requested product does not
// exist.
var ErrNotFound = errors.New("product not found")

// FallbackImageURL is used when a product carries no image reference.
const FallbackImageURL = "https://picsum.photos/seed/default/400/400"

// AnonymousReviewer is the display name for reviews without an author.
const AnonymousReviewer = "Anonymous"

// DisplayProduct is a Product enriched with its seller name and aggregated
// rating for presentation. It is derived on every read, never persisted.
type DisplayProduct struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Price         float64                `json:"price"`
	Stock         int                    `json:"stock"`
	Category      models.ProductCategory `json:"category"`
	Status        models.ProductStatus   `json:"status"`
	ImageURL      string                 `json:"image_url"`
	SellerID      uuid.UUID              `json:"seller_id"`
	SellerName    string                 `json:"seller_name"`
	AverageRating float64                `json:"average_rating"`
	ReviewCount   int                    `json:"review_count"`
	CreatedAt     time.Time              `json:"created_at"`
}

// ReviewEntry is a single review on a product detail page.
type ReviewEntry struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Content   *string   `json:"content,omitempty"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDetail is a DisplayProduct plus its reviews, newest first.
type ProductDetail struct {
	DisplayProduct
	Reviews []ReviewEntry `json:"reviews"`
}

// Source is the catalog query contract. The GORM-backed implementation lives
// in the services package; MemorySource is the in-memory test double.
type Source interface {
	PublishedProducts(ctx context.Context) ([]DisplayProduct, error)
	ProductDetail(ctx context.Context, id uuid.UUID) (*ProductDetail, error)
	SellerProducts(ctx context.Context, sellerID uuid.UUID) ([]DisplayProduct, error)
}

// AggregateRating computes a product's display rating from its reviews: the
// flat arithmetic mean of all ratings rounded to one decimal, and the review
// count. Rating-only reviews count like any other. An empty set yields 0.
func AggregateRating(reviews []models.Review) (average float64, count int) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	average = math.Round(float64(sum)/float64(count)*10) / 10
	return average, count
}

// Display projects a product (with its reviews loaded) onto a DisplayProduct
// annotated with the given seller name.
func Display(p *models.Product, sellerName string) DisplayProduct {
	rating, reviewCount := AggregateRating(p.Reviews)

	image := p.ImageURL
	if image == "" {
		image = FallbackImageURL
	}

	return DisplayProduct{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		Category:      p.Category,
		Status:        p.Status,
		ImageURL:      image,
		SellerID:      p.SellerID,
		SellerName:    sellerName,
		AverageRating: rating,
		ReviewCount:   reviewCount,
		CreatedAt:     p.CreatedAt,
	}
}

// DisplayReview projects a review onto a detail-page entry. Reviews without
// an author are shown as anonymous.
func DisplayReview(r *models.Review, userName string) ReviewEntry {
	if userName == "" {
		userName = AnonymousReviewer
	}
	return ReviewEntry{
		ID:        r.ID,
		Rating:    r.Rating,
		Content:   r.Content,
		UserName:  userName,
		CreatedAt: r.CreatedAt,
	}
}

// internal/catalog/memory.go
package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/handcraftedhaven/haven-backend/internal/models"
)

// MemorySource is an in-memory test double for the Source contract. It backs
// unit tests and local experiments only and is never wired alongside the
// GORM-backed catalog service.
type MemorySource struct {
	mu       sync.RWMutex
	sellers  map[uuid.UUID]models.Seller
	products map[uuid.UUID]*models.Product
	authors  map[uuid.UUID]string
}

func NewMemorySource() *MemorySource {
	return &MemorySource{
		sellers:  make(map[uuid.UUID]models.Seller),
		products: make(map[uuid.UUID]*models.Product),
		authors:  make(map[uuid.UUID]string),
	}
}

// AddSeller registers a shop so its products can be annotated with a name.
func (m *MemorySource) AddSeller(s models.Seller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sellers[s.ID] = s
}

// AddProduct stores a product. A zero ID or CreatedAt is filled in.
func (m *MemorySource) AddProduct(p models.Product) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	m.products[p.ID] = &p
	return p
}

// AddReview appends a review to a product. authorName may be empty for an
// anonymous rating.
func (m *MemorySource) AddReview(productID uuid.UUID, rating int, authorName string, content *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return ErrNotFound
	}

	review := models.Review{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		ProductID: productID,
		Rating:    rating,
		Content:   content,
	}
	if authorName != "" {
		id := uuid.New()
		review.UserID = &id
		m.authors[review.ID] = authorName
	}
	p.Reviews = append(p.Reviews, review)
	return nil
}

// SetStatus overwrites a product's status.
func (m *MemorySource) SetStatus(productID uuid.UUID, status models.ProductStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

// DeleteProduct removes a product and, with it, its reviews.
func (m *MemorySource) DeleteProduct(productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return ErrNotFound
	}
	for _, r := range p.Reviews {
		delete(m.authors, r.ID)
	}
	delete(m.products, productID)
	return nil
}

func (m *MemorySource) PublishedProducts(_ context.Context) ([]DisplayProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]DisplayProduct, 0, len(m.products))
	for _, p := range m.products {
		if p.Status != models.ProductStatusPublished {
			continue
		}
		out = append(out, Display(p, m.sellers[p.SellerID].Name))
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MemorySource) ProductDetail(_ context.Context, id uuid.UUID) (*ProductDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	detail := &ProductDetail{DisplayProduct: Display(p, m.sellers[p.SellerID].Name)}
	for i := range p.Reviews {
		r := &p.Reviews[i]
		detail.Reviews = append(detail.Reviews, DisplayReview(r, m.authors[r.ID]))
	}
	sort.SliceStable(detail.Reviews, func(i, j int) bool {
		return detail.Reviews[i].CreatedAt.After(detail.Reviews[j].CreatedAt)
	})
	return detail, nil
}

func (m *MemorySource) SellerProducts(_ context.Context, sellerID uuid.UUID) ([]DisplayProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]DisplayProduct, 0)
	for _, p := range m.products {
		if p.SellerID != sellerID {
			continue
		}
		out = append(out, Display(p, m.sellers[p.SellerID].Name))
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(products []DisplayProduct) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

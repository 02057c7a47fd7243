// internal/services/listing_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/handcraftedhaven/haven-backend/internal/models"
	"github.com/handcraftedhaven/haven-backend/internal/utils"
)

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		Title:       "Oak Serving Bowl",
		Description: "Hand-turned bowl from reclaimed oak.",
		Price:       95.00,
		Stock:       3,
		Category:    "WOODCRAFT",
	}
}

func TestCreateProductRequestValidation(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, utils.ValidateStruct(&req))

	short := validCreateRequest()
	short.Title = "Ox"
	assert.Error(t, utils.ValidateStruct(&short))

	thin := validCreateRequest()
	thin.Description = "Too short"
	assert.Error(t, utils.ValidateStruct(&thin))

	free := validCreateRequest()
	free.Price = 0
	assert.Error(t, utils.ValidateStruct(&free))

	negative := validCreateRequest()
	negative.Stock = -1
	assert.Error(t, utils.ValidateStruct(&negative))

	unknown := validCreateRequest()
	unknown.Category = "GLASSWARE"
	assert.Error(t, utils.ValidateStruct(&unknown))

	badStatus := validCreateRequest()
	badStatus.Status = "ARCHIVED"
	assert.Error(t, utils.ValidateStruct(&badStatus))

	withStatus := validCreateRequest()
	withStatus.Status = "published"
	assert.NoError(t, utils.ValidateStruct(&withStatus))

	badURL := validCreateRequest()
	badURL.ImageURL = "not a url"
	assert.Error(t, utils.ValidateStruct(&badURL))
}

func TestUpdateProductRequestValidation(t *testing.T) {
	req := UpdateProductRequest{
		Title:       "Oak Serving Bowl",
		Description: "Hand-turned bowl from reclaimed oak.",
		Price:       110.00,
		Stock:       2,
		Category:    "WOODCRAFT",
		ImageURL:    "https://example.com/bowl.jpg",
	}
	assert.NoError(t, utils.ValidateStruct(&req))

	withStatus := req
	withStatus.Status = "PUBLISHED"
	assert.NoError(t, utils.ValidateStruct(&withStatus))

	badStatus := req
	badStatus.Status = "ARCHIVED"
	assert.Error(t, utils.ValidateStruct(&badStatus))

	req.Category = ""
	assert.Error(t, utils.ValidateStruct(&req))
}

func TestSetStatusRequestValidation(t *testing.T) {
	assert.NoError(t, utils.ValidateStruct(&SetStatusRequest{Status: "PUBLISHED"}))
	assert.NoError(t, utils.ValidateStruct(&SetStatusRequest{Status: "disabled"}))
	assert.Error(t, utils.ValidateStruct(&SetStatusRequest{Status: ""}))
	assert.Error(t, utils.ValidateStruct(&SetStatusRequest{Status: "ARCHIVED"}))
}

func TestApplyProductUpdate(t *testing.T) {
	product := &models.Product{
		Title:    "Oak Serving Bowl",
		Price:    95.00,
		Category: models.CategoryWoodcraft,
		Status:   models.ProductStatusDraft,
		ImageURL: "https://example.com/bowl.jpg",
	}

	req := &UpdateProductRequest{
		Title:       "Oak Serving Bowl, large",
		Description: "Hand-turned bowl from reclaimed oak.",
		Price:       110.00,
		Stock:       4,
		Category:    "woodcraft",
		Status:      "published",
		ImageURL:    "https://example.com/bowl-large.jpg",
	}
	assert.NoError(t, applyProductUpdate(product, req))
	assert.Equal(t, "Oak Serving Bowl, large", product.Title)
	assert.Equal(t, models.CategoryWoodcraft, product.Category)
	assert.Equal(t, models.ProductStatusPublished, product.Status)
	assert.Equal(t, "https://example.com/bowl-large.jpg", product.ImageURL)

	// Omitting status keeps the current one.
	req.Status = ""
	assert.NoError(t, applyProductUpdate(product, req))
	assert.Equal(t, models.ProductStatusPublished, product.Status)

	// An empty image URL clears the stored reference.
	req.ImageURL = ""
	assert.NoError(t, applyProductUpdate(product, req))
	assert.Empty(t, product.ImageURL)

	req.Category = "GLASSWARE"
	assert.Error(t, applyProductUpdate(product, req))
}

func TestSetProductStatusRejectsNonToggleTargets(t *testing.T) {
	svc := NewListingService(nil)

	// Drafts go live through the edit flow, not the toggle.
	_, err := svc.SetProductStatus(context.Background(), uuid.New(), uuid.New(), "DRAFT")
	assert.Error(t, err)

	_, err = svc.SetProductStatus(context.Background(), uuid.New(), uuid.New(), "ARCHIVED")
	assert.Error(t, err)
}

func TestRegisterSellerRequestValidation(t *testing.T) {
	req := RegisterSellerRequest{
		Email:      "emma@example.com",
		Password:   "Woodwork1ng",
		Name:       "Emma",
		SellerName: "Emma's Woodworking",
	}
	assert.NoError(t, utils.ValidateStruct(&req))

	weak := req
	weak.Password = "password"
	assert.Error(t, utils.ValidateStruct(&weak))

	noEmail := req
	noEmail.Email = "not-an-email"
	assert.Error(t, utils.ValidateStruct(&noEmail))
}

func TestCreateReviewRequestValidation(t *testing.T) {
	assert.NoError(t, utils.ValidateStruct(&CreateReviewRequest{Rating: 4}))
	assert.NoError(t, utils.ValidateStruct(&CreateReviewRequest{Rating: 5, Content: "Beautiful piece"}))
	assert.Error(t, utils.ValidateStruct(&CreateReviewRequest{Rating: 0}))
	assert.Error(t, utils.ValidateStruct(&CreateReviewRequest{Rating: 6}))
}

// internal/handlers/seller_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/handcraftedhaven/haven-backend/internal/models"
	"github.com/handcraftedhaven/haven-backend/internal/services"
)

// stubListingStore keeps products in a map and enforces the same ownership
// rule as the GORM-backed service: a mutation against another seller's
// product fails with ErrNotOwner, never touching the stored record.
type stubListingStore struct {
	products map[uuid.UUID]*models.Product
}

func newStubListingStore() *stubListingStore {
	return &stubListingStore{products: make(map[uuid.UUID]*models.Product)}
}

func (s *stubListingStore) add(sellerID uuid.UUID, status models.ProductStatus) *models.Product {
	p := &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		SellerID:  sellerID,
		Title:     "Oak Serving Bowl",
		Price:     95.00,
		Category:  models.CategoryWoodcraft,
		Status:    status,
	}
	s.products[p.ID] = p
	return p
}

func (s *stubListingStore) owned(sellerID, productID uuid.UUID) (*models.Product, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, services.ErrProductNotFound
	}
	if p.SellerID != sellerID {
		return nil, services.ErrNotOwner
	}
	return p, nil
}

func (s *stubListingStore) CreateProduct(_ context.Context, sellerID uuid.UUID, req *services.CreateProductRequest) (*models.Product, error) {
	p := s.add(sellerID, models.ProductStatusDraft)
	p.Title = req.Title
	return p, nil
}

func (s *stubListingStore) UpdateProduct(_ context.Context, sellerID, productID uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error) {
	p, err := s.owned(sellerID, productID)
	if err != nil {
		return nil, err
	}
	p.Title = req.Title
	return p, nil
}

func (s *stubListingStore) SetProductStatus(_ context.Context, sellerID, productID uuid.UUID, status string) (*models.Product, error) {
	target, ok := models.ParseStatus(status)
	if !ok || target == models.ProductStatusDraft {
		return nil, assert.AnError
	}
	p, err := s.owned(sellerID, productID)
	if err != nil {
		return nil, err
	}
	p.Status = target
	return p, nil
}

func (s *stubListingStore) DeleteProduct(_ context.Context, sellerID, productID uuid.UUID) error {
	if _, err := s.owned(sellerID, productID); err != nil {
		return err
	}
	delete(s.products, productID)
	return nil
}

type SellerHandlerTestSuite struct {
	suite.Suite
	store   *stubListingStore
	router  *gin.Engine
	ownerID uuid.UUID
	otherID uuid.UUID
	product *models.Product
}

func (suite *SellerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = newStubListingStore()
	suite.ownerID = uuid.New()
	suite.otherID = uuid.New()
	suite.product = suite.store.add(suite.ownerID, models.ProductStatusPublished)

	handler := NewSellerHandler(nil, suite.store, nil, nil)

	suite.router = gin.New()
	seller := suite.router.Group("/v1/seller")
	seller.Use(func(c *gin.Context) {
		c.Set("seller_id", c.GetHeader("X-Test-Seller"))
		c.Next()
	})
	seller.PUT("/listings/:id", handler.UpdateListing)
	seller.PATCH("/listings/:id/status", handler.SetListingStatus)
	seller.DELETE("/listings/:id", handler.DeleteListing)
}

func (suite *SellerHandlerTestSuite) request(method, path string, sellerID uuid.UUID, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Seller", sellerID.String())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func validUpdateBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Oak Serving Bowl, large",
		"description": "Hand-turned bowl from reclaimed oak.",
		"price":       110.00,
		"stock":       4,
		"category":    "WOODCRAFT",
	}
}

func (suite *SellerHandlerTestSuite) TestToggleByForeignSellerLeavesStatusUnchanged() {
	path := "/v1/seller/listings/" + suite.product.ID.String() + "/status"
	w, response := suite.request("PATCH", path, suite.otherID, map[string]interface{}{
		"status": "DISABLED",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.False(suite.T(), response["success"].(bool))

	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "NOT_FOUND", errObj["code"])

	// The stored status is untouched.
	assert.Equal(suite.T(), models.ProductStatusPublished, suite.store.products[suite.product.ID].Status)
}

func (suite *SellerHandlerTestSuite) TestToggleByOwner() {
	path := "/v1/seller/listings/" + suite.product.ID.String() + "/status"
	w, response := suite.request("PATCH", path, suite.ownerID, map[string]interface{}{
		"status": "DISABLED",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), models.ProductStatusDisabled, suite.store.products[suite.product.ID].Status)
}

func (suite *SellerHandlerTestSuite) TestToggleUnknownProductMatchesForeignResponse() {
	// Missing products and foreign products produce the same 404, so the
	// endpoint does not reveal which listings exist.
	path := "/v1/seller/listings/" + uuid.NewString() + "/status"
	w, response := suite.request("PATCH", path, suite.otherID, map[string]interface{}{
		"status": "DISABLED",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "NOT_FOUND", errObj["code"])
}

func (suite *SellerHandlerTestSuite) TestUpdateByForeignSeller() {
	path := "/v1/seller/listings/" + suite.product.ID.String()
	w, _ := suite.request("PUT", path, suite.otherID, validUpdateBody())

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Oak Serving Bowl", suite.store.products[suite.product.ID].Title)
}

func (suite *SellerHandlerTestSuite) TestDeleteByForeignSellerKeepsProduct() {
	path := "/v1/seller/listings/" + suite.product.ID.String()
	w, _ := suite.request("DELETE", path, suite.otherID, nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), suite.store.products, suite.product.ID)
}

func (suite *SellerHandlerTestSuite) TestDeleteByOwner() {
	path := "/v1/seller/listings/" + suite.product.ID.String()
	w, _ := suite.request("DELETE", path, suite.ownerID, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotContains(suite.T(), suite.store.products, suite.product.ID)
}

func TestSellerHandlerSuite(t *testing.T) {
	suite.Run(t, new(SellerHandlerTestSuite))
}

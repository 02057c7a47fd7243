// internal/handlers/product_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/handcraftedhaven/haven-backend/internal/catalog"
	"github.com/handcraftedhaven/haven-backend/internal/models"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	source    *catalog.MemorySource
	published models.Product
	draft     models.Product
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.source = catalog.NewMemorySource()
	sellerID := uuid.New()
	suite.source.AddSeller(models.Seller{
		BaseModel: models.BaseModel{ID: sellerID},
		Name:      "Mike's Pottery Workshop",
	})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.published = suite.source.AddProduct(models.Product{
		SellerID:  sellerID,
		Title:     "Stoneware Vase",
		Price:     210.00,
		Category:  models.CategoryCeramicsPottery,
		Status:    models.ProductStatusPublished,
		BaseModel: models.BaseModel{CreatedAt: base},
	})
	suite.source.AddProduct(models.Product{
		SellerID:  sellerID,
		Title:     "Glazed Mug Set",
		Price:     65.00,
		Category:  models.CategoryCeramicsPottery,
		Status:    models.ProductStatusPublished,
		BaseModel: models.BaseModel{CreatedAt: base.Add(time.Hour)},
	})
	suite.draft = suite.source.AddProduct(models.Product{
		SellerID:  sellerID,
		Title:     "Unfinished Teapot",
		Price:     80.00,
		Category:  models.CategoryCeramicsPottery,
		Status:    models.ProductStatusDraft,
		BaseModel: models.BaseModel{CreatedAt: base.Add(2 * time.Hour)},
	})

	handler := NewProductHandler(suite.source, nil)

	suite.router = gin.New()
	suite.router.GET("/v1/products", handler.GetProducts)
	suite.router.GET("/v1/products/:id", handler.GetProduct)
	suite.router.GET("/v1/categories", handler.GetCategories)
}

func (suite *ProductHandlerTestSuite) get(path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func (suite *ProductHandlerTestSuite) TestBrowseReturnsPublishedOnly() {
	w, response := suite.get("/v1/products")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].([]interface{})
	require.Len(suite.T(), data, 2)

	// Newest published first, drafts never shown.
	first := data[0].(map[string]interface{})
	assert.Equal(suite.T(), "Glazed Mug Set", first["title"])
	for _, item := range data {
		assert.NotEqual(suite.T(), "Unfinished Teapot", item.(map[string]interface{})["title"])
	}
}

func (suite *ProductHandlerTestSuite) TestBrowseSearchAndPriceBand() {
	w, response := suite.get("/v1/products?search=vase&prices=200-500&sort=price-asc")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	require.Len(suite.T(), data, 1)
	assert.Equal(suite.T(), "Stoneware Vase", data[0].(map[string]interface{})["title"])
}

func (suite *ProductHandlerTestSuite) TestBrowseRejectsUnknownCategory() {
	w, response := suite.get("/v1/products?category=GLASSWARE")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *ProductHandlerTestSuite) TestBrowseRejectsUnknownPriceRange() {
	w, _ := suite.get("/v1/products?prices=0-999")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestBrowsePagination() {
	w, response := suite.get("/v1/products?limit=1&page=2")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].([]interface{})
	require.Len(suite.T(), data, 1)
	assert.Equal(suite.T(), "Stoneware Vase", data[0].(map[string]interface{})["title"])

	assert.Equal(suite.T(), "2", w.Header().Get("X-Total-Count"))
	assert.Equal(suite.T(), "2", w.Header().Get("X-Total-Pages"))
}

func (suite *ProductHandlerTestSuite) TestProductDetail() {
	content := "Lovely glaze"
	require.NoError(suite.T(), suite.source.AddReview(suite.published.ID, 5, "Sarah", &content))
	require.NoError(suite.T(), suite.source.AddReview(suite.published.ID, 4, "", nil))

	w, response := suite.get("/v1/products/" + suite.published.ID.String())

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "Stoneware Vase", data["title"])
	assert.Equal(suite.T(), 4.5, data["average_rating"])
	assert.Equal(suite.T(), float64(2), data["review_count"])

	reviews := data["reviews"].([]interface{})
	require.Len(suite.T(), reviews, 2)
}

func (suite *ProductHandlerTestSuite) TestProductDetailNotFound() {
	w, response := suite.get("/v1/products/" + uuid.NewString())

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *ProductHandlerTestSuite) TestProductDetailMalformedID() {
	w, _ := suite.get("/v1/products/not-a-uuid")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCategories() {
	w, response := suite.get("/v1/categories")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Len(suite.T(), data["categories"], len(models.Categories))
	assert.Len(suite.T(), data["price_ranges"], len(catalog.PriceRanges))
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

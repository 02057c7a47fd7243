// internal/handlers/product.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handcraftedhaven/haven-backend/internal/catalog"
	"github.com/handcraftedhaven/haven-backend/internal/i18n"
	"github.com/handcraftedhaven/haven-backend/internal/models"
	"github.com/handcraftedhaven/haven-backend/internal/services"
	"github.com/handcraftedhaven/haven-backend/internal/utils"
)

// ProductHandler serves the public storefront: browsing, product pages and
// reviews. Reads go through catalog.Source so the browse engine stays
// independent of the database.
type ProductHandler struct {
	source        catalog.Source
	reviewService *services.ReviewService
}

func NewProductHandler(source catalog.Source, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		source:        source,
		reviewService: reviewService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	criteria := catalog.DefaultCriteria()
	criteria.Search = strings.TrimSpace(c.Query("search"))
	criteria.SortBy = catalog.ParseSortOption(c.Query("sort"))

	if category := c.Query("category"); category != "" && category != catalog.CategoryAll {
		parsed, ok := models.ParseCategory(category)
		if !ok {
			utils.BadRequestResponse(c, "Unknown category", nil)
			return
		}
		criteria.Category = string(parsed)
	}

	if prices := c.Query("prices"); prices != "" {
		for _, raw := range strings.Split(prices, ",") {
			band, ok := catalog.ParsePriceRange(raw)
			if !ok {
				utils.BadRequestResponse(c, "Unknown price range", nil)
				return
			}
			criteria.TogglePriceRange(band)
		}
	}

	products, err := h.source.PublishedProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	matched := catalog.FilterAndSort(products, criteria)
	_, result := utils.Paginate(matched, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	detail, err := h.source.ProductDetail(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, detail)
}

// POST /products/:id/reviews
func (h *ProductHandler) CreateReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	// Signed-in users get their name on the review; everyone else is anonymous.
	var userID *uuid.UUID
	if userIDStr, ok := utils.GetUserIDFromContext(c); ok {
		if parsed, err := uuid.Parse(userIDStr); err == nil {
			userID = &parsed
		}
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), productID, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review":  review,
		"message": i18n.T(lang, i18n.KeyReviewCreated),
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories":   models.Categories,
		"price_ranges": catalog.PriceRanges,
	})
}

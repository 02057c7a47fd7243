// internal/handlers/seller.go
package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handcraftedhaven/haven-backend/internal/catalog"
	"github.com/handcraftedhaven/haven-backend/internal/i18n"
	"github.com/handcraftedhaven/haven-backend/internal/models"
	"github.com/handcraftedhaven/haven-backend/internal/services"
	"github.com/handcraftedhaven/haven-backend/internal/utils"
)

// ListingStore is the listing-lifecycle contract the dashboard writes
// through. services.ListingService is the GORM-backed implementation.
type ListingStore interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error)
	SetProductStatus(ctx context.Context, sellerID, productID uuid.UUID, status string) (*models.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}

// SellerHandler serves the seller dashboard: the shop profile and the full
// listing lifecycle. Every route behind it requires a seller token.
type SellerHandler struct {
	sellerService  *services.SellerService
	listingService ListingStore
	storageService *services.StorageService
	source         catalog.Source
}

func NewSellerHandler(
	sellerService *services.SellerService,
	listingService ListingStore,
	storageService *services.StorageService,
	source catalog.Source,
) *SellerHandler {
	return &SellerHandler{
		sellerService:  sellerService,
		listingService: listingService,
		storageService: storageService,
		source:         source,
	}
}

func (h *SellerHandler) actingSellerID(c *gin.Context) (uuid.UUID, bool) {
	sellerIDStr, ok := utils.GetSellerIDFromContext(c)
	if !ok {
		utils.ForbiddenResponse(c, "")
		return uuid.Nil, false
	}
	sellerID, err := uuid.Parse(sellerIDStr)
	if err != nil {
		utils.ForbiddenResponse(c, "")
		return uuid.Nil, false
	}
	return sellerID, true
}

// GET /seller/me
func (h *SellerHandler) GetProfile(c *gin.Context) {
	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	seller, err := h.sellerService.GetSeller(c.Request.Context(), sellerID)
	if err != nil {
		if errors.Is(err, services.ErrSellerNotFound) {
			utils.NotFoundResponse(c, i18n.KeySellerNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, seller)
}

// PUT /seller/me
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	var req services.UpdateSellerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	seller, err := h.sellerService.UpdateProfile(c.Request.Context(), sellerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSellerNotFound) {
			utils.NotFoundResponse(c, i18n.KeySellerNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"seller":  seller,
		"message": i18n.T(lang, i18n.KeySellerProfileUpdated),
	})
}

// GET /seller/listings
func (h *SellerHandler) GetListings(c *gin.Context) {
	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	// Sellers see all of their listings, drafts and disabled included.
	products, err := h.source.SellerProducts(c.Request.Context(), sellerID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	_, result := utils.Paginate(products, params)
	utils.PaginatedResponse(c, result)
}

// POST /seller/listings
func (h *SellerHandler) CreateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.listingService.CreateProduct(c.Request.Context(), sellerID, &req)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductCreated),
	})
}

// PUT /seller/listings/:id
func (h *SellerHandler) UpdateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductForbidden)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.listingService.UpdateProduct(c.Request.Context(), sellerID, productID, &req)
	if err != nil {
		h.respondListingError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductUpdated),
	})
}

// PATCH /seller/listings/:id/status
func (h *SellerHandler) SetListingStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductForbidden)
		return
	}

	var req services.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.listingService.SetProductStatus(c.Request.Context(), sellerID, productID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) || errors.Is(err, services.ErrNotOwner) {
			utils.NotFoundResponse(c, i18n.KeyProductForbidden)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"message": i18n.T(lang, i18n.KeyProductStatusUpdated),
	})
}

// DELETE /seller/listings/:id
func (h *SellerHandler) DeleteListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sellerID, ok := h.actingSellerID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyProductForbidden)
		return
	}

	if err := h.listingService.DeleteProduct(c.Request.Context(), sellerID, productID); err != nil {
		h.respondListingError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// POST /seller/listings/upload-image
func (h *SellerHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, ok := h.actingSellerID(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image file provided", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, services.ProductImageOptions())
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"upload":  result,
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
	})
}

// Ownership failures and missing products collapse into one not-found
// response so the API does not reveal which listings exist.
func (h *SellerHandler) respondListingError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProductNotFound) || errors.Is(err, services.ErrNotOwner) {
		utils.NotFoundResponse(c, i18n.KeyProductForbidden)
		return
	}
	utils.InternalErrorResponse(c, "")
}

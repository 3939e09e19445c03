package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logic"
	"github.com/yiryeong/wanted-pre-onboarding/internal/middleware"
)

// ProductHandler funding product endpoints
type ProductHandler struct {
	productLogic *logic.ProductLogic
}

// NewProductHandler creates the product handler
func NewProductHandler(productLogic *logic.ProductLogic) *ProductHandler {
	return &ProductHandler{productLogic: productLogic}
}

// CreateProduct registers a product (staff only)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	endDate, err := ParseTimestamp(req.EndDate)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "end_date must be a valid timestamp")
		return
	}

	product, err := h.productLogic.Create(actor, domain.Product{
		Title:          req.Title,
		Description:    req.Description,
		TargetAmount:   req.TargetAmount,
		OneTimeFunding: req.OneTimeFunding,
		EndDate:        endDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "create product successful.", ToProductCreateResponse(product))
}

// GetProducts lists decorated products with optional search and ordering
func (h *ProductHandler) GetProducts(c *gin.Context) {
	opts := logic.ListOptions{
		Search:  c.Query("search"),
		OrderBy: c.Query("ordering"),
	}

	views, err := h.productLogic.List(opts, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "successful.", ToProductListResponseList(views))
}

// GetProduct returns one decorated product
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	view, err := h.productLogic.Get(id, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "successful.", ToProductRetrieveResponse(*view))
}

// UpdateProduct applies a partial update (owner only)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := domain.ProductUpdate{
		Title:          req.Title,
		Description:    req.Description,
		TargetAmount:   req.TargetAmount,
		OneTimeFunding: req.OneTimeFunding,
	}
	if req.EndDate != nil {
		endDate, err := ParseTimestamp(*req.EndDate)
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "end_date must be a valid timestamp")
			return
		}
		upd.EndDate = &endDate
	}

	product, err := h.productLogic.Update(actor, id, upd)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "update product successful.", ToProductCreateResponse(product))
}

// DeleteProduct removes a product and its fundings (owner only)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productLogic.Delete(actor, id); err != nil {
		HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

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

// FundingHandler pledge endpoints
type FundingHandler struct {
	fundingLogic *logic.FundingLogic
}

// NewFundingHandler creates the funding handler
func NewFundingHandler(fundingLogic *logic.FundingLogic) *FundingHandler {
	return &FundingHandler{fundingLogic: fundingLogic}
}

// CreateFunding records a pledge for the acting user
func (h *FundingHandler) CreateFunding(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	funding, err := h.fundingLogic.Create(actor, domain.FundingRequest{
		ProductId: req.ProductId,
		Price:     req.Price,
		UserId:    req.UserId,
	}, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "funding successful.", ToFundingResponse(funding))
}

// DeleteFunding removes a pledge (pledging user only)
func (h *FundingHandler) DeleteFunding(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid funding id")
		return
	}

	if err := h.fundingLogic.Delete(actor, id); err != nil {
		HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

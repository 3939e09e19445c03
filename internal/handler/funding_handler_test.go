package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
)

func TestCreateFundingRequiresAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewFundingHandler(nil)
	r := gin.New()
	r.POST("/fundings", h.CreateFunding)

	w := postJSON(r, "/fundings", `{"product_id":1}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateFundingRequiresProductId(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewFundingHandler(nil)
	r := gin.New()
	r.POST("/fundings", asActor(domain.Actor{Id: 5, Username: "backer"}), h.CreateFunding)

	w := postJSON(r, "/fundings", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFundingIdMustBeNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewFundingHandler(nil)
	r := gin.New()
	r.DELETE("/fundings/:id", asActor(domain.Actor{Id: 5, Username: "backer"}), h.DeleteFunding)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/fundings/abc", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/middleware"
)

// asActor injects an authenticated actor, standing in for the auth
// middleware.
func asActor(actor domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorContextKey, actor)
		c.Next()
	}
}

func TestCreateProductRequiresAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(nil)
	r := gin.New()
	r.POST("/products", h.CreateProduct)

	w := postJSON(r, "/products", `{"title":"t"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProductRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(nil)
	r := gin.New()
	staff := domain.Actor{Id: 1, Username: "staff", IsStaff: true}
	r.POST("/products", asActor(staff), h.CreateProduct)

	// end_date absent
	w := postJSON(r, "/products", `{"title":"t","description":"d","target_amount":35000,"one_time_funding":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRejectsBadEndDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(nil)
	r := gin.New()
	staff := domain.Actor{Id: 1, Username: "staff", IsStaff: true}
	r.POST("/products", asActor(staff), h.CreateProduct)

	w := postJSON(r, "/products", `{"title":"t","description":"d","target_amount":35000,"one_time_funding":10,"end_date":"tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "end_date")
}

func TestProductIdMustBeNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(nil)
	r := gin.New()
	actor := domain.Actor{Id: 1, Username: "u"}
	r.DELETE("/products/:id", asActor(actor), h.DeleteProduct)
	r.PUT("/products/:id", asActor(actor), h.UpdateProduct)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/abc", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/products/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

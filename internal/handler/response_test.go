package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidation("title", "title is required"), http.StatusBadRequest},
		{"authorization", domain.NewAuthorization("not owner"), http.StatusForbidden},
		{"conflict", domain.NewConflict("price", "server controlled"), http.StatusConflict},
		{"not found", domain.NewNotFound("product", 42), http.StatusNotFound},
		{"upstream", domain.NewUpstream("list products", errors.New("connection refused")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}

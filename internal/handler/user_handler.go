package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logic"
	"github.com/yiryeong/wanted-pre-onboarding/internal/middleware"
)

// UserHandler account endpoints
type UserHandler struct {
	userLogic *logic.UserLogic
}

// NewUserHandler creates the user handler
func NewUserHandler(userLogic *logic.UserLogic) *UserHandler {
	return &UserHandler{userLogic: userLogic}
}

// Signup registers an account
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userLogic.Register(logic.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		PasswordCheck: req.PasswordCheck,
		IsStaff:       req.IsStaff,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "create user successfully.", ToUserResponse(user))
}

// Login verifies credentials and returns a bearer token
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" {
		ErrorResponse(c, http.StatusBadRequest, "The username is required.")
		return
	}
	if req.Password == "" {
		ErrorResponse(c, http.StatusBadRequest, "The password is required.")
		return
	}

	user, token, err := h.userLogic.Login(req.Username, req.Password, time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "login successful.", gin.H{
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
		"token": token,
	})
}

// Logout revokes the caller's token
func (h *UserHandler) Logout(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.userLogic.Logout(actor.Id); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "logout successfully.", nil)
}

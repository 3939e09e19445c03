package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yiryeong/wanted-pre-onboarding/internal/config"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserLogic account registration and token-based authentication
type UserLogic struct {
	db  *gorm.DB
	cfg config.AuthConfig
}

// NewUserLogic creates the user business logic
func NewUserLogic(db *gorm.DB, cfg config.AuthConfig) *UserLogic {
	return &UserLogic{db: db, cfg: cfg}
}

// RegisterInput fields accepted at signup
type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	PasswordCheck string
	IsStaff       bool
}

// Register creates an account with a bcrypt-hashed password.
func (l *UserLogic) Register(in RegisterInput) (*model.UserModel, error) {
	if in.Password != in.PasswordCheck {
		return nil, domain.NewValidation("password", "password and password_check do not match.")
	}

	var count int64
	if err := l.db.Model(&model.UserModel{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, domain.NewUpstream("check username", err)
	}
	if count > 0 {
		return nil, domain.NewValidation("username", "username already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.UserModel{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		IsStaff:  in.IsStaff,
	}
	if err := l.db.Create(&user).Error; err != nil {
		return nil, domain.NewUpstream("create user", err)
	}

	return &user, nil
}

// Login verifies credentials and issues a fresh token, replacing any
// previously active one for the user.
func (l *UserLogic) Login(username, password string, now time.Time) (*model.UserModel, string, error) {
	var user model.UserModel
	if err := l.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.NewValidation("credentials", "The username and/or password is incorrect.")
		}
		return nil, "", domain.NewUpstream("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", domain.NewValidation("credentials", "The username and/or password is incorrect.")
	}

	tokenId := uuid.NewString()
	expiresAt := now.Add(time.Duration(l.cfg.TokenTTL) * time.Hour)

	claims := jwt.MapClaims{
		"sub": user.Id,
		"jti": tokenId,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(l.cfg.JWTSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	// one active token per user: login revokes the previous one
	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.Id).Delete(&model.AuthTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.AuthTokenModel{
			UserId:    user.Id,
			TokenId:   tokenId,
			ExpiresAt: expiresAt,
		}).Error
	})
	if err != nil {
		return nil, "", domain.NewUpstream("store token", err)
	}

	return &user, signed, nil
}

// Logout revokes the user's active token.
func (l *UserLogic) Logout(userId int64) error {
	if err := l.db.Where("user_id = ?", userId).Delete(&model.AuthTokenModel{}).Error; err != nil {
		return domain.NewUpstream("revoke token", err)
	}
	return nil
}

// ResolveToken verifies a bearer token and returns the acting user. A
// token is only valid while its jti is still present in auth_token, so
// logout takes effect immediately.
func (l *UserLogic) ResolveToken(tokenString string, now time.Time) (domain.Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(l.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Actor{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Actor{}, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return domain.Actor{}, errors.New("invalid token payload")
	}
	tokenId, ok := claims["jti"].(string)
	if !ok {
		return domain.Actor{}, errors.New("invalid token payload")
	}

	var record model.AuthTokenModel
	err = l.db.Where("user_id = ? AND token_id = ?", int64(sub), tokenId).First(&record).Error
	if err != nil {
		return domain.Actor{}, errors.New("token revoked")
	}
	if now.After(record.ExpiresAt) {
		return domain.Actor{}, errors.New("token expired")
	}

	var user model.UserModel
	if err := l.db.First(&user, record.UserId).Error; err != nil {
		return domain.Actor{}, errors.New("unknown user")
	}

	return domain.Actor{Id: user.Id, Username: user.Username, IsStaff: user.IsStaff}, nil
}

// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/handcraftedhaven/haven-backend/internal/config"
	"github.com/handcraftedhaven/haven-backend/internal/database"
	"github.com/handcraftedhaven/haven-backend/internal/models"
	"github.com/handcraftedhaven/haven-backend/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterSellerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,strong_password"`
	Name       string `json:"name" validate:"required,min=2,max=120"`
	SellerName string `json:"seller_name" validate:"required,min=2,max=120"`
	Bio        string `json:"bio" validate:"omitempty,max=2000"`
	Location   string `json:"location" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strong_password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResult struct {
	User   *models.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// RegisterSeller creates the user account and its shop in one transaction;
// a seller never exists without a shop profile to hang listings on.
func (s *AuthService) RegisterSeller(ctx context.Context, req *RegisterSellerRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	user := &models.User{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
		Role:  models.UserRoleSeller,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	seller := &models.Seller{
		Name:     strings.TrimSpace(req.SellerName),
		Bio:      strings.TrimSpace(req.Bio),
		Location: strings.TrimSpace(req.Location),
	}

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		seller.UserID = user.ID
		if err := tx.Create(seller).Error; err != nil {
			return fmt.Errorf("failed to create seller: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	user.Seller = seller

	tokens, err := s.issueTokens(user, seller.ID.String())
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := s.db.WithContext(ctx).Preload("Seller").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	sellerID := ""
	if user.Seller != nil {
		sellerID = user.Seller.ID.String()
	}
	tokens, err := s.issueTokens(&user, sellerID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: &user, Tokens: tokens}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	sellerID := ""
	if user.Seller != nil {
		sellerID = user.Seller.ID.String()
	}
	tokens, err := s.issueTokens(user, sellerID)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// ForgotPassword stores a one-hour reset token in the user's profile data.
// Unknown emails return nil so the endpoint does not leak account existence.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	token, err := utils.GenerateRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	if user.ProfileData == nil {
		user.ProfileData = models.JSONB{}
	}
	user.ProfileData["password_reset_token"] = utils.HashString(token)
	user.ProfileData["password_reset_expires"] = time.Now().Add(time.Hour).Format(time.RFC3339)

	if err := s.db.WithContext(ctx).Model(&user).Update("profile_data", user.ProfileData).Error; err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	hashed := utils.HashString(req.Token)

	var user models.User
	err := s.db.WithContext(ctx).
		Where("profile_data->>'password_reset_token' = ?", hashed).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("database error: %w", err)
	}

	expiresRaw, _ := user.ProfileData["password_reset_expires"].(string)
	expires, err := time.Parse(time.RFC3339, expiresRaw)
	if err != nil || time.Now().After(expires) {
		return ErrInvalidResetToken
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	delete(user.ProfileData, "password_reset_token")
	delete(user.ProfileData, "password_reset_expires")

	err = s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"password_hash": user.PasswordHash,
		"profile_data":  user.ProfileData,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Seller").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueTokens(user *models.User, sellerID string) (TokenPair, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), sellerID, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

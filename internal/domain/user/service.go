// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/pkg/auth"
	"github.com/your-org/sneakstore-backend/internal/pkg/identity"
	"gorm.io/gorm"
)

const passwordResetTTL = time.Hour

// Service is the identity provider backing the storefront. Sign-in,
// sign-up and password reset failures are surfaced as coded provider
// errors so the form boundary can classify them.
type Service struct {
	db              *gorm.DB
	redisClient     *redis.Client
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		redisClient:     redisClient,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Register creates a new user account
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, identity.NewProviderError(identity.CodeWeakPassword, "Passwords do not match")
	}

	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		return nil, identity.NewProviderError(identity.CodeWeakPassword, err.Error())
	}

	// Check if user already exists
	var existingUser User
	result := s.db.Where("email = ?", req.Email).First(&existingUser)
	if result.Error == nil {
		return nil, identity.NewProviderError(identity.CodeUserAlreadyExists, "An account with this email already exists")
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, identity.NewProviderError(identity.CodeWeakPassword, err.Error())
	}

	user := User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(&user)
}

// Login authenticates a user. Both an unknown email and a wrong password
// surface as invalid credentials; the account's existence is not revealed.
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	var user User
	result := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user)
	if result.Error != nil {
		return nil, identity.NewProviderError(identity.CodeInvalidCredentials, "")
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, identity.NewProviderError(identity.CodeInvalidCredentials, "")
	}

	// Update last login
	now := time.Now().UTC()
	user.LastLoginAt = &now
	s.db.Save(&user)

	return s.issueTokens(&user)
}

// RefreshToken generates new tokens using refresh token
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	var user User
	result := s.db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&user)
	if result.Error != nil {
		return nil, identity.NewProviderError(identity.CodeUserNotFound, "")
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken := refreshToken
	if s.config.JWT.RefreshTokenRotation {
		newRefreshToken, err = s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to generate refresh token: %w", err)
		}
	}

	user.Password = ""

	return &AuthResponse{
		User:         &user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}

// GetProfile gets user profile by ID, with saved addresses
func (s *Service) GetProfile(userID uint) (*User, error) {
	var user User
	result := s.db.Preload("Addresses").Where("id = ? AND is_active = ?", userID, true).First(&user)
	if result.Error != nil {
		return nil, identity.NewProviderError(identity.CodeUserNotFound, "")
	}

	user.Password = ""
	return &user, nil
}

// UpdateProfile updates user profile
func (s *Service) UpdateProfile(userID uint, updates map[string]interface{}) (*User, error) {
	var user User
	result := s.db.Where("id = ? AND is_active = ?", userID, true).First(&user)
	if result.Error != nil {
		return nil, identity.NewProviderError(identity.CodeUserNotFound, "")
	}

	// Remove sensitive fields from updates
	delete(updates, "password")
	delete(updates, "is_active")
	delete(updates, "email")

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user.Password = ""
	return &user, nil
}

// RequestPasswordReset issues a reset token for the account. The token is
// kept in Redis for one hour; delivery of the reset link is the mail
// layer's concern and out of scope here.
func (s *Service) RequestPasswordReset(email string) (string, error) {
	var user User
	result := s.db.Where("email = ? AND is_active = ?", email, true).First(&user)
	if result.Error != nil {
		return "", identity.NewProviderError(identity.CodeUserNotFound, "")
	}

	token := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf("password_reset:%s", token)
	if err := s.redisClient.Set(ctx, key, user.ID, passwordResetTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

// ResetPassword sets a new password for the account the token belongs to
// and invalidates the token.
func (s *Service) ResetPassword(token, newPassword string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf("password_reset:%s", token)
	userID, err := s.redisClient.Get(ctx, key).Uint64()
	if err != nil {
		return identity.NewProviderError(identity.CodeInvalidCredentials, "Reset link is invalid or has expired")
	}

	if err := s.passwordManager.ValidatePassword(newPassword); err != nil {
		return identity.NewProviderError(identity.CodeWeakPassword, err.Error())
	}

	hashedPassword, err := s.passwordManager.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&User{}).Where("id = ?", uint(userID)).Update("password", hashedPassword).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.redisClient.Del(ctx, key)
	return nil
}

// SaveAddress stores a delivery address on the profile. The first address
// a user saves becomes the default.
func (s *Service) SaveAddress(userID uint, address *Address) (*Address, error) {
	address.UserID = userID

	var count int64
	s.db.Model(&Address{}).Where("user_id = ?", userID).Count(&count)
	if count == 0 {
		address.IsDefault = true
	}

	if err := s.db.Create(address).Error; err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return address, nil
}

// GetDefaultAddress returns the user's default delivery address
func (s *Service) GetDefaultAddress(userID uint) (*Address, error) {
	var address Address
	result := s.db.Where("user_id = ? AND is_default = ?", userID, true).First(&address)
	if result.Error != nil {
		return nil, fmt.Errorf("no default address found")
	}
	return &address, nil
}

func (s *Service) issueTokens(user *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	user.Password = ""

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}

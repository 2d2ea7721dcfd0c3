package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aea-eng/aea-backend/internal/domain"
	"github.com/aea-eng/aea-backend/pkg/logger"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which admin accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService authenticates admins and issues signed tokens.
type AuthService struct {
	repo        domain.AdminRepository
	logger      logger.Logger
	secret      []byte
	tokenExpiry time.Duration
}

type AuthServiceConfig struct {
	Repository  domain.AdminRepository
	Logger      logger.Logger
	JWTSecret   string
	TokenExpiry time.Duration
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	expiry := cfg.TokenExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &AuthService{
		repo:        cfg.Repository,
		logger:      cfg.Logger,
		secret:      []byte(cfg.JWTSecret),
		tokenExpiry: expiry,
	}
}

// Login verifies the credentials and returns the admin with a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Admin, string, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.WithField("error", err.Error()).Error("Failed to look up admin for login")
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(admin)
	if err != nil {
		s.logger.WithField("admin_id", admin.ID).WithField("error", err.Error()).Error("Failed to sign auth token")
		return nil, "", err
	}
	return admin, token, nil
}

// GenerateToken issues a signed token for the admin.
func (s *AuthService) GenerateToken(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(s.tokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a token and resolves the admin it belongs to.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.Admin, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	adminID, ok := claims["sub"].(string)
	if !ok || adminID == "" {
		return nil, ErrInvalidToken
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		s.logger.WithField("admin_id", adminID).WithField("error", err.Error()).Error("Failed to resolve admin from token")
		return nil, err
	}
	return admin, nil
}

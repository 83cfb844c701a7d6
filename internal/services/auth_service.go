package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resale-market/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnknownUser is returned when a token is requested for an email that has
// no user record.
var ErrUnknownUser = errors.New("unknown user")

// ErrInvalidToken is returned for tokens that fail signature, expiry, or
// claim checks.
var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and verifies the bearer tokens that gate the API.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  10 * time.Hour, // Token valid for 10 hours
	}
}

// IssueToken signs a token embedding the email claim, provided the email
// belongs to a known user. Unknown emails get ErrUnknownUser.
func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrUnknownUser
		}
		return "", fmt.Errorf("failed to look up user %s: %w", email, err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning the email claim.
// Every failure mode (bad signature, expiry, missing claim) surfaces as
// ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return email, nil
}

package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fittrackhq/fittrack-backend/internal/config"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidToken covers every verification failure: network errors fetching
// the JWKS, unknown kid, bad signature, wrong audience or issuer, expiry.
// Callers see only this sentinel; the concrete cause is logged server-side.
var ErrInvalidToken = errors.New("invalid token")

// IdentityClaims is the subset of verified claims this service consumes.
type IdentityClaims struct {
	Email     string
	GivenName string
}

// TokenVerifier validates a raw bearer token and extracts identity claims.
type TokenVerifier interface {
	Verify(token string) (*IdentityClaims, error)
}

// Auth0Verifier verifies RS256 tokens minted by an Auth0 tenant against its
// published JWKS.
type Auth0Verifier struct {
	jwks     *JWKSClient
	audience string
	issuer   string
}

func NewAuth0Verifier(jwks *JWKSClient, cfg *config.Config) *Auth0Verifier {
	return &Auth0Verifier{
		jwks:     jwks,
		audience: cfg.Auth0ClientID,
		issuer:   cfg.Issuer(),
	}
}

func (v *Auth0Verifier) Verify(token string) (*IdentityClaims, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
	); err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("token has no email claim")
	}

	givenName, _ := claims["given_name"].(string)
	if givenName == "" {
		givenName = "Unknown"
	}

	return &IdentityClaims{Email: email, GivenName: givenName}, nil
}

type AuthService struct {
	db       *gorm.DB
	verifier TokenVerifier
}

func NewAuthService(db *gorm.DB, verifier TokenVerifier) *AuthService {
	return &AuthService{db: db, verifier: verifier}
}

// AuthResult reports which user a token resolved to and whether the call
// created the row.
type AuthResult struct {
	UserID  string
	Created bool
}

// Authorize verifies the token and upserts a User keyed by email. A repeat
// login never updates the stored name.
func (s *AuthService) Authorize(token string) (*AuthResult, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		slog.Error("token verification failed", "action", "authorize", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var user models.User
	err = s.db.Where("email = ?", claims.Email).First(&user).Error
	if err == nil {
		return &AuthResult{UserID: user.ID, Created: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = models.User{
		ID:        uuid.New().String(),
		Email:     claims.Email,
		FirstName: claims.GivenName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &AuthResult{UserID: user.ID, Created: true}, nil
}

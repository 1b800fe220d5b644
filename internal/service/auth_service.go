package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"grampanchayat/internal/config"
	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

const sessionAudience = "session"

// Claims is the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID     uuid.UUID       `json:"user_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       domain.UserRole `json:"role"`
	VillageIDs []uuid.UUID     `json:"village_ids"`
}

// CanAccessVillage reports whether the session may operate on villageID.
// Super admins reach every village.
func (c *Claims) CanAccessVillage(villageID uuid.UUID) bool {
	if c.Role == domain.RoleSuperAdmin {
		return true
	}
	for _, id := range c.VillageIDs {
		if id == villageID {
			return true
		}
	}
	return false
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Session, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo   port.UserRepository
	accessRepo port.VillageAccessRepository
	cfg        config.JWTConfig
	now        func() time.Time
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(
	userRepo port.UserRepository,
	accessRepo port.VillageAccessRepository,
	cfg config.JWTConfig,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		accessRepo: accessRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrUserInactive
	}

	var villageIDs []uuid.UUID
	if user.Role != domain.RoleSuperAdmin {
		villageIDs, err = s.accessRepo.ListVillageIDs(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("auth.Login village access: %w", err)
		}
	}

	return s.issue(user, villageIDs)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithAudience(sessionAudience),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) issue(user *domain.User, villageIDs []uuid.UUID) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.Expiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{sessionAudience},
		},
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		VillageIDs: villageIDs,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}
	return &Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

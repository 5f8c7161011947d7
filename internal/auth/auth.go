package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/timesheet-management/internal"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// User is the authenticated identity carried through request handling.
type User struct {
	ID    int64
	Email string
	Role  string
}

func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, "admin")
}

type Claims struct {
	UserID    int64  `json:"uid"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenGenerator signs and validates the HS256 access/refresh token
// pair. Access and refresh tokens use separate secrets so a leaked
// access secret cannot mint refresh tokens.
type TokenGenerator struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenGenerator(cfg internal.SecurityConfig) *TokenGenerator {
	return &TokenGenerator{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenDuration,
		refreshTTL:    cfg.RefreshTokenDuration,
	}
}

func (g *TokenGenerator) GeneratePair(user User) (*TokenPair, error) {
	access, err := g.sign(user, tokenTypeAccess, g.accessSecret, g.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := g.sign(user, tokenTypeRefresh, g.refreshSecret, g.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(g.accessTTL.Seconds()),
	}, nil
}

func (g *TokenGenerator) sign(user User, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (g *TokenGenerator) ValidateAccessToken(token string) (*Claims, error) {
	return g.validate(token, tokenTypeAccess, g.accessSecret)
}

func (g *TokenGenerator) ValidateRefreshToken(token string) (*Claims, error) {
	return g.validate(token, tokenTypeRefresh, g.refreshSecret)
}

func (g *TokenGenerator) validate(tokenString, wantType string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}
	if !token.Valid || claims.TokenType != wantType {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

type roleKey struct{}

// ContextWithUser stores the authenticated identity on the context.
func ContextWithUser(ctx context.Context, user User) context.Context {
	ctx = internal.ContextWithUserID(ctx, fmt.Sprintf("%d", user.ID))
	return context.WithValue(ctx, roleKey{}, user.Role)
}

// RoleFromContext returns the authenticated role, or "".
func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey{}).(string); ok {
		return role
	}
	return ""
}

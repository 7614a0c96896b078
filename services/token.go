package services

import (
	"fmt"
	"jiwoo-back/models"
	"jiwoo-back/types"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type AccessClaims struct {
	UserID    int
	Email     string
	Role      types.UserRole
	SessionID string
}

type RefreshClaims struct {
	SessionID string
	TokenID   int64
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (t *TokenIssuer) IssueAccessToken(user *models.User, sessionID string) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"type":       tokenTypeAccess,
		"user_id":    user.ID,
		"email":      user.Email,
		"role":       string(user.UserRole),
		"session_id": sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(t.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) IssueRefreshToken(sessionID string, tokenID int64) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"type":       tokenTypeRefresh,
		"session_id": sessionID,
		"jti":        strconv.FormatInt(tokenID, 10),
		"iat":        now.Unix(),
		"exp":        now.Add(t.refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims, err := t.parse(tokenString, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, fmt.Errorf("%w: missing session_id", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &AccessClaims{
		UserID:    int(userID),
		Email:     email,
		Role:      types.UserRole(role),
		SessionID: sessionID,
	}, nil
}

func (t *TokenIssuer) ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims, err := t.parse(tokenString, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return nil, fmt.Errorf("%w: missing session_id", ErrInvalidToken)
	}
	jti, _ := claims["jti"].(string)
	tokenID, err := strconv.ParseInt(jti, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad jti", ErrInvalidToken)
	}
	return &RefreshClaims{SessionID: sessionID, TokenID: tokenID}, nil
}

func (t *TokenIssuer) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != wantType {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, wantType)
	}
	return claims, nil
}

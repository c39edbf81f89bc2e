package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/easyhr/backend/internal"
	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenGenerator signs access and invite tokens with a shared HS256 secret.
type JWTTokenGenerator struct {
	Secret    []byte
	AccessTTL time.Duration
	InviteTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttls TokenTTLs) *JWTTokenGenerator {
	access := ttls.Access
	if access <= 0 {
		access = 24 * time.Hour
	}
	invite := ttls.Invite
	if invite <= 0 {
		invite = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:    []byte(secret),
		AccessTTL: access,
		InviteTTL: invite,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) GenerateInviteToken(email string) (string, error) {
	now := time.Now()
	claims := &InviteClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.InviteTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ParseAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, j.keyFunc)
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, internal.ErrTokenInvalid
	}
	return claims, nil
}

func (j *JWTTokenGenerator) ParseInviteToken(tokenString string) (*InviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, j.keyFunc)
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*InviteClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, internal.ErrTokenInvalid
	}
	return claims, nil
}

func (j *JWTTokenGenerator) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return j.Secret, nil
}

func mapParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return internal.ErrTokenExpired
	}
	return internal.ErrTokenInvalid
}

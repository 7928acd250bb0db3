package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims used by the stand-in backend's tokens.
type Claims struct {
	UserID    int `json:"userId"`
	CompanyID int `json:"companyId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, companyID int, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenExpiry reads the exp claim without verifying the signature. The
// client only needs to know whether a persisted token is worth reusing; the
// backend remains the authority on validity.
func TokenExpiry(tokenStr string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry")
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the token carries an expiry in the past.
// Tokens without a readable expiry count as expired.
func TokenExpired(tokenStr string) bool {
	exp, err := TokenExpiry(tokenStr)
	if err != nil {
		return true
	}
	return time.Now().After(exp)
}

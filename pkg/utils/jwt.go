package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// Claims is the authenticated principal carried by a bearer token.
type Claims struct {
	UserID      int  `json:"user_id"`
	IsActive    bool `json:"is_active"`
	IsSuperuser bool `json:"is_superuser"`
	jwt.RegisteredClaims
}

func CreateToken(userID int, isActive, isSuperuser bool) (string, error) {
	claims := &Claims{
		UserID:      userID,
		IsActive:    isActive,
		IsSuperuser: isSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 60)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

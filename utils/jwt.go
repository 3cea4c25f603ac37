package utils

import (
	"fmt"
	"os"
	"time"

	"lovebae-backend/models"

	"github.com/golang-jwt/jwt"
)

// AdminTokenCookie is the name of the HttpOnly cookie carrying the admin JWT
const AdminTokenCookie = "admin_token"

// GenerateAdminToken signs an HS256 token for a back-office session
func GenerateAdminToken(admin models.AdminUser, hours int) (string, error) {
	var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"role": admin.Role,
		"name": admin.Username,
		"exp":  time.Now().Add(time.Hour * time.Duration(hours)).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// DecodeAdminToken verifies the signature and expiry of an admin token
func DecodeAdminToken(tokenString string) (jwt.MapClaims, error) {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}

package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every token: the internal id, the role group and the
// chat id the caller authenticated with.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	ChatID string `json:"chatId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role, chatID, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		ChatID: chatID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

package utils

import (
    "errors"
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken signs a short-lived admin token with the shared
// HS256 secret.
func GenerateAdminToken() (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "role": "admin",
        "exp":  time.Now().Add(time.Hour * 72).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseAdminToken validates a token and confirms it carries the admin role.
func ParseAdminToken(tokenString string) error {
    secret := []byte(os.Getenv("JWT_SECRET"))
    if len(secret) == 0 {
        return errors.New("JWT_SECRET not set")
    }

    token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return secret, nil
    })
    if err != nil || !token.Valid {
        return errors.New("invalid token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return errors.New("invalid claims")
    }
    if role, _ := claims["role"].(string); role != "admin" {
        return errors.New("missing admin role")
    }
    return nil
}

package services

import (
	"log"
	"os"

	"github.com/Ramo-11/united-masjid-help/apperrors"
	"github.com/Ramo-11/united-masjid-help/utils"
)

var adminPasswordHash string

// InitAdminAuth hashes the shared admin secret once at startup so requests
// compare against a bcrypt hash, never the raw value.
func InitAdminAuth() {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatalf("ADMIN_PASSWORD not set")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	adminPasswordHash = hash
}

// AuthenticateAdmin checks the shared secret and issues a signed admin
// token. There is no server-side session; the token is the whole proof.
func AuthenticateAdmin(password string) (string, error) {
	if adminPasswordHash == "" || !utils.CheckPasswordHash(password, adminPasswordHash) {
		return "", apperrors.ErrUnauthorized
	}
	return utils.GenerateAdminToken()
}

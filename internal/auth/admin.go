package auth

import (
	"strings"

	"fashionhub/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthenticator checks login credentials against a fixed allow-list of
// admin identities sharing one bcrypt-hashed password.
type AdminAuthenticator struct {
	admins       map[string]struct{}
	passwordHash []byte
}

// NewAdminAuthenticator builds the allow-list. Identities are compared case-insensitively.
func NewAdminAuthenticator(admins []string, passwordHash []byte) *AdminAuthenticator {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		if a = normalise(a); a != "" {
			set[a] = struct{}{}
		}
	}
	return &AdminAuthenticator{
		admins:       set,
		passwordHash: passwordHash,
	}
}

// IsAdmin reports whether identity is on the allow-list.
func (a *AdminAuthenticator) IsAdmin(identity string) bool {
	_, ok := a.admins[normalise(identity)]
	return ok
}

// Authenticate returns model.ErrInvalidCredentials unless identity is an
// admin and password matches the admin password hash.
func (a *AdminAuthenticator) Authenticate(identity, password string) error {
	if !a.IsAdmin(identity) {
		// Same bcrypt work as a known identity.
		_ = bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
		return model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return model.ErrInvalidCredentials
	}

	return nil
}

func normalise(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Package auth reads the signed-in user's identity from the token minted by
// the external identity provider. The provider owns sessions and
// credentials; this package only verifies its HS256 signature and extracts
// the primary email and name.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajaram-gurukul/utsav-registration/internal/config"
)

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	Email string
	Name  string
}

// AuthInput is embedded in handler inputs that read the caller's identity.
type AuthInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token issued by the identity provider" required:"false"`
}

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Enabled reports whether a provider token secret is configured. Without
// one the service runs open, matching deployments where the upstream proxy
// already gates access.
func (h *Handler) Enabled() bool {
	return h.cfg.AuthTokenSecret != ""
}

// Authorize parses the Authorization header and returns the caller's
// identity. When no secret is configured it returns nil identity and nil
// error; callers treat that as an anonymous request.
func (h *Handler) Authorize(input AuthInput) (*Identity, error) {
	if !h.Enabled() {
		return nil, nil
	}

	raw := strings.TrimPrefix(input.Authorization, "Bearer ")
	if raw == "" {
		return nil, fmt.Errorf("missing identity token")
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.AuthTokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid identity token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid identity token claims")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("identity token carries no email")
	}
	name, _ := claims["name"].(string)

	return &Identity{Email: email, Name: name}, nil
}

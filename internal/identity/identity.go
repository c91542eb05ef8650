package identity

import (
	"context"
	"errors"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session")
	ErrAdminAPI     = errors.New("identity admin api unavailable")
)

const adminTimeout = 10 * time.Second

// Gateway fronts the external identity provider. Sessions are HS256 access
// tokens signed with the provider's JWT secret; the subject is the user id.
type Gateway interface {
	Authenticate(token string) (string, error)
	DeleteUser(ctx context.Context, userID string) error
}

type gatewayImpl struct {
	secret     []byte
	audience   string
	adminURL   string
	serviceKey string
}

func NewGateway(configuration *config.Configuration) Gateway {
	return &gatewayImpl{
		secret:     []byte(configuration.Identity.JWTSecret),
		audience:   configuration.Identity.Audience,
		adminURL:   strings.TrimRight(configuration.Identity.AdminURL, "/"),
		serviceKey: configuration.Identity.ServiceKey,
	}
}

func (g *gatewayImpl) Authenticate(tokenString string) (string, error) {
	if tokenString == "" || len(g.secret) == 0 {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if g.audience != "" && !claims.VerifyAudience(g.audience, true) {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// DeleteUser removes the user from the provider through its admin API
// (DELETE <admin_url>/admin/users/<id>) using the service role key.
func (g *gatewayImpl) DeleteUser(ctx context.Context, userID string) error {
	if g.adminURL == "" || g.serviceKey == "" {
		return fmt.Errorf("%w: admin url or service key not configured", ErrAdminAPI)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := adminTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	agent := fiber.Delete(g.adminURL + "/admin/users/" + userID)
	agent.Set("apikey", g.serviceKey)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+g.serviceKey)
	agent.Timeout(timeout)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrAdminAPI, errs[0])
	}
	if status == fiber.StatusNotFound {
		return nil
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrAdminAPI, status, string(body))
	}
	return nil
}

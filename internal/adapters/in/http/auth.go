package http

import (
	"net/http"
	"strings"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims is the access token payload. Subject carries the user ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

// Authenticator validates HS256 bearer tokens. Tokens are issued by the
// login flow, which lives outside this service.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an Authenticator for the shared secret.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Middleware rejects requests without a valid bearer token and stores the
// Principal on the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return writeError(c, http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := a.parse(strings.TrimSpace(raw))
			if err != nil {
				return writeError(c, http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func (a *Authenticator) parse(raw string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Role: role}, nil
}

// principalFrom returns the caller stored by Authenticator.Middleware.
func principalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

// RequireMode lets through callers whose role may change statuses in mode.
func RequireMode(mode order.TransitionMode) echo.MiddlewareFunc {
	return requireRole(func(r user.Role) bool { return r.CanActAs(mode) })
}

// RequireStaff lets through admins and super admins.
func RequireStaff() echo.MiddlewareFunc {
	return requireRole(user.Role.IsStaff)
}

func requireRole(allowed func(user.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := principalFrom(c)
			if !ok {
				return writeError(c, http.StatusUnauthorized, "missing bearer token")
			}
			if !allowed(p.Role) {
				return writeError(c, http.StatusForbidden, "role not allowed")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"skillbridge/config"
	"skillbridge/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	userIDHeader       = "X-Skillbridge-User-Id"
	userRoleHeader     = "X-Skillbridge-User-Role"
	backendTokenHeader = "X-Skillbridge-Backend-Token"
)

var (
	errMissingIdentity = errors.New("missing caller identity")
	errInvalidToken    = errors.New("invalid backend token")
	errInvalidClaims   = errors.New("invalid claims")
)

// BackendClaims are the JWT claims issued by the auth hub for
// service-to-service calls.
type BackendClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityMiddleware resolves the caller for every feed request. The API
// gateway forwards identity headers; service-to-service callers present a
// signed backend token instead. Either way a valid domain.UserContext ends
// up on the request context.
type IdentityMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewIdentityMiddleware(logger *slog.Logger, cfg *config.Config) *IdentityMiddleware {
	secret := []byte(cfg.Auth.BackendTokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("BACKEND_TOKEN_SECRET not set, token-based callers will be denied")
	}

	return &IdentityMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.Auth.BackendTokenIssuer,
		audience: cfg.Auth.BackendTokenAudience,
	}
}

// RequireIdentity rejects requests without a resolvable caller.
func (m *IdentityMiddleware) RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.resolve(c)
			if err != nil {
				if m.logger != nil {
					m.logger.Warn("identity resolution failed", "error", err, "path", c.Request().URL.Path)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (m *IdentityMiddleware) resolve(c echo.Context) (*domain.UserContext, error) {
	if token := c.Request().Header.Get(backendTokenHeader); token != "" {
		return m.validateToken(token)
	}
	return m.fromHeaders(c)
}

func (m *IdentityMiddleware) fromHeaders(c echo.Context) (*domain.UserContext, error) {
	rawID := c.Request().Header.Get(userIDHeader)
	rawRole := c.Request().Header.Get(userRoleHeader)
	if rawID == "" || rawRole == "" {
		return nil, errMissingIdentity
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("malformed user id header: %w", err)
	}

	user := &domain.UserContext{UserID: userID, Role: domain.UserRole(rawRole)}
	if !user.IsValid() {
		return nil, fmt.Errorf("unknown role %q", rawRole)
	}
	return user, nil
}

func (m *IdentityMiddleware) validateToken(tokenStr string) (*domain.UserContext, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("backend token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*BackendClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", errInvalidClaims)
	}

	user := &domain.UserContext{UserID: userID, Role: domain.UserRole(claims.Role)}
	if !user.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", errInvalidClaims, claims.Role)
	}
	return user, nil
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// merchantIDKey is the echo context key under which the authenticated
// merchant ID is stored.
const merchantIDKey = "merchant_id"

type ctxKey int

// merchantCtxKey carries the merchant ID on the request context so
// handlers that only see a context.Context can read it.
const merchantCtxKey ctxKey = 0

// Claims are the JWT claims carried by merchant API tokens.
type Claims struct {
	MerchantID string `json:"merchant_id"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for a merchant, valid for ttl.
func SignToken(secret, merchantID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		MerchantID: merchantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   merchantID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates a token string and returns the merchant ID it
// carries.
func ParseToken(secret, tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.MerchantID == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.MerchantID, nil
}

// Auth returns Echo middleware that requires a valid merchant token on
// every request. The token comes from the Authorization header, or from
// the "token" query parameter for WebSocket clients that cannot set
// headers.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			merchantID, err := ParseToken(secret, tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(merchantIDKey, merchantID)

			req := c.Request()
			c.SetRequest(req.WithContext(
				context.WithValue(req.Context(), merchantCtxKey, merchantID),
			))

			return next(c)
		}
	}
}

// MerchantID returns the authenticated merchant ID for the request, or
// "" when the request did not pass through Auth.
func MerchantID(c echo.Context) string {
	id, _ := c.Get(merchantIDKey).(string)
	return id
}

// MerchantIDFromContext returns the authenticated merchant ID carried
// on a request context, or "" when absent.
func MerchantIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(merchantCtxKey).(string)
	return id
}

// WithMerchantID returns a context carrying the given merchant ID.
// Intended for tests and internal callers that bypass HTTP auth.
func WithMerchantID(ctx context.Context, merchantID string) context.Context {
	return context.WithValue(ctx, merchantCtxKey, merchantID)
}

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}

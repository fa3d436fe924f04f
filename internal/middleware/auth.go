package middleware

import (
	"net/http"
	"strings"

	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
	// TokenCookie is set at login so browser navigation works without a
	// client attaching the Authorization header.
	TokenCookie = "access_token"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	FarmID   *uint  `json:"farm_id"`
	jwt.RegisteredClaims
}

// JWTAuth validates the token on every protected route, reading the
// Authorization header first and falling back to the login cookie.
// Unauthenticated requests are redirected to the login page.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, secret)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth sets claims when a valid token is present but lets
// anonymous requests through. Used on the landing page.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, secret); ok {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, secret string) (*JWTClaims, bool) {
	tokenStr := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenStr = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := c.Cookie(TokenCookie); err == nil {
		tokenStr = cookie
	}
	if tokenStr == "" {
		return nil, false
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
// Returns nil when the request is anonymous.
func GetClaims(c *gin.Context) *JWTClaims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// Scope derives the data visibility boundary from the request's claims.
func Scope(c *gin.Context) tenant.Scope {
	claims := GetClaims(c)
	if claims == nil {
		return tenant.Scope{}
	}
	return tenant.Scope{FarmID: claims.FarmID, Admin: claims.IsAdmin}
}

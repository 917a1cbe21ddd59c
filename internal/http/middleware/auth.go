package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// IssueToken signs a 24h admin session token.
func IssueToken(secret []byte, userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

// RequireAuth gates every admin route behind a valid bearer token. API callers
// get a 401 JSON body; there are no page redirects at this layer.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			// fall back to the session cookie set by the login page
			if cookie, err := c.Cookie("session_token"); err == nil {
				raw = "Bearer " + cookie
			}
		}
		if !strings.HasPrefix(raw, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(raw, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c)
			return
		}
		uid, ok := claims["user_id"].(float64)
		if !ok || uid <= 0 {
			abortUnauthorized(c)
			return
		}

		c.Set(authUserKey, int64(uid))
		c.Next()
	}
}

// AuthUserID returns the authenticated admin id, or 0 outside the gate.
func AuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(authUserKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "authentication required",
		"request_id": GetRequestID(c),
	})
}

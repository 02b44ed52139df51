package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "cashflow/internal/errors"
)

const (
	sessionIDKey  = "sessionID"
	sessionIssuer = "cashflow-api"
)

// SessionClaims represents the claims in a session token
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionTokens issues and verifies the signed tokens that bind a client
// to its game session.
type SessionTokens struct {
	key []byte
	ttl time.Duration
}

// NewSessionTokens creates a SessionTokens signing with secret. Tokens expire after ttl.
func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	return &SessionTokens{key: []byte(secret), ttl: ttl}
}

// Generate returns a signed token for sessionID and its expiry time.
func (t *SessionTokens) Generate(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token and returns its claims.
func (t *SessionTokens) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	}, jwt.WithIssuer(sessionIssuer))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("session token has no session id")
	}
	return claims, nil
}

// SessionAuthMiddleware verifies the session token and sets the session ID in the context
func SessionAuthMiddleware(tokens *SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session token")
			return
		}

		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by SessionAuthMiddleware.
func SessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	err := apperrors.WithMessage(apperrors.ErrUnauthorized, message)
	c.AbortWithStatusJSON(err.StatusCode, gin.H{"error": gin.H{"code": err.Code, "message": err.Message}})
}

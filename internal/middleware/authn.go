package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"

	"taskboard/backend/internal/models"
)

const actorKey = "actor"

// ResolveActor parses the Bearer token, if present, and stores the
// resolved actor on the request context. Requests without a valid token
// proceed as the anonymous actor; the services decide what anonymous
// actors may do.
func ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, _ := actorFromHeader(c)
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries a valid token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromHeader(c)
		if err != nil || !actor.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_token",
				"message": "A valid Bearer token is required",
			})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor resolved by the auth middleware, or
// the anonymous actor when none was set.
func ActorFromContext(c *gin.Context) models.Actor {
	value, exists := c.Get(actorKey)
	if !exists {
		return models.Anonymous
	}
	actor, ok := value.(models.Actor)
	if !ok {
		return models.Anonymous
	}
	return actor
}

func actorFromHeader(c *gin.Context) (models.Actor, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return models.Anonymous, nil
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Anonymous, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Anonymous, jwt.ErrTokenInvalidClaims
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.FromString(userIDStr)
	if err != nil {
		return models.Anonymous, err
	}

	role, _ := claims["role"].(string)

	return models.Actor{
		ID:            userID,
		Role:          role,
		Authenticated: true,
	}, nil
}

package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	autherrors "go-hrcore/internal/auth/errors"
	"go-hrcore/internal/shared/apperror"
	"go-hrcore/internal/shared/contextutil"
	"go-hrcore/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the calling person's
// id under "actor_id" for handlers and under contextutil for services.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			writeAuthError(c, errObj)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}
		actorID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || actorID < 1 {
			writeAuthError(c, autherrors.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)

		c.Set("actor_id", actorID)
		c.Set("role", role)
		c.Request = c.Request.WithContext(
			contextutil.WithActorID(c.Request.Context(), actorID),
		)

		c.Next()
	}
}

func writeAuthError(c *gin.Context, errObj *apperror.AppError) {
	response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
	c.Abort()
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/quizmakerhq/quizmaker/config"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

const userContextKey = "currentUser"

// Authenticate validates the bearer token and loads the account behind it
// into the request context. Deactivated accounts are rejected.
func Authenticate(cfg *config.Config, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(ctx, "Missing authorization token")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(ctx, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(ctx, "Invalid token claims")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			abortUnauthorized(ctx, "Invalid token claims")
			return
		}

		user, err := userRepo.FindByID(uint(userIDFloat))
		if err != nil {
			abortUnauthorized(ctx, "Invalid token")
			return
		}
		if !user.IsActive {
			abortUnauthorized(ctx, "Account is deactivated")
			return
		}

		ctx.Set(userContextKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the authenticated account set by Authenticate.
func CurrentUser(ctx *gin.Context) *model.User {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
}

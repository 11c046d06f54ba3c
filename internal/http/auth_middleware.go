package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-api/internal/domain"
	"course-api/internal/service"
)

const accessDeniedMessage = "Access Denied"

// BasicAuthMiddleware autentica la request con Basic auth. Si falla responde 401
// y corta la cadena; si no, deja la identidad en el contexto de la request.
func BasicAuthMiddleware(logger *zap.Logger, authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, ok := ParseBasicCredentials(c.GetHeader("Authorization"))
		if !ok {
			rejectAuth(c, logger, &service.AuthFailure{Reason: service.ReasonNoCredentials})
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), creds)
		if err != nil {
			rejectAuth(c, logger, err)
			return
		}

		logger.Debug("authentication succeeded", zap.String("user_id", user.ID))
		c.Request = c.Request.WithContext(service.WithIdentity(c.Request.Context(), user))
		c.Next()
	}
}

func rejectAuth(c *gin.Context, logger *zap.Logger, err error) {
	var failure *service.AuthFailure
	if errors.As(err, &failure) {
		logger.Warn("authentication failed",
			zap.String("reason", failure.Reason),
			zap.String("identifier", failure.Identifier),
		)
	} else {
		logger.Error("authentication lookup failed", zap.Error(err))
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": accessDeniedMessage})
}

// currentIdentity obtiene el usuario autenticado de la request.
func currentIdentity(c *gin.Context) (domain.User, bool) {
	return service.IdentityFromContext(c.Request.Context())
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas de la API.
func NewRouter(
	logger *zap.Logger,
	authSvc *service.AuthService,
	userH *UserHandler,
	courseH *CourseHandler,
	logUnexpectedErrors bool,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, agregacion de errores y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), ErrorAggregator(logger, logUnexpectedErrors), jsonContentTypeMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "welcome to the school api")
	})

	requireAuth := BasicAuthMiddleware(logger, authSvc)
	api := r.Group("/api")

	users := api.Group("/users")
	users.GET("", requireAuth, userH.GetCurrentUser)
	users.POST("", userH.CreateUser)

	courses := api.Group("/courses")
	courses.GET("", courseH.ListCourses)
	courses.GET("/:id", courseH.GetCourse)
	courses.POST("", requireAuth, courseH.CreateCourse)
	courses.PUT("/:id", requireAuth, courseH.UpdateCourse)
	courses.DELETE("/:id", requireAuth, courseH.DeleteCourse)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route Not Found"})
	})

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

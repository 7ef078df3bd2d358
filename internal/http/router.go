package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bigfive-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	testH *TestHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Rutas publicas.
	users := r.Group("/users")
	users.POST("", userH.CreateUser)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.Refresh)

	r.GET("/questions", testH.ListQuestions)

	// Rutas protegidas: todo lo que toca sesiones requiere token.
	sessions := r.Group("/sessions")
	sessions.Use(JWTAuthMiddleware(jwtSvc))
	sessions.POST("", testH.CreateSession)
	sessions.POST("/:id/answers", testH.SubmitAnswer)
	sessions.GET("/:id/missing", testH.MissingQuestions)
	sessions.POST("/:id/complete", testH.CompleteSession)
	sessions.GET("/:id/result", testH.GetResult)
	sessions.POST("/:id/recalculate", testH.Recalculate)
	sessions.POST("/:id/narrative", testH.GenerateNarrative)
	sessions.GET("/:id/narrative", testH.NarrativeStatus)

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

// Package router assembles the HTTP route table.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "calendar_backend/internal/feature/auth/transport/handler"
	calendarhandler "calendar_backend/internal/feature/calendar/transport/handler"
	taskhandler "calendar_backend/internal/feature/tasks/transport/handler"
	"calendar_backend/internal/platform/http/handler"
	jwtmw "calendar_backend/internal/platform/jwt"
	"calendar_backend/internal/shared/ratelimiter"
)

// NewRouter wires all handlers into a gin engine.
// The auth endpoints sit behind the rate limiter; everything under the
// authenticated group requires a valid bearer token.
func NewRouter(authHandler *authhandler.AuthHandler, tasks *taskhandler.TaskHandler,
	calendar *calendarhandler.CalendarHandler, authLimiter *ratelimiter.KeyedLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// No authentication required
	r.GET("/healthz", handler.Health)

	// Credential endpoints, throttled per client IP
	public := r.Group("/")
	public.Use(authLimiter.Middleware())
	{
		public.POST("/signup", authHandler.Signup)
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
		public.POST("/logout", authHandler.Logout)
	}

	// Authenticated routes: a bearer token is required in the request header
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/tasks", tasks.Create)
		auth.GET("/tasks", tasks.ListAll)
		auth.GET("/tasks/mine", tasks.ListMine)
		auth.PUT("/tasks/:id", tasks.Update)
		auth.DELETE("/tasks/:id", tasks.Delete)
		auth.GET("/calendar/:year/:month", calendar.Month)
	}

	return r
}

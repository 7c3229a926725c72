package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"calendar_backend/internal/app/di"
	"calendar_backend/internal/app/router"
	authadapters "calendar_backend/internal/feature/auth/adapters"
	authhandler "calendar_backend/internal/feature/auth/transport/handler"
	authusecase "calendar_backend/internal/feature/auth/usecase"
	calendarhandler "calendar_backend/internal/feature/calendar/transport/handler"
	calendarusecase "calendar_backend/internal/feature/calendar/usecase"
	taskhandler "calendar_backend/internal/feature/tasks/transport/handler"
	taskusecase "calendar_backend/internal/feature/tasks/usecase"
	platformdb "calendar_backend/internal/platform/db"
	jwtmw "calendar_backend/internal/platform/jwt"
	platformredis "calendar_backend/internal/platform/redis"
	"calendar_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is a development convenience; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Database: a failure to open or migrate blocks startup entirely.
	// Running with a broken store would silently lose every write.
	db, err := platformdb.Open(platformdb.LoadConfigFromEnv(), nil)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := platformdb.InitSchema(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Redis is optional: sessions fall back to SQLite and the task cache
	// degrades to pass-through.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserSQLite(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	taskRepo := di.NewTaskRepository(rdb, db, 5*time.Minute)

	// JWT_SECRET check (development reminder)
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokenGen, 0)
	taskUC := taskusecase.NewTaskUsecase(taskRepo, userRepo)
	monthUC := calendarusecase.NewMonthUsecase(taskUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)
	calendarH := calendarhandler.NewCalendarHandler(monthUC)

	// Credential endpoints get a per-IP throttle against password guessing.
	authLimiter := ratelimiter.NewKeyedLimiter(10, time.Minute)

	r := router.NewRouter(authH, taskH, calendarH, authLimiter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

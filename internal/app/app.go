package app

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/3DBotics/attendance/internal/clock"
	"github.com/3DBotics/attendance/internal/shared/connection"
)

func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	loc := clock.DefaultLocation(os.Getenv("TZ_NAME"))

	return registerModules(router, db, redisClient, clock.NewSystem(loc))
}

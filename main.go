package main

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"eventapi/config"
	"eventapi/db"
	"eventapi/middlewares"
	"eventapi/models"
	"eventapi/routes"
	"eventapi/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	// Postgres
	sqldb, err := db.Open(cfg.PgDSN)
	if err != nil {
		log.Fatal("Postgres error: ", err)
	}
	if err := db.Migrate(sqldb); err != nil {
		log.Fatal("migration error: ", err)
	}

	users := models.NewSQLUserRepository(sqldb)
	if err := seedAdmin(users, cfg.Admin); err != nil {
		log.Fatal("admin seed error: ", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	jm := utils.NewJWTManager(cfg.JWT)
	inv := utils.NewCacheInvalidator(rdb)

	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(middlewares.ResponseCache(rdb, 30*time.Second))

	routes.RegisterRoutes(server,
		users,
		models.NewSQLRegistrationRepository(sqldb),
		models.NewSQLEventRepository(sqldb),
		jm, rdb, inv)

	if err := server.Run(cfg.Addr); err != nil {
		log.Fatal("gin.Run error: ", err)
	}
}

// seedAdmin creates the admin account once. An existing user with the
// configured username is left untouched.
func seedAdmin(users models.UserRepository, admin config.AdminUser) error {
	_, err := users.GetByUsername(admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	u := models.User{
		FullName:     admin.FullName,
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hashed,
	}
	if err := users.Create(&u); err != nil {
		return err
	}
	log.Printf("seeded admin user %q (id=%d)", u.Username, u.ID)
	return nil
}

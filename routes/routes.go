package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"eventapi/middlewares"
	"eventapi/models"
	"eventapi/utils"
)

type deps struct {
	users  models.UserRepository
	regs   models.RegistrationRepository
	events models.EventRepository
	jm     *utils.JWTManager
	inv    *utils.CacheInvalidator
}

// RegisterRoutes wires the handlers plus the rate-limit / quota layers onto
// the server. Repositories, token manager and invalidator come from main.
func RegisterRoutes(
	server *gin.Engine,
	u models.UserRepository,
	r models.RegistrationRepository,
	e models.EventRepository,
	jm *utils.JWTManager,
	rdb *redis.Client,
	inv *utils.CacheInvalidator,
) {
	d := &deps{users: u, regs: r, events: e, jm: jm, inv: inv}

	// global per-IP limiter
	globalLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     20,
		Burst:   40,
		IdleTTL: 3 * time.Minute,
	})
	server.Use(globalLimiter.Middleware(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	}))

	// stricter limiter on login to slow down credential guessing
	loginLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     0.5,
		Burst:   2,
		IdleTTL: 10 * time.Minute,
	})

	// public endpoints
	server.GET("/events", d.getEvents)
	server.GET("/events/:id", d.getEvent)
	server.POST("/events/:id/register", d.registerForEvent)
	server.POST("/auth/login",
		loginLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.login,
	)

	// admin endpoints: bearer token, then per-user limiter + daily quota
	auth := server.Group("/")
	auth.Use(middlewares.Authenticate(jm))

	userLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     5,
		Burst:   10,
		IdleTTL: 10 * time.Minute,
	})
	auth.Use(userLimiter.Middleware(func(c *gin.Context) string {
		return "u:" + strconv.FormatInt(c.GetInt64("userId"), 10)
	}))

	auth.Use(middlewares.Quota(rdb, middlewares.QuotaRule{
		Limit:  2000,
		Window: 24 * time.Hour,
		KeyFn: func(c *gin.Context) string {
			uid := c.GetInt64("userId")
			if uid == 0 {
				return ""
			}
			return fmt.Sprintf("quota:user:%d:day", uid)
		},
	}))

	auth.POST("/events/create", d.createEvent)
	auth.GET("/events/:id/registrations", d.getRegistrations)
	auth.DELETE("/events/:id", d.deleteEvent)
}

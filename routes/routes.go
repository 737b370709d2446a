package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/controllers"
	"contacts-http-service/middleware"
	"contacts-http-service/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Construct the Redis client only when it is enabled; the container
	// falls back to an in-memory flash store otherwise
	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	return SetupRouterWithContainer(serviceContainer, cfg)
}

// SetupRouterWithContainer wires the routes against an existing service
// container. The test suite uses this entry point directly.
func SetupRouterWithContainer(serviceContainer *container.ServiceContainer, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Session cookies scope the flash messages; the rate limiter keeps the
	// interactive surface from being hammered
	r.Use(middleware.Session())
	r.Use(middleware.RateLimiter(100, 200))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all application routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Listing
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/index")
	})
	r.GET("/index", controllers.HandlePersonFunc(container, "index"))

	// Person routes
	r.GET("/person/add", controllers.HandlePersonFunc(container, "showAddForm"))
	r.GET("/person/:person_id", controllers.HandlePersonFunc(container, "showPerson"))
	r.POST("/person/add", controllers.HandlePersonFunc(container, "createPerson"))
	r.POST("/person/delete/:person_id", controllers.HandlePersonFunc(container, "deletePerson"))

	// Phone number routes
	r.GET("/phone_number/add/:person_id", controllers.HandlePhoneNumberFunc(container, "showAddForm"))
	r.POST("/phone_number/add/:person_id", controllers.HandlePhoneNumberFunc(container, "createPhoneNumber"))
	r.POST("/person/:person_id/phone_number/:phone_id", controllers.HandlePhoneNumberFunc(container, "deletePhoneNumber"))

	// Street address routes
	r.GET("/street_address/add/:person_id", controllers.HandleStreetAddressFunc(container, "showAddForm"))
	r.POST("/street_address/add/:person_id", controllers.HandleStreetAddressFunc(container, "createStreetAddress"))
	r.POST("/person/:person_id/street_address/:street_id", controllers.HandleStreetAddressFunc(container, "deleteStreetAddress"))

	// Email address routes
	r.GET("/email_address/add/:person_id", controllers.HandleEmailAddressFunc(container, "showAddForm"))
	r.POST("/email_address/add/:person_id", controllers.HandleEmailAddressFunc(container, "createEmailAddress"))
	r.POST("/person/:person_id/email_address/:email_id", controllers.HandleEmailAddressFunc(container, "deleteEmailAddress"))
}

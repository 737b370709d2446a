package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/services"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Business services
	personService        services.InterfacePersonService
	phoneNumberService   services.InterfacePhoneNumberService
	streetAddressService services.InterfaceStreetAddressService
	emailAddressService  services.InterfaceEmailAddressService

	// Flash message store (Redis-backed when available, in-memory otherwise)
	flashService services.InterfaceFlashService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. The Redis client may
// be nil, in which case flash messages are kept in process memory.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Verify the Redis connection before relying on it
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, falling back to in-memory flash store", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Business services
	c.personService = services.NewPersonService(c.db, c.config)
	c.phoneNumberService = services.NewPhoneNumberService(c.db, c.config)
	c.streetAddressService = services.NewStreetAddressService(c.db, c.config)
	c.emailAddressService = services.NewEmailAddressService(c.db, c.config)

	// Flash store
	if c.redis != nil {
		c.flashService = services.NewRedisFlashServiceWithClient(c.redis)
	} else {
		c.flashService = services.NewMemoryFlashService()
	}
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "person":
		return c.personService
	case "phone_number":
		return c.phoneNumberService
	case "street_address":
		return c.streetAddressService
	case "email_address":
		return c.emailAddressService
	case "flash":
		return c.flashService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

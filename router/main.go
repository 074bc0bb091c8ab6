package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sahilchouksey/todo-graphql-api/config"
	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/graph"
	"github.com/sahilchouksey/todo-graphql-api/handlers"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
	"github.com/sahilchouksey/todo-graphql-api/utils/cache"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
)

// SetupRoutes mounts the health endpoint and the GraphQL handler. The GraphQL
// handler is a net/http handler, so it is wrapped with the viewer middleware
// and mounted through the Fiber adaptor.
func SetupRoutes(app *fiber.App, store database.Storage) {
	env, err := config.Get()
	if err != nil {
		log.Fatal("Failed to read configuration:", err)
	}

	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	issuer := env.JWT_ISSUER
	if issuer == "" {
		issuer = "todo-graphql-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        issuer,
	})

	// Login throttling is optional; without Redis the API still serves, it
	// just doesn't lock out repeated failures.
	var loginGuard *middleware.BruteForceProtection
	if env.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Println("WARNING: Redis unavailable, login throttling disabled:", err)
		} else {
			loginGuard = middleware.NewBruteForceProtection(redisCache)
			log.Println("Login throttling enabled")
		}
	}

	resolver := graph.NewResolver(store, jwtManager, loginGuard)
	gqlHandler, err := graph.NewHandler(resolver)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema:", err)
	}

	chain := middleware.WithViewer(store, jwtManager)(gqlHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HealthCheck(c, store)
	})

	app.All("/graphql", adaptor.HTTPHandler(chain))
}

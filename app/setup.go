package app

import (
	"fmt"
	"log"

	"github.com/sahilchouksey/todo-graphql-api/api"
	"github.com/sahilchouksey/todo-graphql-api/config"
	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/router"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
)

// SetupAndRunServer loads configuration, connects to the database, runs
// migrations, wires the routes and starts listening.
func SetupAndRunServer() error {
	err := config.LoadENV()
	if err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		return err
	}

	listenAddress := fmt.Sprintf(":%d", env.PORT)
	server := api.NewAPIServer(listenAddress)

	app := server.GetEngine()

	allowedOrigins := env.ALLOWED_ORIGINS
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:8080"
		log.Println("ALLOWED_ORIGINS not set, using development defaults")
	}
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: allowedOrigins,
	})

	router.SetupRoutes(app, store)

	return server.Run()
}

package routes

import (
	"Recipe-Finder/internal/api/handlers"
	"Recipe-Finder/internal/middleware"
	"Recipe-Finder/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	ReviewHandler handlers.ReviewHandler
	HealthHandler handlers.HealthHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
	ClientDir     string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Reviews()
	c.GuestRoute()
	c.Client()
}

func (c *Config) User() {
	api := c.App.Group("/api")
	// user routes
	{
		api.Post("/register", c.UserHandler.Register)
		api.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	recipes.Get("", c.RecipeHandler.SearchRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews")
	reviews.Get("/:recipeId", c.ReviewHandler.GetReviews)
	reviews.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.AddReview)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", c.HealthHandler.Health)
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Client serves the browser client's static files when a directory is configured.
func (c *Config) Client() {
	if c.ClientDir == "" {
		return
	}
	c.App.Static("/", c.ClientDir)
}

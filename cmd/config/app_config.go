package config

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/api/handlers"
	"Recipe-Finder/internal/api/presenters"
	"Recipe-Finder/internal/api/routes"
	"Recipe-Finder/internal/middleware"
	"Recipe-Finder/internal/utils"
	"Recipe-Finder/pkg/jwt"
	"Recipe-Finder/pkg/recipe"
	"Recipe-Finder/pkg/review"
	"Recipe-Finder/pkg/user"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// DevJWTSecret signs tokens when JWT_SECRET is not configured.
const DevJWTSecret = "supersecretkey"

// AppOptions carries the process configuration NewApp needs. Zero values fall
// back to the loaded config.
type AppOptions struct {
	JWTSecret          string
	SpoonacularAPIKey  string
	SpoonacularBaseURL string
	ClientDir          string
	HTTPClient         *http.Client
	DisableAccessLog   bool
	Now                func() time.Time
}

func OptionsFromConfig() AppOptions {
	return AppOptions{
		JWTSecret:          utils.GetConfig("JWT_SECRET"),
		SpoonacularAPIKey:  utils.GetConfig("SPOONACULAR_API_KEY"),
		SpoonacularBaseURL: utils.GetConfig("SPOONACULAR_BASE_URL"),
		ClientDir:          utils.GetConfig("CLIENT_DIR"),
	}
}

func NewApp(db *gorm.DB, opts AppOptions) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())
	if !opts.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "UTC",
			Output:     os.Stdout,
		}))
	}

	if opts.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, using the development secret")
		opts.JWTSecret = DevJWTSecret
	}
	if opts.SpoonacularBaseURL == "" {
		opts.SpoonacularBaseURL = utils.DefaultSpoonacularBaseURL
	}

	provider := recipe.NewProvider(opts.SpoonacularAPIKey, opts.SpoonacularBaseURL, opts.HTTPClient)
	if provider.IsFallback() {
		log.Info("SPOONACULAR_API_KEY is not set, serving mock recipes")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService(opts.JWTSecret, jwt.WithClock(opts.Now))
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, provider)
	reviewService := review.NewReviewService(reviewRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	healthHandler := handlers.NewHealthHandler(db)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		ReviewHandler: reviewHandler,
		HealthHandler: healthHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
		ClientDir:     opts.ClientDir,
	}
	routesConfig.Setup()
	return app, nil
}

// errorHandler renders errors that escape handlers (unknown routes, oversized
// bodies, recovered panics) in the same envelope as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
		if code == fiber.StatusNotFound {
			message = domain.MessageRouteNotFound
		}
	} else {
		log.Errorw("unhandled error", "path", c.Path(), "error", err)
	}

	return presenters.ErrorResponse(c, code, message, nil)
}

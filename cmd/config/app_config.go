package config

import (
	"SaveBite/internal/api/handlers"
	"SaveBite/internal/api/routes"
	"SaveBite/internal/middleware"
	"SaveBite/internal/utils"
	"SaveBite/internal/utils/mailing"
	"SaveBite/pkg/category"
	"SaveBite/pkg/food"
	"SaveBite/pkg/jwt"
	"SaveBite/pkg/recipe"
	"SaveBite/pkg/reminder"
	"SaveBite/pkg/user"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Clock returns the current time in the configured time zone.
func Clock() func() time.Time {
	loc := utils.GetLocation()
	return func() time.Time { return time.Now().In(loc) }
}

func NewApp(db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "SaveBite",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	clock := Clock()

	// setting up access logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reminderRepository := reminder.NewReminderRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	scheduler := reminder.NewScheduler(log.Named("scheduler"), 0)
	reminderService := reminder.NewReminderService(
		reminderRepository,
		foodRepository,
		userRepository,
		scheduler,
		clock,
		log.Named("reminder"),
	)
	userService := user.NewUserService(userRepository, jwtService, log.Named("user"))
	foodService := food.NewFoodService(foodRepository, categoryRepository, reminderService, clock, log.Named("food"))
	categoryService := category.NewCategoryService(categoryRepository, foodRepository)
	gemini := recipe.NewGeminiClient(utils.GetConfig("GEMINI_API_KEY"), utils.GetConfig("GEMINI_MODEL"), "")
	recipeService := recipe.NewRecipeService(recipeRepository, foodRepository, gemini, log.Named("recipe"))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reminderHandler := handlers.NewReminderHandler(reminderService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		CategoryHandler: categoryHandler,
		RecipeHandler:   recipeHandler,
		ReminderHandler: reminderHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// NewDispatcher builds the reminder delivery worker on top of the SMTP mailer.
func NewDispatcher(db *gorm.DB, log *zap.Logger) (*reminder.Dispatcher, error) {
	mailer, err := mailing.NewMailer(mailing.LoadMailConfig())
	if err != nil {
		return nil, err
	}

	return reminder.NewDispatcher(
		reminder.NewReminderRepository(db),
		mailer,
		utils.GetReminderPollInterval(),
		log.Named("dispatcher"),
	), nil
}

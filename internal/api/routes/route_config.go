package routes

import (
	"SaveBite/internal/api/handlers"
	"SaveBite/internal/middleware"
	"SaveBite/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	CategoryHandler handlers.CategoryHandler
	RecipeHandler   handlers.RecipeHandler
	ReminderHandler handlers.ReminderHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService

	protected fiber.Router
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	// registered after the guest routes so register and login stay public
	c.protected = c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	c.User()
	c.FoodItems()
	c.Recipes()
	c.Reminders()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	v1 := c.App.Group("/api/v1")
	v1.Post("/register", c.UserHandler.Register)
	v1.Post("/login", c.UserHandler.Login)
}

func (c *Config) User() {
	v1 := c.protected
	v1.Get("/me", c.UserHandler.Me)
	v1.Get("/categories", c.CategoryHandler.GetCategories)
}

func (c *Config) FoodItems() {
	foodItems := c.protected.Group("/foods")
	foodItems.Get("/grouped", c.FoodHandler.GetGroupedFoodItems)
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Recipes() {
	v1 := c.protected
	v1.Post("/recipe", c.RecipeHandler.GenerateRecipe)
	v1.Post("/fertilizer", c.RecipeHandler.GenerateFertilizer)
	v1.Get("/recipes", c.RecipeHandler.GetRecipes)
	v1.Delete("/recipes/:id", c.RecipeHandler.DeleteRecipe)
	v1.Get("/fertilizers", c.RecipeHandler.GetFertilizers)
	v1.Delete("/fertilizers/:id", c.RecipeHandler.DeleteFertilizer)
}

func (c *Config) Reminders() {
	v1 := c.protected
	v1.Post("/notifications/permission", c.ReminderHandler.SetNotificationPermission)
	v1.Post("/reminders/reschedule", c.ReminderHandler.Reschedule)
	v1.Get("/reminders", c.ReminderHandler.GetReminders)
}

func (c *Config) Admin() {
	admin := c.protected.Group("/admin", c.Middleware.AdminOnly())
	admin.Get("/users", c.UserHandler.GetUsers)
	admin.Delete("/users/:id", c.UserHandler.DeleteUser)
	admin.Post("/promote", c.UserHandler.PromoteUser)
	admin.Get("/logs", c.UserHandler.GetLoginLogs)
	admin.Get("/foods", c.FoodHandler.GetAllFoodItems)
	admin.Get("/recipes", c.RecipeHandler.GetAllRecipes)
	admin.Post("/category", c.CategoryHandler.CreateCategory)
	admin.Put("/category/:id", c.CategoryHandler.UpdateCategory)
	admin.Delete("/category/:id", c.CategoryHandler.DeleteCategory)
}

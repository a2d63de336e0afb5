package routes

import (
	"baratie/domain"
	"baratie/internal/api/handlers"
	"baratie/internal/middleware"
	"baratie/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	AuthHandler         handlers.AuthHandler
	FoodHandler         handlers.FoodHandler
	OrderHandler        handlers.OrderHandler
	AdminHandler        handlers.AdminHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	PublicDir           string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Menu()
	c.Orders()
	c.Chef()
	c.Admin()
	c.Notifications()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	if c.PublicDir != "" {
		c.App.Static("/"+domain.MenuImageRootFolder, c.PublicDir+"/"+domain.MenuImageRootFolder)
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	auth.Post("/signup", c.AuthHandler.Signup)
	auth.Post("/login", c.AuthHandler.Login)
}

func (c *Config) Menu() {
	c.App.Get("/api/food-items", c.FoodHandler.GetFoodItems)

	menu := c.App.Group("/api/menu")
	menu.Get("/categories", c.FoodHandler.GetCategories)
	menu.Get("/specials", c.FoodHandler.GetSpecials)
}

// Orders are employee routes and stay open, employees identify themselves with userId.
func (c *Config) Orders() {
	c.App.Post("/api/orders", c.OrderHandler.PlaceOrder)
	c.App.Get("/api/orders/:id", c.OrderHandler.GetOrder)
	c.App.Get("/api/my-orders", c.OrderHandler.GetMyOrders)
}

func (c *Config) Chef() {
	chef := c.App.Group("/api/chef",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleChef),
	)
	chef.Post("/food-items", c.FoodHandler.AddFoodItem)
	chef.Get("/food-items", c.FoodHandler.GetChefFoodItems)
	chef.Delete("/food-items/:id", c.FoodHandler.DeleteFoodItem)

	chef.Get("/orders", c.OrderHandler.GetChefOrders)
	chef.Patch("/orders/:id", c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleAdmin),
	)
	admin.Get("/overview", c.AdminHandler.GetOverview)
	admin.Get("/dashboard-data", c.AdminHandler.GetDashboardData)
}

func (c *Config) Notifications() {
	c.App.Get("/api/notifications", c.NotificationHandler.GetNotifications)
}

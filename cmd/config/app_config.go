package config

import (
	"os"
	"time"

	"baratie/internal/api/handlers"
	"baratie/internal/api/routes"
	"baratie/internal/middleware"
	"baratie/internal/utils"
	"baratie/internal/utils/mailing"
	"baratie/pkg/admin"
	"baratie/pkg/auth"
	"baratie/pkg/counter"
	"baratie/pkg/jwt"
	"baratie/pkg/menu"
	"baratie/pkg/notification"
	"baratie/pkg/order"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, infra *Infrastructure) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "The Baratie",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	counterRepository := counter.NewCounterRepository(db)
	orderRepository := order.NewOrderRepository(db, counterRepository)
	menuRepository := menu.NewMenuRepository(db)
	authRepository := auth.NewAuthRepository(db)
	adminRepository := admin.NewAdminRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	guard := order.NewNoopIdempotencyGuard()
	if infra.Redis != nil {
		guard = order.NewRedisIdempotencyGuard(infra.Redis)
	}
	orderService := order.NewOrderService(orderRepository, menuRepository, guard, infra.Bus)
	menuService := menu.NewMenuService(menuRepository, infra.Images)
	authService := auth.NewAuthService(authRepository, jwtService)
	adminService := admin.NewAdminService(adminRepository)
	notificationService := NewNotificationService(notificationRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	foodHandler := handlers.NewFoodHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	adminHandler := handlers.NewAdminHandler(adminService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		AuthHandler:         authHandler,
		FoodHandler:         foodHandler,
		OrderHandler:        orderHandler,
		AdminHandler:        adminHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		PublicDir:           utils.GetConfig("PUBLIC_DIR"),
	}
	routesConfig.Setup()
	return app, nil
}

// NewNotificationService wires mail delivery only when SMTP is configured.
func NewNotificationService(repository notification.NotificationRepository) notification.NotificationService {
	var sendMail notification.MailFunc
	if mailing.LoadMailConfig().Enabled() {
		sendMail = mailing.SendMail
	}
	return notification.NewNotificationService(repository, sendMail)
}

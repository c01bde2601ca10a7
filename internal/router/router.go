package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"saasland/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	healthHandler *handler.HealthHandler,
	pricingHandler *handler.PricingHandler,
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// Public marketing API: any origin, any method, any header.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", healthHandler.Root)
	e.GET("/test", healthHandler.Diag)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/hello", healthHandler.Hello)
	api.GET("/pricing", pricingHandler.List)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/blog", blogHandler.List)
	api.POST("/blog", blogHandler.Create)
	api.POST("/contact", contactHandler.Submit)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

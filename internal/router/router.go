package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"poppys/internal/auth"
	"poppys/internal/config"
	"poppys/internal/handler"
)

// Register wires routes and middleware. Routes carrying the gate middleware
// never reach their handler on a rejected credential.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	gate := echojwt.WithConfig(auth.GateConfig(cfg.JWTSecret))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users. The static /users/email route must win over /users/:id, which
	// echo guarantees by matching static segments before params.
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, gate)
	e.GET("/users/email", userHandler.Me, gate)
	e.GET("/users/email/:email", userHandler.GetByEmail)
	e.GET("/users/:id", userHandler.GetByID)
	e.PATCH("/users/:id", userHandler.UpdateProfile)
	e.PATCH("/users/:id/role", userHandler.UpdateRole, gate)

	// Products: public reads, gated mutations.
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, gate)
	e.PATCH("/products/:id", productHandler.Update, gate)
	e.DELETE("/products/:id", productHandler.Delete, gate)

	// Orders: everything behind the gate.
	e.POST("/orders", orderHandler.Create, gate)
	e.GET("/orders/user", orderHandler.ListMine, gate)
	e.GET("/orders", orderHandler.List, gate)
	e.GET("/orders/:id", orderHandler.Get, gate)
	e.PATCH("/orders/:id", orderHandler.Update, gate)
	e.DELETE("/orders/:id", orderHandler.Delete, gate)

	// Reports.
	e.GET("/reports/order-status", reportHandler.OrderStatus, gate)
	e.GET("/reports/monthly-registrations", reportHandler.MonthlyRegistrations)
	e.GET("/reports/weekly-registrations", reportHandler.WeeklyRegistrations)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

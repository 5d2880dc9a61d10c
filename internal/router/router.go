package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"court/internal/auth"
	"court/internal/config"
	"court/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	caseHandler *handler.CaseHandler,
	juryHandler *handler.JuryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// Authenticated routes; claims parse into auth.Claims so handlers can
	// resolve the acting user.
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	})

	cases := e.Group("/case", jwtMiddleware)
	cases.POST("/submit", caseHandler.Submit)
	cases.GET("/all", caseHandler.ListAll)
	cases.GET("/by-name/:name", caseHandler.SearchByName)
	cases.PATCH("/edit/:id", caseHandler.Edit)
	cases.DELETE("/delete/:id", caseHandler.Delete)
	cases.PATCH("/approve/:id", caseHandler.Approve)
	cases.PATCH("/reject/:id", caseHandler.Reject)

	jury := e.Group("/jury", jwtMiddleware)
	jury.POST("/vote/:case_id", juryHandler.Vote)
	jury.GET("/results/:case_id", juryHandler.Results)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

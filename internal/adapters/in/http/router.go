package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts the API, health and swagger routes on e together with
// request ids, request logging and OpenAPI request validation.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadOpenAPI()
	if err != nil {
		return err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return err
	}
	if err := registerSwagger(doc); err != nil {
		return err
	}

	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/orders/create", s.CreateOrder, validator)
	e.PATCH("/orders/:orderId/update-status-delivered", s.MarkDelivered, validator)
	e.GET("/orders/query", s.QueryOrders, validator)
	e.GET("/orders/:code/getOrdersStatus", s.GetOrderStatus, validator)
	e.POST("/routes/:routeId/assign-order", s.AssignOrderToRoute, validator)
	e.POST("/routes/:routeId/assign-carrier", s.AssignCarrierToRoute, validator)

	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

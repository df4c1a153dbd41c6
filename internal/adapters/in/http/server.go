package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/application/snapshot"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	userIDHeader = "X-User-ID"
	cacheHeader  = "X-Cache"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	MarkDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) (*order.Order, error)
	}
	AssignOrderToRouteHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrderToRouteCommand) (*route.Route, error)
	}
	AssignCarrierToRouteHandler interface {
		Handle(ctx context.Context, cmd commands.AssignCarrierToRouteCommand) (*route.Route, error)
	}
	GetOrderStatusHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
	}
	QueryOrdersHandler interface {
		Handle(ctx context.Context, query queries.QueryOrdersQuery) ([]snapshot.OrderView, error)
	}
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateOrder          CreateOrderHandler
	MarkDelivered        MarkDeliveredHandler
	AssignOrderToRoute   AssignOrderToRouteHandler
	AssignCarrierToRoute AssignCarrierToRouteHandler
	GetOrderStatus       GetOrderStatusHandler
	QueryOrders          QueryOrdersHandler
}

// Server translates HTTP requests into commands and queries and maps their
// results back. It holds no business rules.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// NewOrder is the create-order request body.
type NewOrder struct {
	PackageWeight          float64 `json:"packageWeight"`
	PackageDimensionWidth  float64 `json:"packageDimensionWidth"`
	PackageDimensionHeight float64 `json:"packageDimensionHeight"`
	PackageDimensionLength float64 `json:"packageDimensionLength"`
	TypeProduct            string  `json:"typeProduct"`
	OriginCityID           int64   `json:"originCityId"`
	DestinationCityID      int64   `json:"destinationCityId"`
	DestinationAddress     string  `json:"destinationAddress"`
}

type Delivery struct {
	DeliveredAt *time.Time `json:"deliveredAt"`
}

type AssignOrder struct {
	OrderID int64 `json:"orderId"`
}

type AssignCarrier struct {
	CarrierID int64 `json:"carrierId"`
}

type OrderStatus struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

// QueryOrdersParams are the optional filters of GET /orders/query.
type QueryOrdersParams struct {
	Code              *string
	StartDate         *time.Time
	EndDate           *time.Time
	AssignedCarrierID *int64
	Status            *string
}

// CreateOrder handles POST /orders/create.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var userID int64
	err := runtime.BindStyledParameterWithOptions("simple", userIDHeader, ctx.Request().Header.Get(userIDHeader),
		&userID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Required: true})
	if err != nil {
		return badRequest(ctx, "Invalid "+userIDHeader+" header")
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID,
		body.PackageWeight,
		body.PackageDimensionWidth,
		body.PackageDimensionHeight,
		body.PackageDimensionLength,
		body.TypeProduct,
		body.OriginCityID,
		body.DestinationCityID,
		body.DestinationAddress,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, snapshot.FromOrder(created))
}

// MarkDelivered handles PATCH /orders/{orderId}/update-status-delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}

	// The body is optional; echo skips binding when it is empty.
	var body Delivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, body.DeliveredAt)
	if err != nil {
		return s.respondError(ctx, err)
	}

	delivered, err := s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot.FromOrder(delivered))
}

// GetOrderStatus handles GET /orders/{code}/getOrdersStatus.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	var code string
	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"),
		&code, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return badRequest(ctx, "Invalid code")
	}

	query, err := queries.NewGetOrderStatusQuery(code)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cacheState := "MISS"
	if resp.Cached {
		cacheState = "HIT"
	}
	ctx.Response().Header().Set(cacheHeader, cacheState)

	return ctx.JSON(http.StatusOK, OrderStatus{Code: resp.Code, Status: resp.Status})
}

// QueryOrders handles GET /orders/query.
func (s *Server) QueryOrders(ctx echo.Context) error {
	params, err := bindQueryOrdersParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	filter := queries.OrdersFilter{
		StartDate:         params.StartDate,
		EndDate:           params.EndDate,
		AssignedCarrierID: params.AssignedCarrierID,
	}
	if params.Code != nil {
		filter.Code = *params.Code
	}
	if params.Status != nil {
		filter.Status = *params.Status
	}

	query, err := queries.NewQueryOrdersQuery(filter)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.handlers.QueryOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// AssignOrderToRoute handles POST /routes/{routeId}/assign-order.
func (s *Server) AssignOrderToRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "routeId")
	if err != nil {
		return badRequest(ctx, "Invalid routeId")
	}

	var body AssignOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrderToRouteCommand(routeID, body.OrderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.AssignOrderToRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot.FromRoute(updated))
}

// AssignCarrierToRoute handles POST /routes/{routeId}/assign-carrier.
func (s *Server) AssignCarrierToRoute(ctx echo.Context) error {
	routeID, err := pathID(ctx, "routeId")
	if err != nil {
		return badRequest(ctx, "Invalid routeId")
	}

	var body AssignCarrier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCarrierToRouteCommand(routeID, body.CarrierID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.handlers.AssignCarrierToRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot.FromRoute(updated))
}

func pathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name),
		&id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	return id, err
}

func bindQueryOrdersParams(ctx echo.Context) (QueryOrdersParams, error) {
	var params QueryOrdersParams
	values := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", true, false, "code", values, &params.Code); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "startDate", values, &params.StartDate); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "endDate", values, &params.EndDate); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter(
		"form", true, false, "assignedCarrierId", values, &params.AssignedCarrierID,
	); err != nil {
		return params, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", values, &params.Status); err != nil {
		return params, err
	}

	return params, nil
}

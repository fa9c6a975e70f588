// Package http exposes the fulfillment engine and its read models over a JSON
// API served by echo.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write side served by the API.
type CommandHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	PickItem            commands.PickItemCommandHandler
	VerifyItem          commands.VerifyItemCommandHandler
	VerifyItemByBarcode commands.VerifyItemByBarcodeCommandHandler
	CompletePicking     commands.CompleteOrderPickingCommandHandler
	CompletePacking     commands.CompleteOrderPackingCommandHandler
	CancelProcess       commands.CancelProcessCommandHandler
	ShipOrder           commands.ShipOrderCommandHandler
	AddProduct          commands.AddProductCommandHandler
	AdjustStock         commands.AdjustStockCommandHandler
}

// QueryHandlers groups the read side served by the API.
type QueryHandlers struct {
	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrdersByStatus   queries.GetOrdersByStatusQueryHandler
	GetPendingOrders    queries.GetPendingOrdersQueryHandler
	GetOrderMetrics     queries.GetOrderMetricsQueryHandler
	GetProduct          queries.GetProductQueryHandler
	GetAllProducts      queries.GetAllProductsQueryHandler
	GetLowStockProducts queries.GetLowStockProductsQueryHandler
	GetActivityFeed     queries.GetActivityFeedQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands          CommandHandlers
	queries           QueryHandlers
	lowStockThreshold int
	logger            *slog.Logger
}

// NewServer creates the API server. lowStockThreshold is used when a
// low-stock request does not name its own threshold.
func NewServer(cmds CommandHandlers, qs QueryHandlers, lowStockThreshold int, logger *slog.Logger) *Server {
	return &Server{
		commands:          cmds,
		queries:           qs,
		lowStockThreshold: lowStockThreshold,
		logger:            logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the health probe and the /api/v1 routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items/:productId/pick", s.PickItem)
	api.POST("/orders/:orderId/items/:productId/verify", s.VerifyItem)
	api.POST("/orders/:orderId/verify-barcode", s.VerifyItemByBarcode)
	api.POST("/orders/:orderId/complete-picking", s.CompletePicking)
	api.POST("/orders/:orderId/complete-packing", s.CompletePacking)
	api.POST("/orders/:orderId/cancel", s.CancelProcess)
	api.POST("/orders/:orderId/ship", s.ShipOrder)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.AddProduct)
	api.GET("/products/low-stock", s.GetLowStockProducts)
	api.GET("/products/barcode/:barcode", s.GetProductByBarcode)
	api.GET("/products/:productId", s.GetProduct)
	api.POST("/products/:productId/stock", s.AdjustStock)

	api.GET("/activity", s.GetActivity)
	api.GET("/metrics/orders", s.GetOrderMetrics)
}

// bind decodes the body into req and checks its validate tags.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedRequest, err.Error())
	}
	return ctx.Validate(req)
}

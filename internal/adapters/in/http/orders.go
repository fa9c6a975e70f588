package http

import (
	"fmt"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders, optionally filtered by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	var (
		orders []queries.OrderResponse
		err    error
	)

	if status := ctx.QueryParam("status"); status != "" {
		query, qErr := queries.NewGetOrdersByStatusQuery(status)
		if qErr != nil {
			return s.fail(ctx, qErr)
		}
		orders, err = s.queries.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	} else {
		orders, err = s.queries.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending - the picking queue.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.queries.GetPendingOrders.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// CreateOrder handles POST /api/v1/orders. Line prices come from the catalog.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]services.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.Customer.Name, req.Customer.Email,
		req.Customer.Address, req.Priority, req.OrderDate, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusCreated, created)
}

// PickItem handles POST /api/v1/orders/:orderId/items/:productId/pick.
func (s *Server) PickItem(ctx echo.Context) error {
	var req PickItem
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	var quantity int
	if req.Quantity != nil {
		quantity = *req.Quantity
	} else {
		lineQuantity, err := s.lineQuantity(ctx, ctx.Param("orderId"), ctx.Param("productId"))
		if err != nil {
			return s.fail(ctx, err)
		}
		quantity = lineQuantity
	}

	cmd, err := commands.NewPickItemCommand(ctx.Param("orderId"), ctx.Param("productId"), quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	picked, err := s.commands.PickItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, picked)
}

// VerifyItem handles POST /api/v1/orders/:orderId/items/:productId/verify.
func (s *Server) VerifyItem(ctx echo.Context) error {
	cmd, err := commands.NewVerifyItemCommand(ctx.Param("orderId"), ctx.Param("productId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	verified, err := s.commands.VerifyItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, verified)
}

// VerifyItemByBarcode handles POST /api/v1/orders/:orderId/verify-barcode,
// the packing station scanner.
func (s *Server) VerifyItemByBarcode(ctx echo.Context) error {
	var req VerifyBarcode
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyItemByBarcodeCommand(ctx.Param("orderId"), req.Barcode)
	if err != nil {
		return s.fail(ctx, err)
	}

	verified, err := s.commands.VerifyItemByBarcode.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, verified)
}

// CompletePicking handles POST /api/v1/orders/:orderId/complete-picking.
func (s *Server) CompletePicking(ctx echo.Context) error {
	cmd, err := commands.NewCompleteOrderPickingCommand(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	completed, err := s.commands.CompletePicking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, completed)
}

// CompletePacking handles POST /api/v1/orders/:orderId/complete-packing.
func (s *Server) CompletePacking(ctx echo.Context) error {
	cmd, err := commands.NewCompleteOrderPackingCommand(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	completed, err := s.commands.CompletePacking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, completed)
}

// CancelProcess handles POST /api/v1/orders/:orderId/cancel. Progress is kept.
func (s *Server) CancelProcess(ctx echo.Context) error {
	cmd, err := commands.NewCancelProcessCommand(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	current, err := s.commands.CancelProcess.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, current)
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	cmd, err := commands.NewShipOrderCommand(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	shipped, err := s.commands.ShipOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.orderJSON(ctx, http.StatusOK, shipped)
}

// GetOrderMetrics handles GET /api/v1/metrics/orders.
func (s *Server) GetOrderMetrics(ctx echo.Context) error {
	metrics, err := s.queries.GetOrderMetrics.Handle(ctx.Request().Context(), queries.NewGetOrderMetricsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderMetrics{Total: metrics.Total, ByStatus: metrics.ByStatus})
}

func (s *Server) lineQuantity(ctx echo.Context, orderID, productID string) (int, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return 0, err
	}
	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return 0, err
	}
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item.Quantity, nil
		}
	}
	return 0, fmt.Errorf("%w: %s in order %s", order.ErrItemNotFound, productID, orderID)
}

func (s *Server) orderJSON(ctx echo.Context, status int, o *order.Order) error {
	return ctx.JSON(status, toOrder(queries.NewOrderResponse(o)))
}

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.queries.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetProduct handles GET /api/v1/products/:productId.
func (s *Server) GetProduct(ctx echo.Context) error {
	query, err := queries.NewGetProductQuery(ctx.Param("productId"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.productJSON(ctx, query)
}

// GetProductByBarcode handles GET /api/v1/products/barcode/:barcode.
func (s *Server) GetProductByBarcode(ctx echo.Context) error {
	query, err := queries.NewGetProductByBarcodeQuery(ctx.Param("barcode"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.productJSON(ctx, query)
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var req NewProduct
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddProductCommand(req.ProductID, req.Barcode, req.Name, req.Category,
		req.Location, req.StockQuantity, req.UnitPrice.String())
	if err != nil {
		return s.fail(ctx, err)
	}

	added, err := s.commands.AddProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProduct(queries.NewProductResponse(added)))
}

// AdjustStock handles POST /api/v1/products/:productId/stock.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req StockAdjustment
	if err := bind(ctx, &req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(ctx.Param("productId"), req.Kind, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	adjusted, err := s.commands.AdjustStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(queries.NewProductResponse(adjusted)))
}

// GetLowStockProducts handles GET /api/v1/products/low-stock?threshold=.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	threshold, err := intParam(ctx, "threshold", s.lowStockThreshold)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return s.fail(ctx, err)
	}

	alerts, err := s.queries.GetLowStockProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]LowStockProduct, 0, len(alerts))
	for _, alert := range alerts {
		response = append(response, LowStockProduct{Product: toProduct(alert.Product), Severity: alert.Severity})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetActivity handles GET /api/v1/activity?limit=.
func (s *Server) GetActivity(ctx echo.Context) error {
	limit, err := intParam(ctx, "limit", 0)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetActivityFeedQuery(limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.queries.GetActivityFeed.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Activity, 0, len(entries))
	for _, e := range entries {
		response = append(response, Activity{
			ID:          e.ID,
			Name:        e.Name,
			AggregateID: e.AggregateID,
			OccurredAt:  e.OccurredAt,
			Attributes:  e.Attributes,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) productJSON(ctx echo.Context, query queries.GetProductQuery) error {
	p, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

func intParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrMalformedRequest, name)
	}
	return value, nil
}

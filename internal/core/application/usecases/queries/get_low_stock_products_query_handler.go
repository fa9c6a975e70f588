package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// LowStockProductResponse is a product below the restock threshold.
type LowStockProductResponse struct {
	Product  ProductResponse
	Severity string
}

type GetLowStockProductsQueryHandler struct {
	products ports.ProductReader
}

func NewGetLowStockProductsQueryHandler(products ports.ProductReader) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{products: products}
}

func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]LowStockProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	alerts := query.detector.Detect(products)
	responses := make([]LowStockProductResponse, 0, len(alerts))
	for _, alert := range alerts {
		responses = append(responses, LowStockProductResponse{
			Product:  NewProductResponse(alert.Product),
			Severity: alert.Severity.String(),
		})
	}
	return responses, nil
}

package queries

import (
	"errors"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery lists products whose stock is below threshold,
// critical ones first.
type GetLowStockProductsQuery struct {
	detector services.LowStockDetector
	guard    guard.ConstructorGuard
}

func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	detector, err := services.NewLowStockDetector(threshold)
	if err != nil {
		return GetLowStockProductsQuery{}, err
	}
	return GetLowStockProductsQuery{detector: detector, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

func (q GetLowStockProductsQuery) Threshold() int {
	return q.detector.Threshold()
}

package commands

import (
	"errors"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var ErrDetectLowStockCommandIsNotConstructed = errors.New(
	"DetectLowStockCommand must be created via NewDetectLowStockCommand constructor",
)

// DetectLowStockCommand scans the catalog against a restock threshold.
type DetectLowStockCommand struct { //nolint:recvcheck //using for validation
	detector services.LowStockDetector

	guard guard.ConstructorGuard
}

func NewDetectLowStockCommand(threshold int) (DetectLowStockCommand, error) {
	detector, err := services.NewLowStockDetector(threshold)
	if err != nil {
		return DetectLowStockCommand{}, err
	}
	return DetectLowStockCommand{detector: detector, guard: guard.NewConstructorGuard()}, nil
}

func (c DetectLowStockCommand) Validate() error {
	return c.guard.Validate(ErrDetectLowStockCommandIsNotConstructed)
}

func (c DetectLowStockCommand) Detector() services.LowStockDetector {
	return c.detector
}

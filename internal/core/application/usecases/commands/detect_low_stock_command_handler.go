package commands

import (
	"context"
	"sync"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
)

// DetectLowStockCommandHandler raises LowStockDetected for products whose
// severity changed since the previous scan. A product that stays critical is
// reported once; one that recovers and drops again is reported again.
type DetectLowStockCommandHandler struct {
	products  ports.ProductReader
	publisher ports.EventPublisher
	reported  *reportedSeverities
}

type reportedSeverities struct {
	mu        sync.Mutex
	byProduct map[string]product.Severity
}

func NewDetectLowStockCommandHandler(
	products ports.ProductReader,
	publisher ports.EventPublisher,
) DetectLowStockCommandHandler {
	return DetectLowStockCommandHandler{
		products:  products,
		publisher: publisher,
		reported:  &reportedSeverities{byProduct: make(map[string]product.Severity)},
	}
}

// Handle returns the events it published.
func (h DetectLowStockCommandHandler) Handle(
	ctx context.Context,
	cmd DetectLowStockCommand,
) ([]product.LowStockDetectedEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	detector := cmd.Detector()
	alerts := detector.Detect(products)

	h.reported.mu.Lock()
	defer h.reported.mu.Unlock()

	current := make(map[string]product.Severity, len(alerts))
	raised := make([]product.LowStockDetectedEvent, 0)
	for _, alert := range alerts {
		id := alert.Product.ID()
		current[id] = alert.Severity
		if h.reported.byProduct[id] != alert.Severity {
			raised = append(raised, alert.Event(detector.Threshold()))
		}
	}

	if len(raised) > 0 {
		events := make([]kernel.DomainEvent, 0, len(raised))
		for _, e := range raised {
			events = append(events, e)
		}
		if err := h.publisher.Publish(ctx, events...); err != nil {
			return nil, err
		}
	}

	h.reported.byProduct = current
	return raised, nil
}

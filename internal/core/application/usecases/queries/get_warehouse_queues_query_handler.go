package queries

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

var ErrGetWarehouseQueuesQueryHandlerIsNotConstructed = errors.New(
	"GetWarehouseQueuesQueryHandler must be created via NewGetWarehouseQueuesQueryHandler constructor",
)

// GetWarehouseQueuesQueryHandler loads all orders and partitions them into the
// four per-warehouse queues using the allocation classifier.
//
// Malformed allocations discovered during classification are logged and do not
// fail the query: one corrupt upstream record must never take down a
// warehouse's whole work view.
type GetWarehouseQueuesQueryHandler struct {
	orderRepository ports.OrderRepository
	classifier      services.AllocationClassifier
	logger          *slog.Logger
}

// NewGetWarehouseQueuesQueryHandler creates a handler with the given order
// repository and logger. Both dependencies are required.
func NewGetWarehouseQueuesQueryHandler(
	orderRepository ports.OrderRepository,
	logger *slog.Logger,
) (*GetWarehouseQueuesQueryHandler, error) {
	if orderRepository == nil {
		return nil, errors.New("orderRepository is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &GetWarehouseQueuesQueryHandler{
		orderRepository: orderRepository,
		classifier:      services.NewAllocationClassifier(),
		logger:          logger.With("component", "get_warehouse_queues_query_handler"),
	}, nil
}

// Handle classifies every stored order from the perspective of the query's
// warehouse and returns the resulting queues.
func (h *GetWarehouseQueuesQueryHandler) Handle(
	ctx context.Context, query GetWarehouseQueuesQuery,
) (services.WarehouseQueues, error) {
	if err := query.Validate(); err != nil {
		return services.WarehouseQueues{}, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return services.WarehouseQueues{}, err
	}

	queues, err := h.classifier.Classify(orders, query.WarehouseID())
	if err != nil {
		return services.WarehouseQueues{}, err
	}

	for _, anomaly := range queues.Anomalies {
		h.logger.Warn("skipped malformed allocation",
			"warehouse_id", query.WarehouseID().String(),
			"line_item_id", anomaly.LineItemID,
			"param", anomaly.ParamName,
		)
	}

	return queues, nil
}

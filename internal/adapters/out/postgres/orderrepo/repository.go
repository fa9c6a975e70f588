package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker ports.AggregateTracker
	lock    bool
}

// NewGormOrderRepository creates a repository bound to a unit of work. Get
// locks the order row until the surrounding transaction ends.
func NewGormOrderRepository(db *gorm.DB, tracker ports.AggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		lock:    true,
	}
}

// NewGormOrderReader creates the read side used by queries. It never locks.
func NewGormOrderReader(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.CheckInvariants(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", order.ErrOrderExists, aggregate.ID())
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update stores the order status and the status of every line. Everything
// else about an order is fixed at intake.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.CheckInvariants(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.ID)
	}

	for _, item := range dto.Items {
		err := db.Model(&ItemDTO{}).
			Where("order_id = ? AND product_id = ?", item.OrderID, item.ProductID).
			Update("status", item.Status).Error
		if err != nil {
			return err
		}
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by id with its lines in order.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	db := r.db.WithContext(ctx)
	if r.lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.Preload("Items", orderedItems).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns every order in intake order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items", orderedItems).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// GetByStatus returns the orders in any of statuses, in intake order.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("status IN ?", names).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

package productrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker ports.AggregateTracker
	lock    bool
}

// NewGormProductRepository creates a repository bound to a unit of work. Get
// locks the product row until the surrounding transaction ends.
func NewGormProductRepository(db *gorm.DB, tracker ports.AggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
		lock:    true,
	}
}

// NewGormProductReader creates the read side used by queries. It never locks.
func NewGormProductReader(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product. The primary key and the unique barcode index
// reject duplicates.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: id %s or barcode %s", product.ErrDuplicateProduct, dto.ID, dto.Barcode)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update stores the stock level, the only mutable attribute of a product.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND barcode = ?", dto.ID, dto.Barcode).
		Update("stock_quantity", dto.StockQuantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", dto.ID)
	}

	r.track(aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	db := r.db.WithContext(ctx)
	if r.lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.first(db, "id", "productId", id)
}

// GetByBarcode never locks; the caller locks by id when it needs to write.
func (r *GormProductRepository) GetByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	return r.first(r.db.WithContext(ctx), "barcode", "barcode", barcode)
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *GormProductRepository) first(db *gorm.DB, column, param, value string) (*product.Product, error) {
	var dto ProductDTO
	if err := db.First(&dto, column+" = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormProductRepository) track(aggregate *product.Product) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

// Package productrepo persists the catalog with GORM.
package productrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Location is stored in its canonical bin code form, e.g. "A-12-3".
type ProductDTO struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Barcode       string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Category      string          `gorm:"type:varchar(255);not null"`
	Location      string          `gorm:"type:varchar(16);not null"`
	StockQuantity int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID(),
		Barcode:       p.Barcode(),
		Name:          p.Name(),
		Category:      p.Category(),
		Location:      p.Location().String(),
		StockQuantity: p.StockQuantity(),
		UnitPrice:     p.UnitPrice().Decimal(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	location, err := kernel.ParseLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		dto.ID,
		dto.Barcode,
		dto.Name,
		dto.Category,
		location,
		dto.StockQuantity,
		price,
	)
}

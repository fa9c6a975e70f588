// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Seq keeps intake order; the status column is indexed for the picking queue.
type OrderDTO struct {
	ID          string          `gorm:"type:varchar(64);primaryKey"`
	Seq         int64           `gorm:"autoIncrement;uniqueIndex"`
	Customer    CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	OrderDate   time.Time       `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	Priority    string          `gorm:"type:varchar(16);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Items       []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the buyer block embedded in the orders table.
type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:text;not null"`
}

// ItemDTO is one order line. Position preserves the line order of the order.
type ItemDTO struct {
	OrderID   string          `gorm:"type:varchar(64);primaryKey"`
	ProductID string          `gorm:"type:varchar(64);primaryKey"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status    string          `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Position:  i,
			Quantity:  item.Quantity(),
			Price:     item.Price().Decimal(),
			Status:    item.Status().String(),
		})
	}

	return OrderDTO{
		ID: o.ID(),
		Customer: CustomerDTO{
			Name:    o.Customer().Name(),
			Email:   o.Customer().Email(),
			Address: o.Customer().Address(),
		},
		OrderDate:   o.OrderDate(),
		Status:      o.Status().String(),
		Priority:    o.Priority().String(),
		TotalAmount: o.TotalAmount().Decimal(),
		Items:       items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which rejects rows whose
// stored status or total disagrees with the lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Email, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	priority, err := order.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		itemStatus, statusErr := order.ParseItemStatus(itemDTO.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		item, itemErr := order.RestoreItem(itemDTO.ProductID, itemDTO.Quantity, price, itemStatus)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, customer, dto.OrderDate.UTC(), priority, items, status)
}

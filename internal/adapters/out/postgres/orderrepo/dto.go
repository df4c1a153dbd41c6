// Package orderrepo persists orders and reads the cities they travel between.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO is the orders table. Code carries a unique index so that a
// generated code can never be stored twice.
type OrderDTO struct {
	ID                     int64   `gorm:"primaryKey;autoIncrement"`
	Code                   string  `gorm:"size:16;not null;uniqueIndex"`
	UserID                 int64   `gorm:"not null;index"`
	PackageWeight          float64 `gorm:"not null"`
	PackageDimensionWidth  float64 `gorm:"not null"`
	PackageDimensionHeight float64 `gorm:"not null"`
	PackageDimensionLength float64 `gorm:"not null"`
	TypeProduct            string  `gorm:"size:128"`
	OriginCityID           int64   `gorm:"not null"`
	DestinationCityID      int64   `gorm:"not null"`
	DestinationAddress     string  `gorm:"size:255;not null"`
	Status                 string  `gorm:"size:32;not null;index"`
	EstimatedDeliveryTime  *time.Time
	DeliveredAt            *time.Time
	RouteID                *int64 `gorm:"index"`
	CreatedAt              time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CityDTO is a read-only reference table.
type CityDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:128;not null"`
}

func (CityDTO) TableName() string {
	return "cities"
}

// PackageOf rebuilds the package stored on an order row.
func PackageOf(dto OrderDTO) (kernel.Package, error) {
	return kernel.NewPackage(
		dto.PackageWeight,
		dto.PackageDimensionWidth,
		dto.PackageDimensionHeight,
		dto.PackageDimensionLength,
	)
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     o.ID(),
		Code:                   o.Code(),
		UserID:                 o.UserID(),
		PackageWeight:          o.Package().Weight(),
		PackageDimensionWidth:  o.Package().Width(),
		PackageDimensionHeight: o.Package().Height(),
		PackageDimensionLength: o.Package().Length(),
		TypeProduct:            o.ProductType(),
		OriginCityID:           o.OriginCityID(),
		DestinationCityID:      o.DestinationCityID(),
		DestinationAddress:     o.DestinationAddress(),
		Status:                 o.Status().String(),
		EstimatedDeliveryTime:  o.EstimatedDeliveryTime(),
		DeliveredAt:            o.DeliveredAt(),
		RouteID:                o.RouteID(),
		CreatedAt:              o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	pkg, err := PackageOf(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Record{
		ID:                    dto.ID,
		Code:                  dto.Code,
		UserID:                dto.UserID,
		Package:               pkg,
		ProductType:           dto.TypeProduct,
		OriginCityID:          dto.OriginCityID,
		DestinationCityID:     dto.DestinationCityID,
		DestinationAddress:    dto.DestinationAddress,
		Status:                order.Status(dto.Status),
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		DeliveredAt:           dto.DeliveredAt,
		RouteID:               dto.RouteID,
		CreatedAt:             dto.CreatedAt,
	})
}

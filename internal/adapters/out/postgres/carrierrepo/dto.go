// Package carrierrepo reads and updates carrier availability. Carriers are
// users with the carrier role.
package carrierrepo

import (
	"logistics/internal/core/domain/model/carrier"
)

type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:128;not null"`
	Role      string `gorm:"size:32;not null;index"`
	Available bool   `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*carrier.Carrier, error) {
	return carrier.RestoreCarrier(dto.ID, dto.Name, dto.Role, dto.Available)
}

// Package customerrepo maps Customer aggregates to the customers table.
package customerrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers row. The row doubles as the per-customer lock
// taken by cart mutations and checkout.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Phone     string
	Address   string
	CreatedAt time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// FromDomain maps a customer to its row.
func FromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address), nil
}

// Package customerrepo implements order-owning customer persistence with GORM.
package customerrepo

import (
	"time"

	"pizzabot/internal/core/domain/model/customer"
)

// CustomerDTO maps the customer entity to the customers table. The phone
// column is nullable; an empty phone is stored as NULL.
type CustomerDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Phone     *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName overrides GORM's naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	var phone *string
	if p := c.Phone(); p != "" {
		phone = &p
	}

	return CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Phone:     phone,
		CreatedAt: c.CreatedAt(),
	}
}

package entity

import "time"

// Supplier proveedor de productos.
type Supplier struct {
	ID          string
	Name        string
	RFC         string
	ContactName string
	Email       string
	Phone       string
	CreditTerms string
	Street      string
	City        string
	State       string
	ZipCode     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

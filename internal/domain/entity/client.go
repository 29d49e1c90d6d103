package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client cliente comercial (empresa compradora).
// TaxRate es la tasa de IVA del régimen del cliente: 0.08 en franja
// fronteriza, 0.16 régimen general. Alimenta el motor de precios.
type Client struct {
	ID          string
	RazonSocial string
	RFC         string
	Email       string
	Phone       string
	ContactName string
	TaxRate     decimal.Decimal
	SalesRepID  string // usuario SALES responsable de la cuenta
	CreditTerms string // Contado, Neto 15 Dias, Neto 30 Dias
	Street      string
	City        string
	State       string
	ZipCode     string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body para POST /api/clients.
// TaxRate: 0.08 (franja fronteriza) o 0.16 (régimen general); si va en cero
// se aplica el default de ajustes.
type CreateClientRequest struct {
	RazonSocial string          `json:"razon_social"`
	RFC         string          `json:"rfc"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	ContactName string          `json:"contact_name,omitempty"`
	TaxRate     decimal.Decimal `json:"tax_rate,omitempty"`
	SalesRepID  string          `json:"sales_rep_id,omitempty"`
	CreditTerms string          `json:"credit_terms,omitempty"`
	Street      string          `json:"street,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id (campos opcionales).
type UpdateClientRequest struct {
	RazonSocial *string          `json:"razon_social,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	ContactName *string          `json:"contact_name,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	SalesRepID  *string          `json:"sales_rep_id,omitempty"`
	CreditTerms *string          `json:"credit_terms,omitempty"`
	Street      *string          `json:"street,omitempty"`
	City        *string          `json:"city,omitempty"`
	State       *string          `json:"state,omitempty"`
	ZipCode     *string          `json:"zip_code,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID          string          `json:"id"`
	RazonSocial string          `json:"razon_social"`
	RFC         string          `json:"rfc"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	ContactName string          `json:"contact_name,omitempty"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	SalesRepID  string          `json:"sales_rep_id,omitempty"`
	CreditTerms string          `json:"credit_terms,omitempty"`
	Street      string          `json:"street,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	ZipCode     string          `json:"zip_code,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ClientListResponse listado paginado.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

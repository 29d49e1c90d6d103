package entity

import "time"

// Tipos de notificación.
const (
	NotificationPaymentReceived = "PAYMENT_RECEIVED"
	NotificationQuoteFinalized  = "QUOTE_FINALIZED"
)

// Notification aviso dirigido a un usuario (campanita del dashboard).
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Href      string // destino al hacer click, ej. /dashboard/sales/orders/<id>
	Type      string
	Read      bool
	CreatedAt time.Time
}

package dto

import "time"

// NotificationResponse aviso en la campanita del dashboard.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Href      string    `json:"href,omitempty"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

package repository

import "github.com/norteindustrial/norte-erp/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/norteindustrial/norte-erp/internal/domain/entity"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, href, type, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.Message, nullIfEmpty(notification.Href),
		notification.Type, notification.Read, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser lista las notificaciones de un usuario, recientes primero.
func (r *NotificationRepo) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, href, type, read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var href *string
		err := rows.Scan(&n.ID, &n.UserID, &n.Message, &href, &n.Type, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if href != nil {
			n.Href = *href
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca como leída una notificación del usuario. El filtro por
// user_id evita marcar avisos ajenos.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

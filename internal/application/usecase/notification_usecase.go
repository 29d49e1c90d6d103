package usecase

import (
	"github.com/norteindustrial/norte-erp/internal/application/dto"
	"github.com/norteindustrial/norte-erp/internal/domain/repository"
)

// NotificationUseCase avisos del usuario (campanita del dashboard).
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// ListMine lista los avisos del usuario autenticado, recientes primero.
func (uc *NotificationUseCase) ListMine(userID string, page dto.PageRequest) ([]dto.NotificationResponse, error) {
	page.DefaultPage()
	notifs, err := uc.notifRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Href:      n.Href,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca un aviso como leído. El filtro por usuario evita marcar
// avisos ajenos.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.notifRepo.MarkRead(id, userID)
}

package notification

import (
	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/notification"
)

type notificationResponse struct {
	NotificationID uuid.UUID                    `json:"notificationId"`
	Type           notification.Type            `json:"type"`
	CreatedAt      int64                        `json:"createdAt"`
	ViewedAt       *int64                       `json:"viewedAt,omitempty"`
	Data           *notification.RelapsePayload `json:"data,omitempty"`
}

func toResponse(n *notification.Notification) notificationResponse {
	resp := notificationResponse{
		NotificationID: n.ID,
		Type:           n.Type,
		CreatedAt:      n.CreatedAt.UnixMilli(),
		Data:           n.Relapse,
	}

	if n.ViewedAt != nil {
		ms := n.ViewedAt.UnixMilli()
		resp.ViewedAt = &ms
	}

	return resp
}

func toResponseList(notifications []*notification.Notification) []notificationResponse {
	resp := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = toResponse(n)
	}

	return resp
}

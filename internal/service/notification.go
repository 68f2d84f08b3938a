package service

import (
	"monateg/internal/models"
	"monateg/internal/repository"
	"monateg/internal/ws"
)

// NotificationService persists notifications and pushes them to any live
// WebSocket connections the recipient has open.
type NotificationService struct {
	repo *repository.NotificationRepository
	hub  *ws.Hub
}

func NewNotificationService(repo *repository.NotificationRepository, hub *ws.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

func (s *NotificationService) Create(userID uint64, title, message string) (*models.Notification, error) {
	n := &models.Notification{UserID: userID, Title: title, Message: message}
	if err := s.repo.Create(n); err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(userID, map[string]interface{}{
			"type":       "notification",
			"id":         n.ID,
			"title":      n.Title,
			"message":    n.Message,
			"created_at": n.CreatedAt,
		})
	}
	return n, nil
}

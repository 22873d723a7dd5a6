package handlers

import (
	"log"
	"net/http"

	"ukmprhub/internal/models"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	notifications, err := h.NotificationService.List(r.Context(), member.ID)
	if err != nil {
		log.Printf("Failed to list notifications of member %d: %v", member.ID, err)
		notifications = []models.Notification{}
	}
	writeSuccess(w, notifications, http.StatusOK)
}

func (h *Handlers) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	writeDone(w, r, h.NotificationService.MarkAllRead(r.Context(), member.ID))
}

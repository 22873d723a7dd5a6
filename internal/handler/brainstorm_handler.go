package handlers

import (
	"log"
	"net/http"

	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

type TextResponse struct {
	Text string `json:"text"`
}

func (h *Handlers) BrainstormHistory(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	history, err := h.BrainstormService.History(r.Context(), member.ID)
	if err != nil {
		log.Printf("Failed to load brainstorm history of member %d: %v", member.ID, err)
		history = []models.BrainstormChat{}
	}
	writeSuccess(w, history, http.StatusOK)
}

func (h *Handlers) BrainstormSave(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	var req service.SaveChatInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.BrainstormService.Save(r.Context(), member.ID, req.Messages))
}

func (h *Handlers) BrainstormInitiate(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	var req service.InitiateInput
	if !h.decode(w, r, &req) {
		return
	}

	text, err := h.BrainstormService.Initiate(r.Context(), member.ID, req)
	writeText(w, r, text, err)
}

func (h *Handlers) BrainstormMessage(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	var req service.MessageInput
	if !h.decode(w, r, &req) {
		return
	}

	text, err := h.BrainstormService.Message(r.Context(), member.ID, req.Message)
	writeText(w, r, text, err)
}

func writeText(w http.ResponseWriter, r *http.Request, text string, err error) {
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, TextResponse{Text: text}, http.StatusOK)
}

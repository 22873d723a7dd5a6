package handlers

import "net/http"

// The AI content endpoints always answer 200; the service substitutes a
// local fallback when the provider fails.

func (h *Handlers) AIGreeting(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, TextResponse{Text: h.AI.Greeting(r.Context())}, http.StatusOK)
}

func (h *Handlers) AITips(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, TextResponse{Text: h.AI.Tips(r.Context())}, http.StatusOK)
}

func (h *Handlers) AINews(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.AI.News(r.Context()), http.StatusOK)
}

func (h *Handlers) AIStatus(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.AI.Status(r.Context()), http.StatusOK)
}

package handlers

import "net/http"

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.HealthService.Check(r.Context()), http.StatusOK)
}

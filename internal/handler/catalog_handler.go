package handlers

import (
	"log"
	"net/http"

	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

type DownloadResponse struct {
	Success   bool `json:"success"`
	Downloads int  `json:"downloads"`
}

// Catalog lists are public and degrade to an empty array.

func (h *Handlers) GetResearch(w http.ResponseWriter, r *http.Request) {
	items, err := h.CatalogService.ListResearch(r.Context())
	if err != nil {
		log.Printf("Failed to list research: %v", err)
		items = []models.Research{}
	}
	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) CreateResearch(w http.ResponseWriter, r *http.Request) {
	var req service.ResearchInput
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.CatalogService.CreateResearch(r.Context(), req)
	writeCreated(w, r, id, err)
}

func (h *Handlers) UpdateResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid research id", http.StatusBadRequest)
		return
	}
	var req service.ResearchInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.CatalogService.UpdateResearch(r.Context(), id, req))
}

func (h *Handlers) DeleteResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid research id", http.StatusBadRequest)
		return
	}
	writeDone(w, r, h.CatalogService.DeleteResearch(r.Context(), id))
}

func (h *Handlers) DownloadResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid research id", http.StatusBadRequest)
		return
	}

	downloads, err := h.CatalogService.DownloadResearch(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, DownloadResponse{Success: true, Downloads: downloads}, http.StatusOK)
}

func (h *Handlers) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.CatalogService.ListAnnouncements(r.Context())
	if err != nil {
		log.Printf("Failed to list announcements: %v", err)
		items = []models.Announcement{}
	}
	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req service.AnnouncementInput
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.CatalogService.CreateAnnouncement(r.Context(), req)
	writeCreated(w, r, id, err)
}

func (h *Handlers) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid announcement id", http.StatusBadRequest)
		return
	}
	var req service.AnnouncementInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.CatalogService.UpdateAnnouncement(r.Context(), id, req))
}

func (h *Handlers) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid announcement id", http.StatusBadRequest)
		return
	}
	writeDone(w, r, h.CatalogService.DeleteAnnouncement(r.Context(), id))
}

func (h *Handlers) GetMentors(w http.ResponseWriter, r *http.Request) {
	items, err := h.CatalogService.ListMentors(r.Context())
	if err != nil {
		log.Printf("Failed to list mentors: %v", err)
		items = []models.Mentor{}
	}
	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) CreateMentor(w http.ResponseWriter, r *http.Request) {
	var req service.MentorInput
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.CatalogService.CreateMentor(r.Context(), req)
	writeCreated(w, r, id, err)
}

func (h *Handlers) UpdateMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid mentor id", http.StatusBadRequest)
		return
	}
	var req service.MentorInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.CatalogService.UpdateMentor(r.Context(), id, req))
}

func (h *Handlers) DeleteMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid mentor id", http.StatusBadRequest)
		return
	}
	writeDone(w, r, h.CatalogService.DeleteMentor(r.Context(), id))
}

func (h *Handlers) GetBanners(w http.ResponseWriter, r *http.Request) {
	items, err := h.CatalogService.ListBanners(r.Context())
	if err != nil {
		log.Printf("Failed to list banners: %v", err)
		items = []models.Banner{}
	}
	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req service.BannerInput
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.CatalogService.CreateBanner(r.Context(), req)
	writeCreated(w, r, id, err)
}

func (h *Handlers) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid banner id", http.StatusBadRequest)
		return
	}
	var req service.BannerInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.CatalogService.UpdateBanner(r.Context(), id, req))
}

func (h *Handlers) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid banner id", http.StatusBadRequest)
		return
	}
	writeDone(w, r, h.CatalogService.DeleteBanner(r.Context(), id))
}

func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.CatalogService.ListStats(r.Context())
	if err != nil {
		log.Printf("Failed to list stats: %v", err)
		items = []models.Stat{}
	}
	writeSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetStatDetails(w http.ResponseWriter, r *http.Request) {
	details := []models.StatDetail{}
	if id, ok := pathID(r); ok {
		found, err := h.CatalogService.StatDetails(r.Context(), id)
		if err != nil {
			log.Printf("Failed to load details of stat %d: %v", id, err)
		} else if found != nil {
			details = found
		}
	}
	writeSuccess(w, details, http.StatusOK)
}

func (h *Handlers) CreateStat(w http.ResponseWriter, r *http.Request) {
	var req service.StatInput
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.CatalogService.CreateStat(r.Context(), req)
	writeCreated(w, r, id, err)
}

func (h *Handlers) UpdateStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid stat id", http.StatusBadRequest)
		return
	}
	var req service.StatInput
	if !h.decode(w, r, &req) {
		return
	}
	writeDone(w, r, h.CatalogService.UpdateStat(r.Context(), id, req))
}

func (h *Handlers) DeleteStat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid stat id", http.StatusBadRequest)
		return
	}
	writeDone(w, r, h.CatalogService.DeleteStat(r.Context(), id))
}

func writeCreated(w http.ResponseWriter, r *http.Request, id int64, err error) {
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, CreatedResponse{Success: true, ID: id}, http.StatusCreated)
}

func writeDone(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

package handlers

import (
	"log"
	"net/http"

	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

type LikeRequest struct {
	Emoji string `json:"emoji" validate:"max=16"`
}

type LikeResponse struct {
	Success bool `json:"success"`
	Liked   bool `json:"liked"`
}

type VoteRequest struct {
	OptionIndex *int `json:"optionIndex" validate:"required,gte=0"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// GetPosts never fails for the client: a broken feed renders as empty.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FeedService.List(r.Context())
	if err != nil {
		log.Printf("Failed to list posts: %v", err)
		posts = []models.Post{}
	}
	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	posts, err := h.FeedService.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list posts of member %d: %v", userID, err)
		posts = []models.Post{}
	}
	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	var req service.PostInput
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.FeedService.Create(r.Context(), member, req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, CreatedResponse{Success: true, ID: id}, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req service.PostInput
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.FeedService.Edit(r.Context(), member, postID, req); err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.FeedService.Delete(r.Context(), member, postID); err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req LikeRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	liked, err := h.FeedService.ToggleLike(r.Context(), member, postID, req.Emoji)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, LikeResponse{Success: true, Liked: liked}, http.StatusOK)
}

func (h *Handlers) VotePost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req VoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.FeedService.Vote(r.Context(), member, postID, *req.OptionIndex); err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) CommentPost(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())
	postID, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.FeedService.Comment(r.Context(), member, postID, req.Content)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, CreatedResponse{Success: true, ID: id}, http.StatusCreated)
}

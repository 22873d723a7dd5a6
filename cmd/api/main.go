package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"ukmprhub/cmd/app"
	"ukmprhub/internal/config"
	handlers "ukmprhub/internal/handler"
	"ukmprhub/internal/middleware"
	"ukmprhub/internal/models"
	"ukmprhub/internal/worker"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)
	router := newRouter(handler, cfg)

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(services.Auth, cfg.Session),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
		middleware.RecoverMiddleware,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker.NewSessionSweeper(repo.Session, cfg.Session.SweepInterval).Start(ctx)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func newRouter(h *handlers.Handlers, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuthMiddleware(fn)
	}
	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return middleware.RoleMiddleware(models.RoleAdmin)(fn)
	}

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/public-register", h.PublicRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.Handle("/profile/me", authed(h.UpdateProfile)).Methods(http.MethodPut)

	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.Handle("/posts", authed(h.CreatePost)).Methods(http.MethodPost)
	api.HandleFunc("/posts/user/{id}", h.GetUserPosts).Methods(http.MethodGet)
	api.Handle("/posts/{id}", authed(h.UpdatePost)).Methods(http.MethodPut)
	api.Handle("/posts/{id}", authed(h.DeletePost)).Methods(http.MethodDelete)
	api.Handle("/posts/{id}/like", authed(h.LikePost)).Methods(http.MethodPost)
	api.Handle("/posts/{id}/vote", authed(h.VotePost)).Methods(http.MethodPost)
	api.Handle("/posts/{id}/comments", authed(h.CommentPost)).Methods(http.MethodPost)

	api.HandleFunc("/members", h.GetMembers).Methods(http.MethodGet)
	api.Handle("/members", adminOnly(h.CreateMember)).Methods(http.MethodPost)
	api.HandleFunc("/members/username/{username}", h.GetMemberByUsername).Methods(http.MethodGet)
	api.HandleFunc("/members/{id}", h.GetMember).Methods(http.MethodGet)
	api.Handle("/members/{id}", adminOnly(h.UpdateMember)).Methods(http.MethodPut)
	api.Handle("/members/{id}", adminOnly(h.DeleteMember)).Methods(http.MethodDelete)

	api.HandleFunc("/research", h.GetResearch).Methods(http.MethodGet)
	api.Handle("/research", authed(h.CreateResearch)).Methods(http.MethodPost)
	api.HandleFunc("/research/{id}/download", h.DownloadResearch).Methods(http.MethodPost)
	api.Handle("/research/{id}", adminOnly(h.UpdateResearch)).Methods(http.MethodPut)
	api.Handle("/research/{id}", adminOnly(h.DeleteResearch)).Methods(http.MethodDelete)

	api.HandleFunc("/announcements", h.GetAnnouncements).Methods(http.MethodGet)
	api.Handle("/announcements", authed(h.CreateAnnouncement)).Methods(http.MethodPost)
	api.Handle("/announcements/{id}", adminOnly(h.UpdateAnnouncement)).Methods(http.MethodPut)
	api.Handle("/announcements/{id}", adminOnly(h.DeleteAnnouncement)).Methods(http.MethodDelete)

	api.HandleFunc("/mentors", h.GetMentors).Methods(http.MethodGet)
	api.Handle("/mentors", adminOnly(h.CreateMentor)).Methods(http.MethodPost)
	api.Handle("/mentors/{id}", adminOnly(h.UpdateMentor)).Methods(http.MethodPut)
	api.Handle("/mentors/{id}", adminOnly(h.DeleteMentor)).Methods(http.MethodDelete)

	api.HandleFunc("/banners", h.GetBanners).Methods(http.MethodGet)
	api.Handle("/banners", adminOnly(h.CreateBanner)).Methods(http.MethodPost)
	api.Handle("/banners/{id}", adminOnly(h.UpdateBanner)).Methods(http.MethodPut)
	api.Handle("/banners/{id}", adminOnly(h.DeleteBanner)).Methods(http.MethodDelete)

	api.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet)
	api.Handle("/stats", adminOnly(h.CreateStat)).Methods(http.MethodPost)
	api.HandleFunc("/stats/{id}/details", h.GetStatDetails).Methods(http.MethodGet)
	api.Handle("/stats/{id}", adminOnly(h.UpdateStat)).Methods(http.MethodPut)
	api.Handle("/stats/{id}", adminOnly(h.DeleteStat)).Methods(http.MethodDelete)

	api.Handle("/notifications", authed(h.GetNotifications)).Methods(http.MethodGet)
	api.Handle("/notifications/read", authed(h.MarkNotificationsRead)).Methods(http.MethodPut)

	api.Handle("/brainstorm/history", authed(h.BrainstormHistory)).Methods(http.MethodGet)
	api.Handle("/brainstorm/save", authed(h.BrainstormSave)).Methods(http.MethodPost)
	api.Handle("/brainstorm/initiate", authed(h.BrainstormInitiate)).Methods(http.MethodPost)
	api.Handle("/brainstorm/message", authed(h.BrainstormMessage)).Methods(http.MethodPost)

	api.HandleFunc("/ai/greeting", h.AIGreeting).Methods(http.MethodGet)
	api.HandleFunc("/ai/tips", h.AITips).Methods(http.MethodGet)
	api.HandleFunc("/ai/news", h.AINews).Methods(http.MethodGet)
	api.HandleFunc("/ai/status", h.AIStatus).Methods(http.MethodGet)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "not found", http.StatusNotFound)
	})

	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(handlers.StaticHandler(cfg.StaticDir))
	}

	return router
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"

	"hn-radar/cmd/api/router"
	"hn-radar/config"
	"hn-radar/db"
	"hn-radar/hackernews"
	"hn-radar/logger"
	"hn-radar/repositories"
	"hn-radar/services"
)

// @title           hn-radar API
// @version         1.0
// @description     Live and archived Hacker News top stories
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	client := hackernews.NewClient(cfg.HackerNews.BaseURL, time.Duration(cfg.HackerNews.RequestTimeoutSeconds)*time.Second)
	liveSvc := services.NewStoryService(client, cfg.HackerNews.TopStoriesLimit)

	storyRepo := repositories.NewStoryRepository(db.Database())
	textRepo := repositories.NewStoryTextRepository(db.Database())
	archiveSvc := services.NewArchiveService(storyRepo, textRepo)

	r := router.New(liveSvc, archiveSvc)

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "X-Request-Id"},
	}).Handler(r)

	logger.Log.Infof("api listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, corsHandler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
	}
}

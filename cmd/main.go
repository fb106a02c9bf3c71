package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	gommon "github.com/labstack/gommon/log"

	"carichat/pkg/caricature"
	"carichat/pkg/character"
	"carichat/pkg/inference"
	"carichat/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	inf, err := inference.New(inference.Config{
		Provider:      os.Getenv("LLM_PROVIDER"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		OllamaBaseURL: os.Getenv("OLLAMA_BASE_URL"),
		OllamaModel:   os.Getenv("OLLAMA_MODEL"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
	})
	if err != nil {
		log.Fatal("failed to configure language-model provider", "error", err)
	}

	imageDir := "images/caricatures"
	replicateToken := os.Getenv("REPLICATE_API_TOKEN")
	localSDURL := os.Getenv("SD_WEBUI_URL")
	if localSDURL == "" {
		localSDURL = "http://localhost:7860"
	}

	characters := character.NewService(inf)
	images := caricature.NewChainFromConfig(caricature.Config{
		ReplicateToken: replicateToken,
		LocalBaseURL:   localSDURL,
		ImageDir:       imageDir,
	})

	srv := server.NewServer(characters, images, server.Config{
		ImageDir:            imageDir,
		ReplicateConfigured: replicateToken != "",
		LocalSDURL:          localSDURL,
	})
	srv.Echo.Logger.SetLevel(gommon.INFO)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("shutdown failed", "error", err)
		}
		close(finishedShutDown)
	}()

	log.Info("server listening", "addr", addr)
	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
	}
	<-finishedShutDown
}

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fibberd/fibberd/internal/common/scheduler"
	"github.com/fibberd/fibberd/internal/handlers/ws"
	"github.com/fibberd/fibberd/internal/questions"
	"github.com/fibberd/fibberd/internal/services/session"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		port         = flag.Int("port", getEnvAsInt("PORT", 3000), "listen port")
		webclientDir = flag.String("webclient", getEnv("WEBCLIENT_DIR", ""), "directory of the static webclient to serve")
		questionFile = flag.String("questions", getEnv("QUESTIONS_FILE", "questions.yaml"), "path to the question file")
	)
	flag.Parse()

	quiz, err := questions.Load(*questionFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", *questionFile).Msg("failed to load questions")
	}
	log.Info().Int("questions", len(quiz)).Str("path", *questionFile).Msg("questions loaded")

	// Wire the hub, engine and handler
	hub := ws.NewHub(ws.DefaultHubConfig())

	sessionSvc, err := session.New(&session.Config{
		Questions: quiz,
		Emitter:   hub,
		Scheduler: scheduler.New(nil),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session service")
	}

	handler, err := ws.New(&ws.Config{
		Session: sessionSvc,
		Hub:     hub,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create websocket handler")
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	if *webclientDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(*webclientDir)))
		log.Info().Str("dir", *webclientDir).Msg("serving webclient")
	}

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(*port),
		Handler: cors.AllowAll().Handler(mux),
	}

	go func() {
		log.Info().Int("port", *port).Msg("question game server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

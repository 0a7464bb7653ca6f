package main

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tomz197/skyquiz/internal/config"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/state"
	"github.com/tomz197/skyquiz/internal/transport/ws"
)

const (
	defaultHost          = "0.0.0.0"
	defaultPort          = "8080"
	defaultHighScoreFile = "/app/data/scores.json"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	origins := config.GetEnv("WEB_ORIGINS", "")

	hub := server.NewHub(server.Options{
		Logger:     logger,
		HighScores: state.NewFileStore(config.GetEnv("SKYQUIZ_HIGHSCORE_FILE", defaultHighScoreFile)),
	})
	hubCtx, cancelHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	wsOpts := []ws.Option{ws.WithLogger(logger)}
	if origins != "" {
		wsOpts = append(wsOpts, ws.WithOriginPatterns(strings.Split(origins, ",")...))
	}
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.Handle("GET /ws", ws.NewHandler(hub, wsOpts...))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down, notifying players", "players", hub.Count())
	hub.Shutdown(10 * time.Second)
	cancelHub()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

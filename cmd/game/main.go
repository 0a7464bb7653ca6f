package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/skyquiz/internal/audio"
	"github.com/tomz197/skyquiz/internal/config"
	"github.com/tomz197/skyquiz/internal/loop/client"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/state"
)

const defaultHighScoreFile = ".skyquiz_scores.json"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyquiz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game; logs go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SKYQUIZ_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	port := audio.Port(audio.Nop{})
	if config.GetEnvBool("SKYQUIZ_AUDIO", true) {
		synth := audio.NewSynth(logger, 0.4)
		defer synth.Close()
		port = synth
	}

	hub := server.NewHub(server.Options{
		Logger:     logger,
		HighScores: state.NewFileStore(config.GetEnv("SKYQUIZ_HIGHSCORE_FILE", defaultHighScoreFile)),
		Audio:      func() audio.Port { return port },
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.NewClient(hub, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: os.Getenv("USER"),
		Logger:   logger,
	})
	if err := c.Run(); err != nil {
		logger.Error("game error", "err", err)
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

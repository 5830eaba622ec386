package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bz888/sentiment/internal/api/server"
	"github.com/bz888/sentiment/internal/config"
	"github.com/bz888/sentiment/internal/logger"
	"github.com/bz888/sentiment/internal/ui"
)

func init() {
	config.Init()
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer logger.Close()

	if config.Headless {
		logger.InitLogger(config.Dev, config.LogPath, nil)
		server.Init()
		if err := server.Run(ctx, config.Addr); err != nil {
			log.Fatal("Error starting server: ", err)
		}
		return
	}

	ui.Init()
	debugConsole, err := ui.GetDebugConsole()
	if err != nil {
		log.Fatal(err)
	}

	logger.InitLogger(config.Dev, config.LogPath, debugConsole)
	server.Init()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := server.Run(ctx, config.Addr); err != nil {
			server.LocalLogger.Error("Server stopped:", err)
		}
	}()

	if err := ui.Run(ctx, config.ServerURL); err != nil {
		log.Fatal(err)
	}
}

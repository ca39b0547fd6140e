// Package main - entry point for the ratecard API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"ratecard/api"
	"ratecard/internal/config"
	"ratecard/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	gin.SetMode(gin.ReleaseMode)

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(version, cfg)
	if err := server.Run(ctx, listenAddr); err != nil {
		logging.Sugar.Fatalf("server error: %v", err)
	}
}

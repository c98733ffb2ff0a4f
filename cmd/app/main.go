package main

import (
	"flag"
	"log"
	"os"

	"QuoteBoard/internal/di"
	"QuoteBoard/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "config file path (built-in defaults when empty)")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until the UI exits)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}

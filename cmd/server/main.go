package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/khata/internal/api"
	"github.com/mmynk/khata/internal/config"
	"github.com/mmynk/khata/internal/message"
	"github.com/mmynk/khata/internal/middleware"
	"github.com/mmynk/khata/internal/storage/sqlite"
	"github.com/mmynk/khata/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogFormat)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	templates, err := cfg.Templates()
	if err != nil {
		slog.Error("Failed to load message templates", "path", cfg.TemplatesPath, "error", err)
		os.Exit(1)
	}

	server := api.New(store, message.NewBuilder(cfg.CountryCode, templates))
	mux := server.Routes()

	// Add logging and metrics middleware
	handler := middleware.Logging(middleware.Metrics(mux))

	// Wrap with h2c so local UI clients can use HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
